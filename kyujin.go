// Package kyujin converts unstructured, loosely formatted job-posting
// text into a structured record: the primary fields (job title, company,
// salary) plus an ordered collection of named sections.
//
// Basic usage:
//
//	rec, err := kyujin.FromString(raw).Parse()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(rec.JobTitle, rec.Salary)
//
// Or, when the input is already in hand as a string:
//
//	rec := kyujin.Parse(raw)
//
// Postings scraped as HTML pages or photographed as images go through
// the ingestion adapters first:
//
//	rec, err := kyujin.FromHTML(resp.Body).Parse()
//	rec, err := kyujin.FromImage(photo).Parse()       // requires -tags ocr
//
// Parsing is a best-effort heuristic, not a grammar: malformed input
// degrades to empty fields and a single fallback section, never to an
// error. The only errors Parse can return come from the input source
// itself (an unreadable file, invalid HTML, OCR failure).
package kyujin

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hayasui/kyujin/clean"
	"github.com/hayasui/kyujin/htmldoc"
	"github.com/hayasui/kyujin/infer"
	"github.com/hayasui/kyujin/match"
	"github.com/hayasui/kyujin/model"
	"github.com/hayasui/kyujin/ocr"
	"github.com/hayasui/kyujin/segment"
)

type sourceKind int

const (
	sourceString sourceKind = iota
	sourceFile
	sourceHTML
	sourceImage
)

// Parser accumulates a text source and options, then runs the pipeline
// on Parse. Construct one with FromString, FromFile, FromHTML, or
// FromImage.
type Parser struct {
	kind     sourceKind
	raw      string
	filename string
	html     io.Reader
	image    []byte
	ocrLangs []string
	tables   model.Tables
}

// FromString parses raw posting text.
func FromString(raw string) *Parser {
	return &Parser{kind: sourceString, raw: raw, tables: model.DefaultTables()}
}

// FromFile reads posting text from a file. The read is deferred until
// Parse so option setters can still be chained.
func FromFile(filename string) *Parser {
	return &Parser{kind: sourceFile, filename: filename, tables: model.DefaultTables()}
}

// FromHTML extracts posting text from an HTML page before parsing.
func FromHTML(r io.Reader) *Parser {
	return &Parser{kind: sourceHTML, html: r, tables: model.DefaultTables()}
}

// FromImage recognizes posting text in a photographed or scanned image
// before parsing. Requires the ocr build tag; without it Parse returns
// ocr.ErrOCRNotEnabled.
func FromImage(data []byte) *Parser {
	return &Parser{kind: sourceImage, image: data, tables: model.DefaultTables()}
}

// Parse runs the pipeline and returns the structured record. Errors are
// only ever produced by the input source, never by the text heuristics.
func (p *Parser) Parse() (*model.Record, error) {
	raw, err := p.text()
	if err != nil {
		return nil, err
	}
	return parseText(raw, p.tables), nil
}

// Parse converts raw posting text into a Record using the default
// tables. Shorthand for FromString(raw).Parse(), which cannot fail.
func Parse(raw string) *model.Record {
	rec, _ := FromString(raw).Parse()
	return rec
}

// text resolves the configured source to raw posting text.
func (p *Parser) text() (string, error) {
	switch p.kind {
	case sourceFile:
		data, err := os.ReadFile(p.filename)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", p.filename, err)
		}
		return string(data), nil

	case sourceHTML:
		return htmldoc.Extract(p.html)

	case sourceImage:
		client, err := ocr.New()
		if err != nil {
			return "", err
		}
		defer client.Close()
		if len(p.ocrLangs) > 0 {
			if err := client.SetLanguage(p.ocrLangs...); err != nil {
				return "", fmt.Errorf("setting OCR language: %w", err)
			}
		}
		return client.Recognize(p.image)

	default:
		return p.raw, nil
	}
}

// parseText is the pure core of the pipeline: clean, detect headers,
// group sections, infer primary fields, merge the default template.
func parseText(raw string, tables model.Tables) *model.Record {
	cleaned := clean.Clean(raw)
	lines := strings.Split(cleaned, "\n")

	detector := segment.NewDetector(tables.Markers)
	candidates := detector.Detect(lines)
	detected := segment.Group(lines, candidates, tables.FallbackTitle)

	matcher := match.NewMatcher(tables.Synonyms)
	inferencer := infer.New(matcher, tables.SalaryKeywords, tables.CompanySuffixes)
	jobTitle, company, salary := inferencer.Infer(lines, detected)

	return &model.Record{
		JobTitle: jobTitle,
		Company:  company,
		Salary:   salary,
		Sections: mergeSections(tables.DefaultSections, detected),
	}
}

// mergeSections lays the detected sections over the default template.
// Template keys come first in their fixed order; a detected section
// whose title equals a template key overwrites the empty default in
// place, and unknown titles are appended in detection order so no header
// wording is silently dropped.
func mergeSections(template []string, detected *model.SectionList) *model.SectionList {
	merged := model.NewSectionList()
	for _, key := range template {
		merged.Set(key, "")
	}
	for _, title := range detected.Titles() {
		body, _ := detected.Get(title)
		merged.Set(title, body)
	}
	return merged
}
