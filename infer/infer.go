// Package infer derives the primary record fields (job title, company,
// salary) from the cleaned line sequence and the grouped sections.
//
// Inference is a fixed cascade of fallbacks: positional guesses from the
// leading lines, overrides from sections whose titles resolve to a
// primary field, keyword and suffix scans over the raw lines, and a
// final re-guess for titles that are really leftover header artifacts.
// Each result may legitimately stay empty; nothing is ever reported as
// an error.
package infer

import (
	"strings"

	"github.com/hayasui/kyujin/match"
	"github.com/hayasui/kyujin/model"
)

// Inferencer guesses the primary fields. The keyword and suffix tables
// are injected at construction.
type Inferencer struct {
	matcher         *match.Matcher
	salaryKeywords  []string
	companySuffixes []string
}

// New returns an Inferencer using the given field matcher and scan
// tables.
func New(matcher *match.Matcher, salaryKeywords, companySuffixes []string) *Inferencer {
	return &Inferencer{
		matcher:         matcher,
		salaryKeywords:  salaryKeywords,
		companySuffixes: companySuffixes,
	}
}

// Infer runs the fallback cascade and returns the three primary fields.
// Any of them may be "" when nothing qualified.
func (in *Inferencer) Infer(lines []string, sections *model.SectionList) (jobTitle, company, salary string) {
	nonEmpty := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}

	// Positional seed: the first lines of a posting usually carry the
	// role and the organization, in that order.
	if len(nonEmpty) > 0 {
		jobTitle = nonEmpty[0]
		if len(nonEmpty) > 1 {
			company = nonEmpty[1]
		}
	}

	// Sections whose titles resolve to a primary field override the
	// positional guesses.
	for _, title := range sections.Titles() {
		body, _ := sections.Get(title)
		if body == "" {
			continue
		}
		field, ok := in.matcher.Match(title)
		if !ok {
			continue
		}
		switch field {
		case model.FieldJobTitle:
			jobTitle = firstLine(body)
		case model.FieldCompany:
			company = firstLine(body)
		case model.FieldSalary:
			salary = body
		}
	}

	// Inline salary capture: any line mentioning compensation wording.
	if salary == "" {
		for _, line := range nonEmpty {
			if containsAny(line, in.salaryKeywords) {
				salary = line
				break
			}
		}
	}

	// Company detection via organizational-entity suffixes.
	if company == "" {
		for _, line := range nonEmpty {
			if containsAny(line, in.companySuffixes) {
				company = line
				break
			}
		}
	}

	// A title that is empty or still looks like a bracketed header is an
	// artifact; replace it with the first meaningful section body.
	if jobTitle == "" || strings.HasPrefix(jobTitle, "【") || strings.HasPrefix(jobTitle, "[") {
		for _, title := range sections.Titles() {
			body, _ := sections.Get(title)
			if strings.TrimSpace(body) != "" {
				jobTitle = firstLine(body)
				break
			}
		}
	}

	return jobTitle, company, salary
}

func firstLine(body string) string {
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		return body[:i]
	}
	return body
}

func containsAny(line string, keys []string) bool {
	for _, key := range keys {
		if strings.Contains(line, key) {
			return true
		}
	}
	return false
}
