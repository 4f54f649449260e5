// Package model defines the structured record produced by parsing a job
// posting, along with the static tables the heuristics run on.
//
// The [Record] type is the final output of the pipeline: the three primary
// fields plus an order-preserving [SectionList] of named sections. The
// [Tables] type bundles every fixed table the heuristics consult (synonym
// lists, the default section template, marker glyphs, keyword lists) so
// that callers and tests can substitute alternate tables without touching
// component logic.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is the structured representation of a parsed job posting.
// Primary fields that could not be inferred are empty strings, never
// absent; Sections always contains every default-template key.
type Record struct {
	JobTitle string       `json:"job_title"`
	Company  string       `json:"company"`
	Salary   string       `json:"salary"`
	Sections *SectionList `json:"sections"`
}

// SectionList is an order-preserving mapping from section title to body
// text. Titles keep the position of their first insertion; setting an
// existing title replaces its body in place (last write wins).
type SectionList struct {
	titles []string
	bodies map[string]string
}

// NewSectionList returns an empty SectionList.
func NewSectionList() *SectionList {
	return &SectionList{bodies: make(map[string]string)}
}

// Set stores body under title. A repeated title keeps its original
// position and its body is overwritten (last write wins).
func (s *SectionList) Set(title, body string) {
	if s.bodies == nil {
		s.bodies = make(map[string]string)
	}
	if _, ok := s.bodies[title]; !ok {
		s.titles = append(s.titles, title)
	}
	s.bodies[title] = body
}

// Get returns the body stored under title and whether the title exists.
func (s *SectionList) Get(title string) (string, bool) {
	body, ok := s.bodies[title]
	return body, ok
}

// Len returns the number of sections.
func (s *SectionList) Len() int {
	return len(s.titles)
}

// Titles returns the section titles in insertion order.
func (s *SectionList) Titles() []string {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

// MarshalJSON encodes the sections as a JSON object whose keys appear in
// insertion order.
func (s *SectionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, title := range s.titles {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(title)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.bodies[title])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the list, preserving the key
// order of the input.
func (s *SectionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sections: expected JSON object, got %v", tok)
	}

	s.titles = nil
	s.bodies = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("sections: expected string key, got %v", keyTok)
		}
		var body string
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("sections: body of %q: %w", key, err)
		}
		s.Set(key, body)
	}

	_, err = dec.Token() // closing brace
	return err
}
