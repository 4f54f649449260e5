// Package segment detects section headers in cleaned posting text and
// groups the surrounding lines into named sections.
//
// Header detection is heuristic: each line is run through a fixed
// priority order of shape rules (inline label-value, bracket/marker,
// trailing colon), and the first rule that fires decides both the header
// text and a confidence score. Rules are ordered from most specific to
// least so an ambiguous line is classified exactly once.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hayasui/kyujin/model"
)

// Candidate is a line judged likely to introduce a new section.
// Candidates are emitted in ascending Index order and are never mutated
// downstream.
type Candidate struct {
	// Index is the line's position in the cleaned line sequence.
	Index int
	// Title is the normalized header text.
	Title string
	// Inline is body text carried on the header line itself, if any.
	Inline string
	// Score is the heuristic confidence in [0, 1].
	Score float64
}

// Confidence scores per rule. The inline label-value shape is the most
// reliable signal; a bare trailing colon the least.
const (
	scoreInline       = 0.9
	scoreMarkerPrefix = 0.6
	scoreBracketOnly  = 0.5
	scoreInlineBonus  = 0.1
	scoreTrailColon   = 0.55
)

// maxHeaderRunes is the length cutoff above which a line is never a
// header, measured in runes so Japanese text is not penalized.
const maxHeaderRunes = 50

var (
	// inlineRE splits "label: value" lines on the first half- or
	// full-width colon.
	inlineRE = regexp.MustCompile(`^([^：:]+)[：:]\s*(.+)$`)

	// numericLabelRE guards against clock-time lines such as "10:00"
	// being read as a header named "10".
	numericLabelRE = regexp.MustCompile(`^\d+(\.\d+)?$`)

	// titleTrimRE strips decorative dash/bullet punctuation around a
	// detected header core.
	titleTrimRE = regexp.MustCompile(`^[\-‐−―・\s]+|[\-‐−―・\s]+$`)
)

// Detector classifies lines as header candidates. The marker glyph set
// is injected at construction so alternate conventions can be tested
// without touching the rules.
type Detector struct {
	headerRE *regexp.Regexp
}

// NewDetector returns a Detector recognizing the given decorative prefix
// glyphs. An empty set falls back to the default marker table.
func NewDetector(markers string) *Detector {
	if markers == "" {
		markers = model.DefaultTables().Markers
	}
	return &Detector{
		// Optional marker prefix, optional bracket pair around the header
		// core, optional colons, optional inline remainder.
		headerRE: regexp.MustCompile(`^(` + runeClass(markers) + `+)?\s*[\[【]?([^\]】]+)[\]】]?\s*[：:]*\s*(.+)?$`),
	}
}

// Detect scans lines in order and returns one Candidate per qualifying
// line, preserving original line indexes.
func (d *Detector) Detect(lines []string) []Candidate {
	var candidates []Candidate
	for i, line := range lines {
		if ok, c := d.classify(line); ok {
			c.Index = i
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// classify applies the ordered rule set to a single line. The first rule
// that fires wins; later rules are not consulted.
func (d *Detector) classify(line string) (bool, Candidate) {
	stripped := strings.TrimSpace(line)
	if stripped == "" || utf8.RuneCountInString(stripped) > maxHeaderRunes {
		return false, Candidate{}
	}

	// Rule 1: inline "label: value". A purely numeric label means a time
	// notation, not a header, and disqualifies the line entirely.
	if m := inlineRE.FindStringSubmatch(stripped); m != nil {
		title := normalizeTitle(m[1])
		if numericLabelRE.MatchString(title) {
			return false, Candidate{}
		}
		return true, Candidate{
			Title:  title,
			Inline: strings.TrimSpace(m[2]),
			Score:  scoreInline,
		}
	}

	// Rule 2: bracketed or marker-prefixed shape. A bare short phrase
	// does not qualify; at least one of a marker glyph, a bracket
	// character, or an inline remainder must be present.
	if m := d.headerRE.FindStringSubmatch(stripped); m != nil {
		prefix, core, inline := m[1], m[2], m[3]
		stylized := prefix != "" || strings.ContainsAny(stripped, "[]【】") || inline != ""
		if stylized {
			score := scoreBracketOnly
			if prefix != "" {
				score = scoreMarkerPrefix
			}
			if inline != "" {
				score += scoreInlineBonus
			}
			return true, Candidate{
				Title:  normalizeTitle(core),
				Inline: strings.TrimSpace(inline),
				Score:  score,
			}
		}
	}

	// Rule 3: heading-like line ending in a colon with nothing after it.
	if last, size := utf8.DecodeLastRuneInString(stripped); last == ':' || last == '：' {
		header := stripped[:len(stripped)-size]
		return true, Candidate{
			Title: normalizeTitle(header),
			Score: scoreTrailColon,
		}
	}

	return false, Candidate{}
}

// normalizeTitle trims whitespace and decorative dash/bullet punctuation
// from a header core.
func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	return titleTrimRE.ReplaceAllString(title, "")
}

// runeClass builds a regexp character class matching exactly the runes
// in set, escaping the few characters special inside a class.
func runeClass(set string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range set {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}
