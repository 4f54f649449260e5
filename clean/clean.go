// Package clean normalizes raw job-posting text before segmentation.
//
// Postings copied out of web pages and mail bodies arrive with mixed line
// break styles, HTML entities, decorative quoting, full-width spaces, and
// unbounded blank-line runs. Clean reduces all of that to a stable,
// newline-separated form that the header detector can classify line by
// line. The function is total: it never fails, for any input, and its
// output is a fixed point (cleaning twice yields the same text).
package clean

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	multiSpaceRE = regexp.MustCompile(`[ \t]{2,}`)
	quoteRE      = regexp.MustCompile(`["“”]`)
	blankRunRE   = regexp.MustCompile(`\n{2,}`)
	// Bounds any remaining blank run to at most three newlines.
	longBlankRunRE = regexp.MustCompile(`\n{4,}`)
)

const (
	fullWidthSpace   = "\u3000"
	nonBreakingSpace = "\u00a0"
)

// Clean performs end-to-end normalization of raw posting text: line break
// unification, per-line cleanup (see cleanLine), blank-run collapsing,
// and a final trim. Empty and whitespace-only input yield "".
func Clean(raw string) string {
	unified := strings.ReplaceAll(raw, "\r\n", "\n")
	unified = strings.ReplaceAll(unified, "\r", "\n")

	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	text := strings.Join(lines, "\n")
	text = blankRunRE.ReplaceAllString(text, "\n\n")
	text = longBlankRunRE.ReplaceAllString(text, "\n\n\n")
	return strings.TrimSpace(text)
}

// cleanLine normalizes a single line: NFC composition, entity decoding,
// non-breaking and full-width spaces to plain spaces, decorative double
// quotes removed, horizontal whitespace runs collapsed, right trim.
// Leading indentation is kept so bullet structure survives.
func cleanLine(line string) string {
	line = norm.NFC.String(line)
	line = html.UnescapeString(line)
	// Catch literal &nbsp; artifacts that survive broken escaping.
	line = strings.ReplaceAll(line, "&nbsp;", " ")
	line = strings.ReplaceAll(line, nonBreakingSpace, " ")
	line = quoteRE.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, fullWidthSpace, " ")
	line = multiSpaceRE.ReplaceAllString(line, " ")
	return strings.TrimRight(line, " \t")
}
