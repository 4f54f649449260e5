package segment

import (
	"strings"

	"github.com/hayasui/kyujin/model"
)

// Group partitions lines into named sections using the detected header
// candidates. A section spans from just after its header line to just
// before the next header (or document end); the header's inline content,
// when present, becomes the first body line. Every non-empty line lands
// in exactly one section body or is a header line itself.
//
// With no candidates at all the whole document becomes a single section
// under fallbackTitle. Duplicate header titles collapse: the later
// occurrence overwrites the earlier body (last write wins).
func Group(lines []string, candidates []Candidate, fallbackTitle string) *model.SectionList {
	sections := model.NewSectionList()

	if len(candidates) == 0 {
		sections.Set(fallbackTitle, strings.TrimSpace(strings.Join(lines, "\n")))
		return sections
	}

	for i, c := range candidates {
		start := c.Index + 1
		end := len(lines)
		if i+1 < len(candidates) {
			end = candidates[i+1].Index
		}

		var body []string
		if c.Inline != "" {
			body = append(body, c.Inline)
		}
		for _, line := range lines[start:end] {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				body = append(body, trimmed)
			}
		}
		sections.Set(c.Title, strings.TrimSpace(strings.Join(body, "\n")))
	}
	return sections
}
