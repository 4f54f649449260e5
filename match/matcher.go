// Package match resolves detected header titles onto the primary record
// fields using fuzzy string similarity.
//
// The similarity metric is the SequenceMatcher ratio from Python's
// difflib: the proportion of characters covered by greedily matched
// contiguous common blocks. The 0.55 acceptance threshold is calibrated
// against that exact algorithm, so the comparison goes through the
// go-difflib port rather than a generic edit-distance substitute.
package match

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/hayasui/kyujin/model"
)

// Threshold is the minimum similarity ratio (inclusive) for a header
// title to resolve to a primary field.
const Threshold = 0.55

// Matcher maps header titles to primary fields via a per-field synonym
// table. The table order is significant: when two fields tie on the
// maximum ratio, the field evaluated first wins.
type Matcher struct {
	synonyms []model.FieldSynonyms
}

// NewMatcher returns a Matcher over the given synonym table.
func NewMatcher(synonyms []model.FieldSynonyms) *Matcher {
	return &Matcher{synonyms: synonyms}
}

// Match returns the primary field whose synonyms score highest against
// title. The second return is false when no synonym reaches Threshold.
func (m *Matcher) Match(title string) (model.Field, bool) {
	var best model.Field
	bestRatio := 0.0
	for _, fs := range m.synonyms {
		for _, syn := range fs.Synonyms {
			// Strictly greater: ties keep the earlier field.
			if r := Ratio(title, syn); r > bestRatio {
				bestRatio = r
				best = fs.Field
			}
		}
	}
	if bestRatio >= Threshold {
		return best, true
	}
	return 0, false
}

// Ratio reports the SequenceMatcher similarity of a and b in [0, 1].
// Strings are compared rune-wise so multi-byte text scores per character
// rather than per byte; 1.0 means exact equality.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runeSeq(a), runeSeq(b)).Ratio()
}

func runeSeq(s string) []string {
	seq := make([]string, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}
