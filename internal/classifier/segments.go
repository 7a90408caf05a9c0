package classifier

import (
	"regexp"
	"strings"

	"intent-classifier/pkg/similarity"
)

// splitter separates the parts of a compound utterance. keep is a prefix
// restored to the trailing part when the separator consumes words that
// belong to it ("and i need..." keeps its "i").
type splitter struct {
	re   *regexp.Regexp
	keep string
}

var splitters = []splitter{
	{re: regexp.MustCompile(`(?i)\s+and also\s+`)},
	{re: regexp.MustCompile(`(?i)\s+also\s+`)},
	{re: regexp.MustCompile(`(?i)\s+and\s+i\s+`), keep: "i "},
	{re: regexp.MustCompile(`(?i)\s+and\s+we\s+`), keep: "we "},
	{re: regexp.MustCompile(`(?i)\s+plus\s+`)},
	{re: regexp.MustCompile(`(?i)\s+as well as\s+`)},
	{re: regexp.MustCompile(`(?i)\s+oh and\s+`)},
	{re: regexp.MustCompile(`(?i)\s+by the way\s+`)},
	{re: regexp.MustCompile(`\.\s+`)},
	{re: regexp.MustCompile(`;\s*`)},
}

// Segments splits a compound utterance into independently classifiable
// parts. Fragments shorter than two words are dropped; when everything is
// dropped the original utterance stands as the single segment.
func (e *ScoringEngine) Segments(utterance string) []string {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil
	}
	segments := []string{utterance}

	for _, sp := range splitters {
		var next []string
		for _, seg := range segments {
			parts := sp.re.Split(seg, -1)
			if len(parts) == 1 {
				next = append(next, seg)
				continue
			}
			for i, p := range parts {
				p = strings.TrimSpace(p)
				if p == "" {
					continue
				}
				if i > 0 && sp.keep != "" {
					p = sp.keep + p
				}
				next = append(next, p)
			}
		}
		segments = next
	}

	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if len(similarity.Tokenize(seg)) >= minSegmentTokens {
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		return []string{utterance}
	}
	return out
}
