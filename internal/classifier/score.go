package classifier

import (
	"strings"

	"intent-classifier/internal/model"
	"intent-classifier/pkg/similarity"
)

// scoreRecord blends the three sub-scores into one confidence.
func (e *ScoringEngine) scoreRecord(norm string, rec model.IntentRecord) Candidate {
	exact := e.exactScore(norm, rec.TrainingUtterances)
	keyword := keywordScore(norm, rec.Keywords)
	fuzzy := fuzzyScore(norm, rec.TrainingUtterances)

	blended := e.cfg.WeightExact*exact + e.cfg.WeightKeyword*keyword + e.cfg.WeightFuzzy*fuzzy
	return Candidate{
		IntentID:   rec.IntentID,
		IntentName: rec.IntentName,
		Agent:      rec.AgentRouting,
		Category:   rec.Category,
		Priority:   rec.Priority,
		Score:      clip01(blended),
	}
}

// exactScore is 1 when the normalized utterance equals a training utterance
// or sits within the typo tolerance of one, else 0.
func (e *ScoringEngine) exactScore(norm string, utterances []string) float64 {
	for _, u := range utterances {
		nu := similarity.Normalize(u)
		if nu == norm {
			return 1
		}
		if absInt(len(nu)-len(norm)) <= e.cfg.NearExactMaxDistance &&
			similarity.Levenshtein(nu, norm) <= e.cfg.NearExactMaxDistance {
			return 1
		}
	}
	return 0
}

// keywordScore is the fraction of the record's keywords present in the
// utterance. Keywords match whole words only ("art" must not fire inside
// "smart"); multi-word keywords match as phrases.
func keywordScore(norm string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	padded := paddedTokens(norm)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(padded, paddedTokens(kw)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// fuzzyScore is the best fuzzy similarity against any training utterance.
func fuzzyScore(norm string, utterances []string) float64 {
	best := 0.0
	for _, u := range utterances {
		if s := similarity.Score(norm, u); s > best {
			best = s
		}
	}
	return best
}

// paddedTokens renders a string as space-joined tokens with outer pads so
// substring containment becomes word-boundary phrase matching.
func paddedTokens(s string) string {
	return " " + strings.Join(similarity.Tokenize(s), " ") + " "
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
