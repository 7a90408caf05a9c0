package validation

import (
	"context"
	"fmt"
	"strings"

	"intent-classifier/internal/model"
	"intent-classifier/pkg/similarity"
)

// Validate runs every rule over the candidate set and returns the complete
// report. It never stops at the first finding: a caller fixing a bad upload
// sees everything wrong with it in one round trip.
func (e *RuleEngine) Validate(ctx context.Context, records []model.IntentRecord) model.ValidationReport {
	report := model.NewValidationReport()

	// Rule: a registry activation may never publish an empty set.
	if len(records) == 0 {
		report.AddError("", "records", "candidate registry must contain at least one record")
		e.l.Warnf(ctx, "%s: empty candidate set", LogPrefixValidate)
		return report
	}

	e.checkWellFormed(records, &report)
	e.checkDuplicateIDs(records, &report)
	e.checkDuplicateNames(records, &report)
	e.checkUtteranceCounts(records, &report)
	e.checkUtteranceOverlap(records, &report)

	e.l.Debugf(ctx, "%s: %d records, %d errors, %d warnings",
		LogPrefixValidate, len(records), len(report.Errors), len(report.Warnings))
	return report
}

func (e *RuleEngine) checkWellFormed(records []model.IntentRecord, report *model.ValidationReport) {
	for _, rec := range records {
		for _, fe := range rec.WellFormed() {
			report.AddError(fe.IntentID, fe.Field, fe.Message)
		}
	}
}

// checkDuplicateIDs flags every record carrying a non-unique intent_id, not
// just the later occurrences, so the uploader can see the whole collision.
func (e *RuleEngine) checkDuplicateIDs(records []model.IntentRecord, report *model.ValidationReport) {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.IntentID != "" {
			counts[rec.IntentID]++
		}
	}
	for _, rec := range records {
		if n := counts[rec.IntentID]; n > 1 {
			report.AddError(rec.IntentID, "intent_id",
				fmt.Sprintf("duplicate intent_id: appears %d times in the candidate set", n))
		}
	}
}

func (e *RuleEngine) checkDuplicateNames(records []model.IntentRecord, report *model.ValidationReport) {
	type key struct{ category, name string }
	counts := make(map[key]int, len(records))
	for _, rec := range records {
		if rec.IntentName == "" || rec.Category == "" {
			continue
		}
		counts[key{strings.ToLower(rec.Category), strings.ToLower(rec.IntentName)}]++
	}
	for _, rec := range records {
		k := key{strings.ToLower(rec.Category), strings.ToLower(rec.IntentName)}
		if rec.IntentName != "" && rec.Category != "" && counts[k] > 1 {
			report.AddError(rec.IntentID, "intent_name",
				fmt.Sprintf("intent_name %q duplicated within category %q", rec.IntentName, rec.Category))
		}
	}
}

func (e *RuleEngine) checkUtteranceCounts(records []model.IntentRecord, report *model.ValidationReport) {
	for _, rec := range records {
		nonBlank := 0
		for _, u := range rec.TrainingUtterances {
			if strings.TrimSpace(u) != "" {
				nonBlank++
			}
		}
		if nonBlank > 0 && nonBlank < e.cfg.MinTrainingUtterances {
			report.AddWarning(rec.IntentID, "training_utterances",
				fmt.Sprintf("only %d training utterances; %d or more improve match quality",
					nonBlank, e.cfg.MinTrainingUtterances))
		}
	}
}

// checkUtteranceOverlap warns when two records train on near-identical
// utterances and either record has no disambiguation_prompt to fall back on.
func (e *RuleEngine) checkUtteranceOverlap(records []model.IntentRecord, report *model.ValidationReport) {
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			a, b := records[i], records[j]
			if a.DisambiguationPrompt != "" && b.DisambiguationPrompt != "" {
				continue
			}

			score, ua, ub := maxUtteranceOverlap(a.TrainingUtterances, b.TrainingUtterances)
			if score < e.cfg.SimilarityWarnFloor {
				continue
			}

			if a.DisambiguationPrompt == "" {
				report.AddWarning(a.IntentID, "disambiguation_prompt",
					overlapMessage(ua, b.IntentID, ub, score))
			}
			if b.DisambiguationPrompt == "" {
				report.AddWarning(b.IntentID, "disambiguation_prompt",
					overlapMessage(ub, a.IntentID, ua, score))
			}
		}
	}
}

func maxUtteranceOverlap(as, bs []string) (best float64, bestA, bestB string) {
	for _, ua := range as {
		for _, ub := range bs {
			if s := similarity.Score(ua, ub); s > best {
				best, bestA, bestB = s, ua, ub
			}
		}
	}
	return best, bestA, bestB
}

func overlapMessage(own, otherID, other string, score float64) string {
	return fmt.Sprintf("training utterance %q overlaps %s (%q, similarity %.2f); set a disambiguation_prompt",
		own, otherID, other, score)
}
