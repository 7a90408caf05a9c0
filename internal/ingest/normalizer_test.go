package ingest_test

import (
	"testing"

	"intent-classifier/internal/ingest"
)

func goodRow() []string {
	return []string{
		"INT-PHR-0001",
		"pharmacy",
		"healthcare",
		"PharmacyAgent",
		"2",
		"Prescription refills and pharmacy questions",
		"I need to refill my prescription|Where is the nearest pharmacy|Is my medication ready",
		"pharmacy|prescription|refill|medication",
		"Are you asking about a prescription?",
		"0.75",
	}
}

func headerRow() []string {
	return []string{
		"intent_id", "intent_name", "category", "agent_routing", "priority",
		"description_short", "training_utterances", "keywords",
		"disambiguation_prompt", "confidence_threshold",
	}
}

func TestNormalizeRows(t *testing.T) {
	t.Run("Full row", func(t *testing.T) {
		records, errs := ingest.NormalizeRows([][]string{goodRow()}, "|")
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}

		rec := records[0]
		if rec.IntentID != "INT-PHR-0001" || rec.Priority != 2 || rec.ConfidenceThreshold != 0.75 {
			t.Errorf("unexpected record: %+v", rec)
		}
		if len(rec.TrainingUtterances) != 3 {
			t.Errorf("expected 3 utterances, got %v", rec.TrainingUtterances)
		}
		if len(rec.Keywords) != 4 {
			t.Errorf("expected 4 keywords, got %v", rec.Keywords)
		}
	})

	t.Run("Header row skipped", func(t *testing.T) {
		records, errs := ingest.NormalizeRows([][]string{headerRow(), goodRow()}, "|")
		if len(errs) != 0 || len(records) != 1 {
			t.Errorf("expected header skipped: records=%d errs=%v", len(records), errs)
		}
	})

	t.Run("Blank rows skipped", func(t *testing.T) {
		records, errs := ingest.NormalizeRows([][]string{goodRow(), {"", "", ""}, {}}, "|")
		if len(errs) != 0 || len(records) != 1 {
			t.Errorf("expected blank rows skipped: records=%d errs=%v", len(records), errs)
		}
	})

	t.Run("Optional trailing columns may be absent", func(t *testing.T) {
		row := goodRow()[:7] // through training_utterances
		records, errs := ingest.NormalizeRows([][]string{row}, "|")
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		rec := records[0]
		if rec.ConfidenceThreshold != 0 || rec.DisambiguationPrompt != "" || len(rec.Keywords) != 0 {
			t.Errorf("expected zero-value optionals, got %+v", rec)
		}
		if rec.Priority != 2 {
			t.Errorf("expected priority kept, got %d", rec.Priority)
		}
	})

	t.Run("Empty priority defaults", func(t *testing.T) {
		row := goodRow()
		row[4] = ""
		records, errs := ingest.NormalizeRows([][]string{row}, "|")
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if records[0].Priority != 3 {
			t.Errorf("expected default priority 3, got %d", records[0].Priority)
		}
	})

	t.Run("Too few columns", func(t *testing.T) {
		records, errs := ingest.NormalizeRows([][]string{{"INT-PHR-0001", "pharmacy"}}, "|")
		if records != nil {
			t.Errorf("expected no records on structural error")
		}
		if len(errs) != 1 || errs[0].Row != 1 {
			t.Fatalf("expected one row-indexed error, got %v", errs)
		}
	})

	t.Run("Bad numeric cells reported with row index", func(t *testing.T) {
		badPriority := goodRow()
		badPriority[4] = "high"
		badThreshold := goodRow()
		badThreshold[0] = "INT-CLM-0002"
		badThreshold[9] = "most of the time"

		records, errs := ingest.NormalizeRows([][]string{headerRow(), badPriority, badThreshold}, "|")
		if records != nil {
			t.Errorf("expected nothing normalized when any row is broken")
		}
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %v", errs)
		}
		if errs[0].Row != 2 || errs[0].Field != "priority" {
			t.Errorf("unexpected first error: %+v", errs[0])
		}
		if errs[1].Row != 3 || errs[1].Field != "confidence_threshold" {
			t.Errorf("unexpected second error: %+v", errs[1])
		}
	})

	t.Run("One bad row blocks the whole upload", func(t *testing.T) {
		bad := goodRow()
		bad[4] = "urgent"
		records, errs := ingest.NormalizeRows([][]string{goodRow(), bad}, "|")
		if records != nil || len(errs) == 0 {
			t.Errorf("expected structural failure to drop all rows: records=%v errs=%v", records, errs)
		}
	})

	t.Run("Extra non-blank column rejected", func(t *testing.T) {
		row := append(goodRow(), "surprise")
		_, errs := ingest.NormalizeRows([][]string{row}, "|")
		if len(errs) != 1 {
			t.Errorf("expected extra-column error, got %v", errs)
		}
	})

	t.Run("Alternate delimiter", func(t *testing.T) {
		row := goodRow()
		row[6] = "refill my prescription;;pharmacy hours"
		row[7] = "pharmacy;;refill"
		records, errs := ingest.NormalizeRows([][]string{row}, ";;")
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(records[0].TrainingUtterances) != 2 || len(records[0].Keywords) != 2 {
			t.Errorf("delimiter not honored: %+v", records[0])
		}
	})
}

func TestNormalizeValues(t *testing.T) {
	row := []any{
		"INT-PHR-0001",
		"pharmacy",
		"healthcare",
		"PharmacyAgent",
		float64(2),
		"Prescription refills",
		"refill my prescription|pharmacy hours",
		"pharmacy|refill",
		nil,
		0.75,
	}

	records, errs := ingest.NormalizeValues([][]any{row}, "")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	rec := records[0]
	if rec.Priority != 2 {
		t.Errorf("numeric cell not coerced: %+v", rec)
	}
	if rec.ConfidenceThreshold != 0.75 {
		t.Errorf("float cell not coerced: %+v", rec)
	}
	if rec.DisambiguationPrompt != "" {
		t.Errorf("nil cell should be empty, got %q", rec.DisambiguationPrompt)
	}
}
