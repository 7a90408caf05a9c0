package model_test

import (
	"strings"
	"testing"

	"intent-classifier/internal/model"
)

func validRecord() model.IntentRecord {
	return model.IntentRecord{
		IntentID:           "INT-PHR-0001",
		IntentName:         "pharmacy",
		Category:           "healthcare",
		AgentRouting:       "PharmacyAgent",
		Priority:           2,
		DescriptionShort:   "Prescription refills and pharmacy questions",
		TrainingUtterances: []string{"I need to refill my prescription"},
		Keywords:           []string{"pharmacy", "prescription", "refill"},
	}
}

func hasFieldError(errs []model.FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestWellFormed(t *testing.T) {
	t.Run("Valid record has no errors", func(t *testing.T) {
		if errs := validRecord().WellFormed(); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("Bad intent_id format", func(t *testing.T) {
		for _, id := range []string{"PHR-0001", "INT-phr-0001", "INT-PHR-1", "INT--0001", "int-phr-0001", "INT-PHR-00011"} {
			rec := validRecord()
			rec.IntentID = id
			if errs := rec.WellFormed(); !hasFieldError(errs, "intent_id") {
				t.Errorf("expected intent_id error for %q, got %v", id, errs)
			}
		}
	})

	t.Run("Missing required fields reported together", func(t *testing.T) {
		rec := model.IntentRecord{IntentID: "INT-PHR-0001", Priority: 3}
		errs := rec.WellFormed()
		for _, field := range []string{"intent_name", "category", "agent_routing", "description_short", "training_utterances"} {
			if !hasFieldError(errs, field) {
				t.Errorf("expected error for %s, got %v", field, errs)
			}
		}
	})

	t.Run("Priority out of range", func(t *testing.T) {
		for _, p := range []int{0, -1, 6, 99} {
			rec := validRecord()
			rec.Priority = p
			if errs := rec.WellFormed(); !hasFieldError(errs, "priority") {
				t.Errorf("expected priority error for %d", p)
			}
		}
	})

	t.Run("Blank utterances do not count", func(t *testing.T) {
		rec := validRecord()
		rec.TrainingUtterances = []string{"   ", "\t"}
		if errs := rec.WellFormed(); !hasFieldError(errs, "training_utterances") {
			t.Errorf("expected training_utterances error, got %v", errs)
		}
	})

	t.Run("Threshold bounds", func(t *testing.T) {
		rec := validRecord()
		rec.ConfidenceThreshold = 1.2
		if errs := rec.WellFormed(); !hasFieldError(errs, "confidence_threshold") {
			t.Errorf("expected confidence_threshold error for 1.2")
		}

		rec.ConfidenceThreshold = -0.1
		if errs := rec.WellFormed(); !hasFieldError(errs, "confidence_threshold") {
			t.Errorf("expected confidence_threshold error for -0.1")
		}

		rec.ConfidenceThreshold = 0 // unset is fine
		if errs := rec.WellFormed(); hasFieldError(errs, "confidence_threshold") {
			t.Errorf("unexpected confidence_threshold error for unset value")
		}

		rec.ConfidenceThreshold = 1 // inclusive upper bound
		if errs := rec.WellFormed(); hasFieldError(errs, "confidence_threshold") {
			t.Errorf("unexpected confidence_threshold error for 1.0")
		}
	})
}

func TestNormalized(t *testing.T) {
	t.Run("Priority defaults to 3", func(t *testing.T) {
		rec := validRecord()
		rec.Priority = 0
		if got := rec.Normalized().Priority; got != model.PriorityDefault {
			t.Errorf("expected priority %d, got %d", model.PriorityDefault, got)
		}
	})

	t.Run("Set priority kept", func(t *testing.T) {
		rec := validRecord()
		rec.Priority = 5
		if got := rec.Normalized().Priority; got != 5 {
			t.Errorf("expected priority 5, got %d", got)
		}
	})

	t.Run("Keywords lowercased and deduplicated", func(t *testing.T) {
		rec := validRecord()
		rec.Keywords = []string{"Pharmacy", "pharmacy", " REFILL ", "refill", "drug"}
		got := rec.Normalized().Keywords
		want := []string{"pharmacy", "refill", "drug"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("keyword %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("Blank utterances dropped, wording kept", func(t *testing.T) {
		rec := validRecord()
		rec.TrainingUtterances = []string{"  Where IS my refill?  ", "", "   "}
		got := rec.Normalized().TrainingUtterances
		if len(got) != 1 || got[0] != "Where IS my refill?" {
			t.Errorf("unexpected utterances: %v", got)
		}
	})

	t.Run("String fields trimmed", func(t *testing.T) {
		rec := validRecord()
		rec.IntentID = " INT-PHR-0001 "
		rec.Category = " healthcare "
		norm := rec.Normalized()
		if norm.IntentID != "INT-PHR-0001" || norm.Category != "healthcare" {
			t.Errorf("expected trimmed fields, got %q %q", norm.IntentID, norm.Category)
		}
	})
}

func TestSnapshot(t *testing.T) {
	recA := validRecord()
	recB := validRecord()
	recB.IntentID = "INT-CLM-0002"
	recB.IntentName = "claims"
	recB.ConfidenceThreshold = 0.9

	snap := model.NewSnapshot(7, []model.IntentRecord{recA, recB}, 0.7)

	t.Run("Sorted by intent_id", func(t *testing.T) {
		if snap.Records[0].IntentID != "INT-CLM-0002" {
			t.Errorf("expected INT-CLM-0002 first, got %s", snap.Records[0].IntentID)
		}
	})

	t.Run("Lookup by id", func(t *testing.T) {
		rec, ok := snap.ByID("INT-PHR-0001")
		if !ok || rec.IntentName != "pharmacy" {
			t.Errorf("lookup failed: %v %v", rec, ok)
		}
		if _, ok := snap.ByID("INT-XXX-9999"); ok {
			t.Errorf("expected miss for unknown id")
		}
	})

	t.Run("Effective threshold", func(t *testing.T) {
		if got := snap.EffectiveThreshold(recA); got != 0.7 {
			t.Errorf("expected default 0.7, got %g", got)
		}
		if got := snap.EffectiveThreshold(recB); got != 0.9 {
			t.Errorf("expected record override 0.9, got %g", got)
		}
	})

	t.Run("Source slice not aliased", func(t *testing.T) {
		records := []model.IntentRecord{validRecord()}
		s := model.NewSnapshot(1, records, 0.7)
		records[0].IntentName = strings.ToUpper(records[0].IntentName)
		if s.Records[0].IntentName != "pharmacy" {
			t.Errorf("snapshot records aliased the input slice")
		}
	})
}
