package classifier_test

import (
	"context"
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		name      string
		utterance string
		want      []string
	}{
		{
			name:      "Simple utterance stays whole",
			utterance: "refill my prescription",
			want:      []string{"refill my prescription"},
		},
		{
			name:      "And also splits",
			utterance: "I need to refill my prescription and also check my claim status",
			want:      []string{"I need to refill my prescription", "check my claim status"},
		},
		{
			name:      "And I keeps the pronoun",
			utterance: "check my claim and I need a new id card",
			want:      []string{"check my claim", "i need a new id card"},
		},
		{
			name:      "Sentence boundary splits",
			utterance: "Refill my meds. Check my claim status",
			want:      []string{"Refill my meds", "Check my claim status"},
		},
		{
			name:      "Semicolon splits",
			utterance: "book an appointment; cancel the old one",
			want:      []string{"book an appointment", "cancel the old one"},
		},
		{
			name:      "Short fragments dropped",
			utterance: "refill my prescription and also thanks",
			want:      []string{"refill my prescription"},
		},
		{
			name:      "Plain and between nouns is not a boundary",
			utterance: "questions about coverage and medication",
			want:      []string{"questions about coverage and medication"},
		},
		{
			name:      "Blank input yields nothing",
			utterance: "   ",
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Segments(tt.utterance)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%q) = %#v, want %#v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestSegmentsClassifyIndependently(t *testing.T) {
	engine := newEngine()
	snap := healthcareSnapshot()

	segs := engine.Segments("I need to refill my prescription and also tell me about my benefits")
	if len(segs) != 2 {
		t.Fatalf("expected two segments, got %#v", segs)
	}

	ctx := context.Background()
	first := engine.Classify(ctx, segs[0], snap)
	second := engine.Classify(ctx, segs[1], snap)

	if !first.Matched || first.IntentName != "pharmacy" {
		t.Errorf("first segment should route to pharmacy, got %+v", first)
	}
	if !second.Matched || second.IntentName != "benefits" {
		t.Errorf("second segment should route to benefits, got %+v", second)
	}
}
