package similarity_test

import (
	"testing"

	"intent-classifier/pkg/similarity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Lowercase", in: "Refill My Prescription", want: "refill my prescription"},
		{name: "Trim and collapse", in: "  i   need \t help  ", want: "i need help"},
		{name: "Empty", in: "", want: ""},
		{name: "Whitespace only", in: "   \n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := similarity.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := similarity.Tokenize("What's covered, exactly?")
	want := []string{"what", "s", "covered", "exactly"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "Identical", a: "pharmacy", b: "pharmacy", want: 0},
		{name: "One substitution", a: "pharmacy", b: "pharmecy", want: 1},
		{name: "Insertion", a: "claim", b: "claims", want: 1},
		{name: "Empty left", a: "", b: "abc", want: 3},
		{name: "Empty right", a: "abc", b: "", want: 3},
		{name: "Classic", a: "kitten", b: "sitting", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := similarity.Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestJaccard(t *testing.T) {
	t.Run("Full overlap", func(t *testing.T) {
		if got := similarity.Jaccard("refill my prescription", "refill my prescription"); got != 1 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("Partial overlap", func(t *testing.T) {
		// tokens {a,b} vs {b,c}: intersection 1, union 3
		got := similarity.Jaccard("alpha beta", "beta gamma")
		if got < 0.33 || got > 0.34 {
			t.Errorf("expected ~0.333, got %f", got)
		}
	})

	t.Run("No overlap", func(t *testing.T) {
		if got := similarity.Jaccard("refill prescription", "weather forecast"); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})

	t.Run("Empty input scores zero", func(t *testing.T) {
		if got := similarity.Jaccard("", "anything"); got != 0 {
			t.Errorf("expected 0 for empty input, got %f", got)
		}
	})
}

func TestScore(t *testing.T) {
	t.Run("Identical after normalization", func(t *testing.T) {
		if got := similarity.Score("  Refill my PRESCRIPTION ", "refill my prescription"); got != 1 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("Reordered words keep token overlap", func(t *testing.T) {
		got := similarity.Score("my prescription refill", "refill my prescription")
		if got != 1 {
			t.Errorf("expected 1.0 via token overlap, got %f", got)
		}
	})

	t.Run("Typo keeps edit ratio high", func(t *testing.T) {
		got := similarity.Score("refill my prescripton", "refill my prescription")
		if got < 0.9 {
			t.Errorf("expected >= 0.9, got %f", got)
		}
	})

	t.Run("Unrelated strings score low", func(t *testing.T) {
		got := similarity.Score("what's the weather today", "i need to refill my prescription")
		if got > 0.4 {
			t.Errorf("expected low score, got %f", got)
		}
	})

	t.Run("Blank scores zero", func(t *testing.T) {
		if got := similarity.Score("   ", "refill my prescription"); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, b := "check my claim status", "claim status check please"
		first := similarity.Score(a, b)
		for i := 0; i < 5; i++ {
			if got := similarity.Score(a, b); got != first {
				t.Fatalf("score changed between runs: %f vs %f", first, got)
			}
		}
	})
}
