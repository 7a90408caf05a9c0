package classifier

import (
	"context"

	"intent-classifier/internal/model"
	"intent-classifier/pkg/log"
)

// Classifier scores an utterance against a registry snapshot and decides
// between a firm match, a disambiguation request, and a no-match. It is
// side-effect free: same utterance + same snapshot = same decision.
type Classifier interface {
	Classify(ctx context.Context, utterance string, snap *model.Snapshot) Decision
	// Segments splits a compound utterance ("refill my meds and also check
	// a claim") into independently classifiable parts. A simple utterance
	// comes back as a single segment.
	Segments(utterance string) []string
}

// ScoringEngine classifies by blending exact, keyword, and fuzzy sub-scores.
type ScoringEngine struct {
	cfg Config
	l   log.Logger
}

// Ensure ScoringEngine implements Classifier interface
var _ Classifier = (*ScoringEngine)(nil)

// New creates a new ScoringEngine
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(cfg Config, l log.Logger) *ScoringEngine {
	if cfg.WeightExact <= 0 {
		cfg.WeightExact = DefaultWeightExact
	}
	if cfg.WeightKeyword <= 0 {
		cfg.WeightKeyword = DefaultWeightKeyword
	}
	if cfg.WeightFuzzy <= 0 {
		cfg.WeightFuzzy = DefaultWeightFuzzy
	}
	if cfg.NearExactMaxDistance <= 0 {
		cfg.NearExactMaxDistance = DefaultNearExactMaxDistance
	}
	if cfg.AmbiguityMargin <= 0 {
		cfg.AmbiguityMargin = DefaultAmbiguityMargin
	}
	if cfg.ConsiderationFloor <= 0 {
		cfg.ConsiderationFloor = DefaultConsiderationFloor
	}
	if cfg.TopCandidates <= 0 {
		cfg.TopCandidates = DefaultTopCandidates
	}
	return &ScoringEngine{cfg: cfg, l: l}
}
