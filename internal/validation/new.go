package validation

import (
	"context"

	"intent-classifier/internal/model"
	"intent-classifier/pkg/log"
)

// Engine checks a candidate record set against every registry rule and
// reports all findings at once.
type Engine interface {
	Validate(ctx context.Context, records []model.IntentRecord) model.ValidationReport
}

// RuleEngine is the rule-based validation engine.
type RuleEngine struct {
	cfg Config
	l   log.Logger
}

// Ensure RuleEngine implements Engine interface
var _ Engine = (*RuleEngine)(nil)

// New creates a new RuleEngine
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(cfg Config, l log.Logger) *RuleEngine {
	if cfg.MinTrainingUtterances <= 0 {
		cfg.MinTrainingUtterances = DefaultMinTrainingUtterances
	}
	if cfg.SimilarityWarnFloor <= 0 {
		cfg.SimilarityWarnFloor = DefaultSimilarityWarnFloor
	}
	return &RuleEngine{cfg: cfg, l: l}
}
