package registry

import (
	"time"

	"intent-classifier/internal/model"
)

// Config tunes the manager.
type Config struct {
	// DefaultThreshold is the registry-wide confidence threshold applied to
	// records that do not set their own.
	DefaultThreshold float64
}

// StageReceipt describes a successful staging.
type StageReceipt struct {
	BaseVersion int64     // active version the set was staged against
	Count       int       // records in the staged set
	StagedAt    time.Time
}

// ActivationResult describes a successful publish.
type ActivationResult struct {
	Version int64
	Count   int
}

// stagedSet is a validated candidate waiting for activation.
type stagedSet struct {
	records     []model.IntentRecord
	baseVersion int64
	stagedAt    time.Time
}
