package registry

import (
	"context"
	"sync"
	"sync/atomic"

	"intent-classifier/internal/intent/repository"
	"intent-classifier/internal/model"
	"intent-classifier/internal/validation"
	"intent-classifier/pkg/log"
)

// Manager owns the active registry snapshot and every path that can replace
// it. Reads are lock-free; all mutation goes through staging or merging so
// an invalid set can never become active.
type Manager interface {
	// Stage validates a full-replacement candidate set and parks it for
	// activation. On an invalid report nothing is staged.
	Stage(ctx context.Context, records []model.IntentRecord) (StageReceipt, model.ValidationReport)
	// ActivateStaged atomically publishes the staged set as a new snapshot
	// version. Fails when nothing is staged or the staging is stale.
	ActivateStaged(ctx context.Context) (ActivationResult, error)
	// ApplyMerge upserts a single record into the active set, revalidates
	// the merged whole, and publishes it. The active snapshot is untouched
	// when the merged set is invalid.
	ApplyMerge(ctx context.Context, rec model.IntentRecord) (ActivationResult, model.ValidationReport, error)
	// Current returns the active snapshot. It never blocks and never sees
	// partial state; nil only before Bootstrap has run.
	Current() *model.Snapshot
	// Bootstrap publishes the first snapshot from the persisted store, or
	// from seed records when no prior state exists.
	Bootstrap(ctx context.Context, seed []model.IntentRecord) error
}

// SnapshotManager is the registry and hot-reload manager.
type SnapshotManager struct {
	cfg       Config
	validator validation.Engine
	store     repository.Store
	l         log.Logger

	current atomic.Pointer[model.Snapshot]

	mu     sync.Mutex // guards staged and the publish bookkeeping
	staged *stagedSet
}

// Ensure SnapshotManager implements Manager interface
var _ Manager = (*SnapshotManager)(nil)

// New creates a new SnapshotManager
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(cfg Config, validator validation.Engine, store repository.Store, l log.Logger) *SnapshotManager {
	if cfg.DefaultThreshold <= 0 || cfg.DefaultThreshold > 1 {
		cfg.DefaultThreshold = DefaultConfidenceThreshold
	}
	return &SnapshotManager{
		cfg:       cfg,
		validator: validator,
		store:     store,
		l:         l,
	}
}
