package repository

import (
	"context"
	"time"

	"intent-classifier/internal/model"
)

// PersistedRegistry is the durable form of one registry generation.
type PersistedRegistry struct {
	Version          int64                `json:"version"`
	DefaultThreshold float64              `json:"default_threshold"`
	SavedAt          time.Time            `json:"saved_at"`
	Records          []model.IntentRecord `json:"records"`
}

// Store persists registry generations. Save must be all-or-nothing: a write
// that dies halfway may not corrupt the previously persisted state.
type Store interface {
	// Load returns the last persisted generation, or ErrNotFound when no
	// prior state exists.
	Load(ctx context.Context) (*PersistedRegistry, error)
	Save(ctx context.Context, reg PersistedRegistry) error
}
