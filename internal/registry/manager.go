package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	repo "intent-classifier/internal/intent/repository"
	"intent-classifier/internal/model"
)

// Current returns the active snapshot without taking any lock.
func (m *SnapshotManager) Current() *model.Snapshot {
	return m.current.Load()
}

// Stage validates the candidate as a full replacement and parks it. The
// validation runs on a private copy outside the lock; classification traffic
// never waits on an upload.
func (m *SnapshotManager) Stage(ctx context.Context, records []model.IntentRecord) (StageReceipt, model.ValidationReport) {
	normalized := normalizeAll(records)

	report := m.validator.Validate(ctx, normalized)
	if !report.Valid {
		m.l.Warnf(ctx, "%s: candidate rejected: %d errors", LogPrefixStage, len(report.Errors))
		return StageReceipt{}, report
	}

	m.mu.Lock()
	var base int64
	if cur := m.current.Load(); cur != nil {
		base = cur.Version
	}
	set := &stagedSet{records: normalized, baseVersion: base, stagedAt: time.Now().UTC()}
	m.staged = set
	m.mu.Unlock()

	m.l.Infof(ctx, "%s: staged %d records against version %d", LogPrefixStage, len(normalized), base)
	return StageReceipt{BaseVersion: base, Count: len(normalized), StagedAt: set.stagedAt}, report
}

// ActivateStaged publishes the staged set as the next snapshot version.
// A staged set built against an older version is refused, not silently
// applied over someone else's publish.
func (m *SnapshotManager) ActivateStaged(ctx context.Context) (ActivationResult, error) {
	m.mu.Lock()
	if m.staged == nil {
		m.mu.Unlock()
		return ActivationResult{}, ErrNothingStaged
	}

	var curVersion int64
	if cur := m.current.Load(); cur != nil {
		curVersion = cur.Version
	}
	if m.staged.baseVersion != curVersion {
		staleBase := m.staged.baseVersion
		m.mu.Unlock()
		return ActivationResult{}, fmt.Errorf("%w: staged against version %d, current is %d",
			ErrStaleStaged, staleBase, curVersion)
	}

	snap := m.publishLocked(m.staged.records)
	m.staged = nil
	m.mu.Unlock()

	m.persist(ctx, LogPrefixActivate, snap)
	m.l.Infof(ctx, "%s: version %d active with %d records", LogPrefixActivate, snap.Version, snap.Count())
	return ActivationResult{Version: snap.Version, Count: snap.Count()}, nil
}

// ApplyMerge upserts one record, revalidates the merged whole, and
// publishes it. When the merged set is invalid the active snapshot stays
// untouched and the report says why. A lost publish race rebuilds against
// the fresh snapshot a bounded number of times.
func (m *SnapshotManager) ApplyMerge(ctx context.Context, rec model.IntentRecord) (ActivationResult, model.ValidationReport, error) {
	rec = rec.Normalized()

	for attempt := 1; attempt <= mergeRetryAttempts; attempt++ {
		base := m.current.Load()
		if base == nil {
			return ActivationResult{}, model.NewValidationReport(), ErrNotBootstrapped
		}

		merged := upsert(base.Records, rec)
		report := m.validator.Validate(ctx, merged)
		if !report.Valid {
			m.l.Warnf(ctx, "%s: merged set invalid for %s: %d errors",
				LogPrefixMerge, rec.IntentID, len(report.Errors))
			return ActivationResult{}, report, ErrValidationFailed
		}

		m.mu.Lock()
		if cur := m.current.Load(); cur == nil || cur.Version != base.Version {
			m.mu.Unlock()
			m.l.Warnf(ctx, "%s: lost publish race on attempt %d, rebuilding", LogPrefixMerge, attempt)
			continue
		}
		snap := m.publishLocked(merged)
		m.mu.Unlock()

		m.persist(ctx, LogPrefixMerge, snap)
		m.l.Infof(ctx, "%s: %s merged, version %d active with %d records",
			LogPrefixMerge, rec.IntentID, snap.Version, snap.Count())
		return ActivationResult{Version: snap.Version, Count: snap.Count()}, report, nil
	}

	return ActivationResult{}, model.NewValidationReport(), ErrConcurrentUpdate
}

// Bootstrap publishes the first snapshot: persisted state when it exists,
// otherwise the seed records. With neither there is nothing safe to serve
// and the caller must treat the error as fatal.
func (m *SnapshotManager) Bootstrap(ctx context.Context, seed []model.IntentRecord) error {
	persisted, err := m.store.Load(ctx)
	switch {
	case err == nil:
		records := normalizeAll(persisted.Records)
		report := m.validator.Validate(ctx, records)
		if !report.Valid {
			return fmt.Errorf("persisted registry invalid: %d errors (first: %s)",
				len(report.Errors), report.Errors[0].Error())
		}
		snap := model.NewSnapshot(persisted.Version, records, m.cfg.DefaultThreshold)
		m.current.Store(snap)
		m.l.Infof(ctx, "%s: restored version %d with %d records", LogPrefixBootstrap, snap.Version, snap.Count())
		return nil
	case errors.Is(err, repo.ErrNotFound):
		// no prior state, fall through to the seed
	default:
		return fmt.Errorf("load persisted registry: %w", err)
	}

	if len(seed) == 0 {
		return ErrNoSnapshot
	}

	records := normalizeAll(seed)
	report := m.validator.Validate(ctx, records)
	if !report.Valid {
		return fmt.Errorf("seed registry invalid: %d errors (first: %s)",
			len(report.Errors), report.Errors[0].Error())
	}

	m.mu.Lock()
	snap := m.publishLocked(records)
	m.mu.Unlock()

	m.persist(ctx, LogPrefixBootstrap, snap)
	m.l.Infof(ctx, "%s: seeded version %d with %d records", LogPrefixBootstrap, snap.Version, snap.Count())
	return nil
}

// publishLocked builds the next generation and swaps the pointer. Caller
// holds m.mu.
func (m *SnapshotManager) publishLocked(records []model.IntentRecord) *model.Snapshot {
	var next int64 = 1
	if cur := m.current.Load(); cur != nil {
		next = cur.Version + 1
	}
	snap := model.NewSnapshot(next, records, m.cfg.DefaultThreshold)
	m.current.Store(snap)
	return snap
}

// persist writes the generation through to the store. The snapshot is
// already live; a failed write is logged, not rolled back.
func (m *SnapshotManager) persist(ctx context.Context, prefix string, snap *model.Snapshot) {
	err := m.store.Save(ctx, repo.PersistedRegistry{
		Version:          snap.Version,
		DefaultThreshold: snap.DefaultThreshold,
		SavedAt:          snap.CreatedAt,
		Records:          snap.Records,
	})
	if err != nil {
		m.l.Warnf(ctx, "%s: persist version %d failed (non-fatal): %v", prefix, snap.Version, err)
	}
}

func upsert(records []model.IntentRecord, rec model.IntentRecord) []model.IntentRecord {
	out := make([]model.IntentRecord, 0, len(records)+1)
	replaced := false
	for _, r := range records {
		if r.IntentID == rec.IntentID {
			out = append(out, rec)
			replaced = true
			continue
		}
		out = append(out, r)
	}
	if !replaced {
		out = append(out, rec)
	}
	return out
}

func normalizeAll(records []model.IntentRecord) []model.IntentRecord {
	out := make([]model.IntentRecord, len(records))
	for i, r := range records {
		out[i] = r.Normalized()
	}
	return out
}
