package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one published registry generation. Snapshots are immutable:
// a reader that obtained one keeps a consistent view no matter what is
// published afterwards. Treat all fields as read-only.
type Snapshot struct {
	ID               uuid.UUID
	Version          int64
	CreatedAt        time.Time
	Records          []IntentRecord // sorted by intent_id
	DefaultThreshold float64

	byID map[string]int
}

// NewSnapshot builds a snapshot from the given records. Records are copied
// and sorted by intent_id so iteration order is stable across processes.
func NewSnapshot(version int64, records []IntentRecord, defaultThreshold float64) *Snapshot {
	sorted := make([]IntentRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].IntentID < sorted[j].IntentID })

	byID := make(map[string]int, len(sorted))
	for i, rec := range sorted {
		byID[rec.IntentID] = i
	}

	return &Snapshot{
		ID:               uuid.New(),
		Version:          version,
		CreatedAt:        time.Now().UTC(),
		Records:          sorted,
		DefaultThreshold: defaultThreshold,
		byID:             byID,
	}
}

// ByID looks up a record by intent_id.
func (s *Snapshot) ByID(intentID string) (IntentRecord, bool) {
	i, ok := s.byID[intentID]
	if !ok {
		return IntentRecord{}, false
	}
	return s.Records[i], true
}

// Count returns the number of records in the snapshot.
func (s *Snapshot) Count() int {
	return len(s.Records)
}

// EffectiveThreshold resolves a record's confidence threshold, falling back
// to the snapshot default when the record does not set one.
func (s *Snapshot) EffectiveThreshold(rec IntentRecord) float64 {
	if rec.ConfidenceThreshold > 0 {
		return rec.ConfidenceThreshold
	}
	return s.DefaultThreshold
}
