package registry_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	repo "intent-classifier/internal/intent/repository"
	"intent-classifier/internal/model"
	"intent-classifier/internal/registry"
	"intent-classifier/internal/validation"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeStore struct {
	mu       sync.Mutex
	loadFunc func(ctx context.Context) (*repo.PersistedRegistry, error)
	saveErr  error
	saved    []repo.PersistedRegistry
}

func (s *fakeStore) Load(ctx context.Context) (*repo.PersistedRegistry, error) {
	if s.loadFunc != nil {
		return s.loadFunc(ctx)
	}
	return nil, repo.ErrNotFound
}

func (s *fakeStore) Save(ctx context.Context, reg repo.PersistedRegistry) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	s.saved = append(s.saved, reg)
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) lastSaved() (repo.PersistedRegistry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return repo.PersistedRegistry{}, false
	}
	return s.saved[len(s.saved)-1], true
}

func seedRecord(id, name, category string) model.IntentRecord {
	return model.IntentRecord{
		IntentID:         id,
		IntentName:       name,
		Category:         category,
		AgentRouting:     name + "Agent",
		Priority:         3,
		DescriptionShort: "Handles " + name + " questions",
		TrainingUtterances: []string{
			name + " question one", name + " question two", name + " question three",
			name + " question four", name + " question five",
		},
		Keywords: []string{name},
	}
}

func seedRecords() []model.IntentRecord {
	return []model.IntentRecord{
		seedRecord("INT-PHR-0001", "pharmacy", "healthcare"),
		seedRecord("INT-CLM-0002", "claims", "insurance"),
	}
}

func newManager(store repo.Store) *registry.SnapshotManager {
	l := &mockLogger{}
	return registry.New(registry.Config{DefaultThreshold: 0.7}, validation.New(validation.Config{}, l), store, l)
}

func bootstrapped(t *testing.T, store *fakeStore) *registry.SnapshotManager {
	t.Helper()
	m := newManager(store)
	if err := m.Bootstrap(context.Background(), seedRecords()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return m
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds when store is empty", func(t *testing.T) {
		store := &fakeStore{}
		m := newManager(store)
		if err := m.Bootstrap(ctx, seedRecords()); err != nil {
			t.Fatalf("bootstrap: %v", err)
		}

		snap := m.Current()
		if snap == nil || snap.Version != 1 || snap.Count() != 2 {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
		if saved, ok := store.lastSaved(); !ok || saved.Version != 1 {
			t.Errorf("expected seed persisted, got %+v", saved)
		}
	})

	t.Run("Restores persisted state over seed", func(t *testing.T) {
		store := &fakeStore{loadFunc: func(ctx context.Context) (*repo.PersistedRegistry, error) {
			return &repo.PersistedRegistry{
				Version: 9,
				Records: []model.IntentRecord{seedRecord("INT-BEN-0003", "benefits", "insurance")},
			}, nil
		}}
		m := newManager(store)
		if err := m.Bootstrap(ctx, seedRecords()); err != nil {
			t.Fatalf("bootstrap: %v", err)
		}

		snap := m.Current()
		if snap.Version != 9 || snap.Count() != 1 {
			t.Errorf("expected restored version 9, got %+v", snap)
		}
		if _, ok := snap.ByID("INT-BEN-0003"); !ok {
			t.Errorf("expected persisted record present")
		}
	})

	t.Run("No state and no seed is fatal", func(t *testing.T) {
		m := newManager(&fakeStore{})
		if err := m.Bootstrap(ctx, nil); !errors.Is(err, registry.ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
		if m.Current() != nil {
			t.Errorf("expected no snapshot published")
		}
	})

	t.Run("Unreachable store is fatal", func(t *testing.T) {
		store := &fakeStore{loadFunc: func(ctx context.Context) (*repo.PersistedRegistry, error) {
			return nil, repo.ErrFailedToLoad
		}}
		m := newManager(store)
		if err := m.Bootstrap(ctx, seedRecords()); err == nil {
			t.Errorf("expected error from unreachable store")
		}
	})
}

func TestStageAndActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stage does not touch the active snapshot", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		before := m.Current()

		receipt, report := m.Stage(ctx, []model.IntentRecord{seedRecord("INT-NEW-0009", "new intents", "misc")})
		if !report.Valid {
			t.Fatalf("unexpected invalid report: %+v", report)
		}
		if receipt.BaseVersion != before.Version || receipt.Count != 1 {
			t.Errorf("unexpected receipt: %+v", receipt)
		}
		if m.Current().Version != before.Version {
			t.Errorf("staging must not publish")
		}
	})

	t.Run("Activate publishes the next version", func(t *testing.T) {
		store := &fakeStore{}
		m := bootstrapped(t, store)

		m.Stage(ctx, []model.IntentRecord{seedRecord("INT-NEW-0009", "new intents", "misc")})
		result, err := m.ActivateStaged(ctx)
		if err != nil {
			t.Fatalf("activate: %v", err)
		}
		if result.Version != 2 || result.Count != 1 {
			t.Errorf("unexpected result: %+v", result)
		}

		snap := m.Current()
		if snap.Version != 2 || snap.Count() != 1 {
			t.Errorf("unexpected snapshot: version %d count %d", snap.Version, snap.Count())
		}
		if _, ok := snap.ByID("INT-PHR-0001"); ok {
			t.Errorf("bulk replace must drop records absent from the staged set")
		}
		if saved, ok := store.lastSaved(); !ok || saved.Version != 2 {
			t.Errorf("expected write-through persist of version 2")
		}
	})

	t.Run("Invalid candidate stages nothing", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		before := m.Current()

		dupA := seedRecord("INT-WEL-0047", "wellness programs", "benefits")
		dupB := seedRecord("INT-WEL-0047", "gym discounts", "perks")
		_, report := m.Stage(ctx, []model.IntentRecord{dupA, dupB})
		if report.Valid {
			t.Fatalf("expected invalid report")
		}

		flagged := 0
		for _, e := range report.Errors {
			if e.IntentID == "INT-WEL-0047" && e.Field == "intent_id" {
				flagged++
			}
		}
		if flagged != 2 {
			t.Errorf("expected both duplicates flagged, got %d", flagged)
		}

		if _, err := m.ActivateStaged(ctx); !errors.Is(err, registry.ErrNothingStaged) {
			t.Errorf("expected ErrNothingStaged, got %v", err)
		}
		after := m.Current()
		if after.Version != before.Version || after.Count() != before.Count() {
			t.Errorf("active registry changed after rejected upload")
		}
	})

	t.Run("Empty candidate set stages nothing", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		_, report := m.Stage(ctx, nil)
		if report.Valid {
			t.Errorf("expected invalid report for empty set")
		}
		if _, err := m.ActivateStaged(ctx); !errors.Is(err, registry.ErrNothingStaged) {
			t.Errorf("expected ErrNothingStaged, got %v", err)
		}
	})

	t.Run("Stale staging refused after concurrent merge", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		m.Stage(ctx, []model.IntentRecord{seedRecord("INT-NEW-0009", "new intents", "misc")})

		// another writer publishes between stage and activate
		if _, _, err := m.ApplyMerge(ctx, seedRecord("INT-BEN-0003", "benefits", "insurance")); err != nil {
			t.Fatalf("merge: %v", err)
		}

		_, err := m.ActivateStaged(ctx)
		if !errors.Is(err, registry.ErrStaleStaged) {
			t.Fatalf("expected ErrStaleStaged, got %v", err)
		}

		// re-staging against the new version resolves it
		m.Stage(ctx, []model.IntentRecord{seedRecord("INT-NEW-0009", "new intents", "misc")})
		if _, err := m.ActivateStaged(ctx); err != nil {
			t.Errorf("re-staged activation failed: %v", err)
		}
	})
}

func TestApplyMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("Adds a record and bumps the version", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		result, report, err := m.ApplyMerge(ctx, seedRecord("INT-BEN-0003", "benefits", "insurance"))
		if err != nil {
			t.Fatalf("merge: %v", err)
		}
		if !report.Valid || result.Version != 2 || result.Count != 3 {
			t.Errorf("unexpected merge result: %+v report %+v", result, report)
		}
	})

	t.Run("Identical merge republishes cleanly", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		rec := seedRecord("INT-BEN-0003", "benefits", "insurance")

		first, _, err := m.ApplyMerge(ctx, rec)
		if err != nil {
			t.Fatalf("first merge: %v", err)
		}
		second, _, err := m.ApplyMerge(ctx, rec)
		if err != nil {
			t.Fatalf("second merge: %v", err)
		}

		if second.Version != first.Version+1 {
			t.Errorf("expected version bump on idempotent merge, got %d then %d", first.Version, second.Version)
		}
		if second.Count != first.Count {
			t.Errorf("idempotent merge changed record count: %d vs %d", first.Count, second.Count)
		}
		got, ok := m.Current().ByID("INT-BEN-0003")
		if !ok || got.IntentName != "benefits" {
			t.Errorf("merged record missing or changed: %+v", got)
		}
	})

	t.Run("Invalid merge leaves the active version alone", func(t *testing.T) {
		m := bootstrapped(t, &fakeStore{})
		before := m.Current()

		// same name+category as an existing record under a different id
		bad := seedRecord("INT-PHR-0099", "pharmacy", "healthcare")
		_, report, err := m.ApplyMerge(ctx, bad)
		if !errors.Is(err, registry.ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
		if report.Valid {
			t.Errorf("expected invalid report")
		}
		if m.Current().Version != before.Version {
			t.Errorf("version changed on failed merge")
		}
	})

	t.Run("Merge before bootstrap refused", func(t *testing.T) {
		m := newManager(&fakeStore{})
		_, _, err := m.ApplyMerge(ctx, seedRecord("INT-PHR-0001", "pharmacy", "healthcare"))
		if !errors.Is(err, registry.ErrNotBootstrapped) {
			t.Errorf("expected ErrNotBootstrapped, got %v", err)
		}
	})
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := bootstrapped(t, &fakeStore{})

	t.Run("Readers always see complete snapshots", func(t *testing.T) {
		done := make(chan struct{})
		var readerWG sync.WaitGroup
		for r := 0; r < 4; r++ {
			readerWG.Add(1)
			go func() {
				defer readerWG.Done()
				var lastVersion int64
				for {
					select {
					case <-done:
						return
					default:
					}
					snap := m.Current()
					if snap == nil {
						t.Errorf("reader saw nil snapshot")
						return
					}
					if snap.Version < lastVersion {
						t.Errorf("version went backwards: %d after %d", snap.Version, lastVersion)
						return
					}
					lastVersion = snap.Version
					if len(snap.Records) != snap.Count() {
						t.Errorf("partial snapshot observed")
						return
					}
					for _, rec := range snap.Records {
						if _, ok := snap.ByID(rec.IntentID); !ok {
							t.Errorf("index missing record %s", rec.IntentID)
							return
						}
					}
				}
			}()
		}

		var writerWG sync.WaitGroup
		for w := 0; w < 3; w++ {
			writerWG.Add(1)
			go func(w int) {
				defer writerWG.Done()
				for i := 0; i < 10; i++ {
					id := fmt.Sprintf("INT-GEN-%d%03d", w, i)
					rec := seedRecord(id, fmt.Sprintf("generated %d %d", w, i), "generated")
					if _, _, err := m.ApplyMerge(ctx, rec); err != nil && !errors.Is(err, registry.ErrConcurrentUpdate) {
						t.Errorf("merge %s: %v", id, err)
					}
				}
			}(w)
		}

		writerWG.Wait()
		close(done)
		readerWG.Wait()
	})

	t.Run("Held snapshot is immutable across publishes", func(t *testing.T) {
		held := m.Current()
		heldVersion, heldCount := held.Version, held.Count()

		if _, _, err := m.ApplyMerge(ctx, seedRecord("INT-HLD-0001", "held test", "misc")); err != nil {
			t.Fatalf("merge: %v", err)
		}

		if held.Version != heldVersion || held.Count() != heldCount {
			t.Errorf("held snapshot mutated by a later publish")
		}
		if m.Current().Version <= heldVersion {
			t.Errorf("expected newer version after merge")
		}
	})
}
