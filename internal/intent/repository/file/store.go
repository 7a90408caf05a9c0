package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	repo "intent-classifier/internal/intent/repository"
	"intent-classifier/pkg/log"
)

type implStore struct {
	path string
	l    log.Logger
}

// New creates a JSON-file-backed Store. The file holds the latest registry
// generation; writes go through a temp file and rename so a crashed write
// never corrupts the previous state.
func New(path string, l log.Logger) repo.Store {
	if path == "" {
		panic("intent/repository/file: path is required")
	}
	return &implStore{path: path, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *implStore) dsn(method string) string {
	return fmt.Sprintf("intent/repository/file.%s", method)
}

// Load reads the last persisted generation. A missing file means no prior
// state, not a failure.
func (s *implStore) Load(ctx context.Context) (*repo.PersistedRegistry, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}

	var reg repo.PersistedRegistry
	if err := json.Unmarshal(raw, &reg); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	return &reg, nil
}

// Save writes the generation atomically: temp file in the same directory,
// then rename over the target.
func (s *implStore) Save(ctx context.Context, reg repo.PersistedRegistry) error {
	raw, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return nil
}
