package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"intent-classifier/internal/model"
)

// LoadSeedFile reads a JSON array of intent records used to bootstrap an
// empty registry.
func LoadSeedFile(path string) ([]model.IntentRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records []model.IntentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return records, nil
}
