package usecase

import (
	"context"
	"strings"

	"intent-classifier/internal/intent"
	"intent-classifier/internal/model"
)

// List returns the active records, optionally filtered by category
// (case-insensitive). Records come back in intent_id order, the snapshot's
// natural order.
func (uc *implUseCase) List(ctx context.Context, input intent.ListInput) (intent.ListOutput, error) {
	snap := uc.registry.Current()
	if snap == nil {
		return intent.ListOutput{}, intent.ErrNoActiveSnapshot
	}

	records := snap.Records
	if want := strings.ToLower(strings.TrimSpace(input.Category)); want != "" {
		filtered := make([]model.IntentRecord, 0, len(records))
		for _, rec := range records {
			if strings.ToLower(rec.Category) == want {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return intent.ListOutput{
		Records: records,
		Version: snap.Version,
		Total:   len(records),
	}, nil
}

// Detail returns one active record by intent id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (intent.DetailOutput, error) {
	snap := uc.registry.Current()
	if snap == nil {
		return intent.DetailOutput{}, intent.ErrNoActiveSnapshot
	}

	rec, ok := snap.ByID(strings.TrimSpace(id))
	if !ok {
		return intent.DetailOutput{}, intent.ErrIntentNotFound
	}
	return intent.DetailOutput{
		Record:  rec,
		Version: snap.Version,
	}, nil
}
