package usecase

import (
	"context"

	"intent-classifier/internal/intent"
	"intent-classifier/internal/model"
)

// ValidateOnly runs the full rule set without staging or publishing anything.
// Submitted records are normalized first so the report matches what staging
// them would produce.
func (uc *implUseCase) ValidateOnly(ctx context.Context, input intent.ValidateOnlyInput) (intent.ValidateOnlyOutput, error) {
	if len(input.Records) > 0 {
		records := make([]model.IntentRecord, len(input.Records))
		for i, rec := range input.Records {
			records[i] = rec.Normalized()
		}
		return intent.ValidateOnlyOutput{
			Report: uc.validator.Validate(ctx, records),
			Source: intent.ValidationSourceSubmitted,
			Count:  len(records),
		}, nil
	}

	snap := uc.registry.Current()
	if snap == nil {
		return intent.ValidateOnlyOutput{}, intent.ErrNoActiveSnapshot
	}
	return intent.ValidateOnlyOutput{
		Report: uc.validator.Validate(ctx, snap.Records),
		Source: intent.ValidationSourceActive,
		Count:  len(snap.Records),
	}, nil
}
