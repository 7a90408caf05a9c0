package usecase

import (
	"context"
	"errors"

	"intent-classifier/internal/intent"
	"intent-classifier/internal/registry"
)

// ApplySingle merges one record into the active set and publishes the result.
// A failed validation is an outcome, not an error: the report comes back and
// the active snapshot stays put.
func (uc *implUseCase) ApplySingle(ctx context.Context, input intent.ApplySingleInput) (intent.ApplySingleOutput, error) {
	res, report, err := uc.registry.ApplyMerge(ctx, input.Record)
	if err != nil {
		if errors.Is(err, registry.ErrValidationFailed) {
			uc.l.Warnf(ctx, "uc.ApplySingle: %s rejected with %d errors", input.Record.IntentID, len(report.Errors))
			return intent.ApplySingleOutput{Report: report}, nil
		}
		uc.l.Errorf(ctx, "uc.ApplySingle: %v", err)
		return intent.ApplySingleOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ApplySingle: %s merged, version %d", input.Record.IntentID, res.Version)
	return intent.ApplySingleOutput{
		Report:  report,
		Version: res.Version,
		Count:   res.Count,
	}, nil
}
