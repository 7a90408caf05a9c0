package usecase

import (
	"context"

	"intent-classifier/internal/intent"
)

// ActivateStaged publishes the staged set. Staleness and missing-staging
// errors pass through for the delivery layer to map.
func (uc *implUseCase) ActivateStaged(ctx context.Context) (intent.ActivateOutput, error) {
	res, err := uc.registry.ActivateStaged(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ActivateStaged: %v", err)
		return intent.ActivateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ActivateStaged: version %d active with %d records", res.Version, res.Count)
	return intent.ActivateOutput{
		Version: res.Version,
		Count:   res.Count,
	}, nil
}
