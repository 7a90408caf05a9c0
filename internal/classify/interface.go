package classify

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify routes one utterance against the active registry snapshot.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)

	// ClassifySegments splits a compound utterance into parts and classifies
	// each part independently against the same snapshot.
	ClassifySegments(ctx context.Context, input ClassifyInput) (ClassifySegmentsOutput, error)
}
