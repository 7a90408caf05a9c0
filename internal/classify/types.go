package classify

import (
	"time"

	"intent-classifier/internal/classifier"
)

// --- UseCase Inputs ---

type ClassifyInput struct {
	Utterance string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Decision        classifier.Decision
	SnapshotVersion int64
	Cached          bool
	Elapsed         time.Duration
}

// SegmentResult pairs one segment of a compound utterance with its decision.
type SegmentResult struct {
	Segment  string
	Decision classifier.Decision
}

type ClassifySegmentsOutput struct {
	SnapshotVersion int64
	Segments        []SegmentResult
	Elapsed         time.Duration
}
