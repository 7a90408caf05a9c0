package usecase

import (
	"context"
	"fmt"
	"time"

	"intent-classifier/internal/classify"
	"intent-classifier/pkg/similarity"
)

// Classify answers one utterance from the active snapshot, serving repeated
// utterances out of the decision cache.
func (uc *implUseCase) Classify(ctx context.Context, input classify.ClassifyInput) (classify.ClassifyOutput, error) {
	started := time.Now()

	snap := uc.registry.Current()
	if snap == nil {
		uc.l.Warnf(ctx, "uc.Classify: no active snapshot")
		return classify.ClassifyOutput{}, classify.ErrNoActiveSnapshot
	}

	key := cacheKey(snap.Version, input.Utterance)
	if d, ok := uc.cache.Get(key); ok {
		return classify.ClassifyOutput{
			Decision:        d,
			SnapshotVersion: snap.Version,
			Cached:          true,
			Elapsed:         time.Since(started),
		}, nil
	}

	decision := uc.engine.Classify(ctx, input.Utterance, snap)
	uc.cache.Add(key, decision)

	return classify.ClassifyOutput{
		Decision:        decision,
		SnapshotVersion: snap.Version,
		Elapsed:         time.Since(started),
	}, nil
}

// ClassifySegments splits a compound utterance and classifies every part
// against the same snapshot, so one request never straddles two registry
// versions.
func (uc *implUseCase) ClassifySegments(ctx context.Context, input classify.ClassifyInput) (classify.ClassifySegmentsOutput, error) {
	started := time.Now()

	snap := uc.registry.Current()
	if snap == nil {
		uc.l.Warnf(ctx, "uc.ClassifySegments: no active snapshot")
		return classify.ClassifySegmentsOutput{}, classify.ErrNoActiveSnapshot
	}

	segments := uc.engine.Segments(input.Utterance)
	results := make([]classify.SegmentResult, 0, len(segments))
	for _, seg := range segments {
		key := cacheKey(snap.Version, seg)
		d, ok := uc.cache.Get(key)
		if !ok {
			d = uc.engine.Classify(ctx, seg, snap)
			uc.cache.Add(key, d)
		}
		results = append(results, classify.SegmentResult{Segment: seg, Decision: d})
	}

	return classify.ClassifySegmentsOutput{
		SnapshotVersion: snap.Version,
		Segments:        results,
		Elapsed:         time.Since(started),
	}, nil
}

// cacheKey folds the snapshot version into the key so entries from replaced
// versions simply stop being asked for.
func cacheKey(version int64, utterance string) string {
	return fmt.Sprintf("%d|%s", version, similarity.Normalize(utterance))
}
