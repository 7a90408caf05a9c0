package validation

// Config tunes the non-structural rules.
type Config struct {
	// MinTrainingUtterances is the floor below which a record draws a
	// too-few-examples warning.
	MinTrainingUtterances int
	// SimilarityWarnFloor is the fuzzy-similarity score above which two
	// records' training utterances count as overlapping.
	SimilarityWarnFloor float64
}
