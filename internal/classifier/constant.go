package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Scoring defaults. Weights intentionally sum past 1.0: the blended score is
// clipped to [0, 1], and an exact hit alone must be able to reach the top of
// the range regardless of keyword coverage.
const (
	DefaultWeightExact          = 1.0
	DefaultWeightKeyword        = 0.35
	DefaultWeightFuzzy          = 0.45
	DefaultNearExactMaxDistance = 2
	DefaultAmbiguityMargin      = 0.15
	DefaultConsiderationFloor   = 0.25
	DefaultTopCandidates        = 3
)

// minSegmentTokens drops fragments like "and" or "thanks" produced by
// splitting a compound utterance.
const minSegmentTokens = 2

// NoMatchPrompt is returned when nothing in the registry matches well
// enough to act on.
const NoMatchPrompt = "I'm not sure what you need help with. Could you say a bit more about what you're trying to do?"
