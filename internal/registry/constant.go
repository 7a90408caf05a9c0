package registry

// Log prefixes
const (
	LogPrefixStage     = "internal.registry.Stage"
	LogPrefixActivate  = "internal.registry.ActivateStaged"
	LogPrefixMerge     = "internal.registry.ApplyMerge"
	LogPrefixBootstrap = "internal.registry.Bootstrap"
)

const (
	// DefaultConfidenceThreshold applies to records without their own.
	DefaultConfidenceThreshold = 0.70
	// mergeRetryAttempts bounds how often a merge rebuilds against a fresh
	// snapshot after losing the publish race.
	mergeRetryAttempts = 3
)
