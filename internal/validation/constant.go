package validation

// Log prefixes
const (
	LogPrefixValidate = "internal.validation.Validate"
)

// Rule defaults
const (
	DefaultMinTrainingUtterances = 5
	DefaultSimilarityWarnFloor   = 0.82
)
