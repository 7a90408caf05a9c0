package classifier

// Config tunes the scoring engine. Every knob has a documented default in
// constant.go; zero values take the default.
type Config struct {
	// Sub-score weights. The weighted sum may exceed 1 and is clipped, so
	// an exact training-utterance hit saturates confidence on its own.
	WeightExact   float64
	WeightKeyword float64
	WeightFuzzy   float64
	// NearExactMaxDistance is the edit distance up to which an utterance
	// still counts as an exact hit (typo tolerance).
	NearExactMaxDistance int
	// AmbiguityMargin is the lead the top candidate needs over the runner-up
	// for a firm match.
	AmbiguityMargin float64
	// ConsiderationFloor is the minimum score for a candidate to take part
	// in disambiguation.
	ConsiderationFloor float64
	// TopCandidates caps the candidates reported for explainability.
	TopCandidates int
}

// Candidate is one considered intent and its blended score.
type Candidate struct {
	IntentID   string  `json:"intent_id"`
	IntentName string  `json:"intent_name"`
	Agent      string  `json:"agent"`
	Category   string  `json:"category"`
	Priority   int     `json:"priority"`
	Score      float64 `json:"score"`
}

// Decision is the classification outcome. Exactly one of three shapes:
// firm match (Matched, no clarification), disambiguation request
// (NeedsClarification with a prompt and the close candidates), or no-match
// (IntentName empty, NeedsClarification false, generic guidance in the
// prompt field).
type Decision struct {
	Matched              bool
	IntentID             string
	IntentName           string
	Agent                string
	Category             string
	Confidence           float64
	NeedsClarification   bool
	DisambiguationPrompt string
	Candidates           []Candidate
}
