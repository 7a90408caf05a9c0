package model

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	PriorityMin     = 1
	PriorityMax     = 5
	PriorityDefault = 3
)

// intentIDPattern is INT-<category code>-<4-digit sequence>, e.g. INT-PHR-0001.
var intentIDPattern = regexp.MustCompile(`^INT-[A-Z][A-Z0-9]{1,4}-[0-9]{4}$`)

// IntentRecord is one routable intent definition: what the intent is called,
// where it routes, and the examples and keywords the classifier matches against.
type IntentRecord struct {
	IntentID             string   `json:"intent_id"`
	IntentName           string   `json:"intent_name"`
	Category             string   `json:"category"`
	AgentRouting         string   `json:"agent_routing"`
	Priority             int      `json:"priority"`
	DescriptionShort     string   `json:"description_short"`
	TrainingUtterances   []string `json:"training_utterances"`
	Keywords             []string `json:"keywords,omitempty"`
	DisambiguationPrompt string   `json:"disambiguation_prompt,omitempty"`
	ConfidenceThreshold  float64  `json:"confidence_threshold,omitempty"`
}

// FieldError pinpoints a problem on one field of one record. IntentID is
// empty for problems that are not attributable to a single record.
type FieldError struct {
	IntentID string `json:"intent_id,omitempty"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (e FieldError) Error() string {
	if e.IntentID == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.IntentID, e.Field, e.Message)
}

// Normalized returns a copy with defaults applied and keywords collapsed to a
// case-insensitive set: lowercased, deduplicated, first occurrence wins.
// Utterances keep their wording and only lose surrounding whitespace.
func (r IntentRecord) Normalized() IntentRecord {
	out := r
	if out.Priority == 0 {
		out.Priority = PriorityDefault
	}

	out.TrainingUtterances = make([]string, 0, len(r.TrainingUtterances))
	for _, u := range r.TrainingUtterances {
		if u = strings.TrimSpace(u); u != "" {
			out.TrainingUtterances = append(out.TrainingUtterances, u)
		}
	}

	seen := make(map[string]struct{}, len(r.Keywords))
	out.Keywords = make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Keywords = append(out.Keywords, k)
	}

	out.IntentID = strings.TrimSpace(r.IntentID)
	out.IntentName = strings.TrimSpace(r.IntentName)
	out.Category = strings.TrimSpace(r.Category)
	out.AgentRouting = strings.TrimSpace(r.AgentRouting)
	out.DescriptionShort = strings.TrimSpace(r.DescriptionShort)
	out.DisambiguationPrompt = strings.TrimSpace(r.DisambiguationPrompt)
	return out
}

// WellFormed checks every field constraint and returns all violations, never
// stopping at the first.
func (r IntentRecord) WellFormed() []FieldError {
	var errs []FieldError

	add := func(field, msg string) {
		errs = append(errs, FieldError{IntentID: r.IntentID, Field: field, Message: msg})
	}

	switch {
	case r.IntentID == "":
		add("intent_id", "must not be empty")
	case !intentIDPattern.MatchString(r.IntentID):
		add("intent_id", `must match INT-<CATEGORY-CODE>-<4 digits>, e.g. "INT-PHR-0001"`)
	}

	if r.IntentName == "" {
		add("intent_name", "must not be empty")
	}
	if r.Category == "" {
		add("category", "must not be empty")
	}
	if r.AgentRouting == "" {
		add("agent_routing", "must not be empty")
	}
	if r.Priority < PriorityMin || r.Priority > PriorityMax {
		add("priority", fmt.Sprintf("must be between %d and %d, got %d", PriorityMin, PriorityMax, r.Priority))
	}
	if r.DescriptionShort == "" {
		add("description_short", "must not be empty")
	}

	nonBlank := 0
	for _, u := range r.TrainingUtterances {
		if strings.TrimSpace(u) != "" {
			nonBlank++
		}
	}
	if nonBlank == 0 {
		add("training_utterances", "at least one training utterance is required")
	}

	if r.ConfidenceThreshold < 0 || r.ConfidenceThreshold > 1 {
		add("confidence_threshold", fmt.Sprintf("must be in (0, 1], got %g", r.ConfidenceThreshold))
	}

	return errs
}
