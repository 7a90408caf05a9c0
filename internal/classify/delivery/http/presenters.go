package http

import (
	"intent-classifier/internal/classifier"
	"intent-classifier/internal/classify"
)

// --- Request DTOs ---

type classifyReq struct {
	Utterance string `json:"utterance"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() classify.ClassifyInput {
	return classify.ClassifyInput{
		Utterance: r.Utterance,
	}
}

// --- Response DTOs ---

type candidateResp struct {
	IntentID   string  `json:"intent_id"`
	IntentName string  `json:"intent_name"`
	Agent      string  `json:"agent"`
	Category   string  `json:"category"`
	Priority   int     `json:"priority"`
	Score      float64 `json:"score"`
}

// decisionResp is the wire shape of one classification decision. Name and
// agent fields are null on a no-match so callers can distinguish "routed
// nowhere" from an intent that happens to be named the empty string.
type decisionResp struct {
	Matched              bool            `json:"matched"`
	IntentID             *string         `json:"intent_id"`
	IntentName           *string         `json:"intent_name"`
	Agent                *string         `json:"agent"`
	Category             *string         `json:"category"`
	Confidence           float64         `json:"confidence"`
	NeedsClarification   bool            `json:"needs_clarification"`
	DisambiguationPrompt *string         `json:"disambiguation_prompt"`
	Candidates           []candidateResp `json:"candidates"`
}

func newDecisionResp(d classifier.Decision) decisionResp {
	candidates := make([]candidateResp, len(d.Candidates))
	for i, c := range d.Candidates {
		candidates[i] = candidateResp{
			IntentID:   c.IntentID,
			IntentName: c.IntentName,
			Agent:      c.Agent,
			Category:   c.Category,
			Priority:   c.Priority,
			Score:      c.Score,
		}
	}
	return decisionResp{
		Matched:              d.Matched,
		IntentID:             optional(d.IntentID),
		IntentName:           optional(d.IntentName),
		Agent:                optional(d.Agent),
		Category:             optional(d.Category),
		Confidence:           d.Confidence,
		NeedsClarification:   d.NeedsClarification,
		DisambiguationPrompt: optional(d.DisambiguationPrompt),
		Candidates:           candidates,
	}
}

type classifyResp struct {
	Utterance string `json:"utterance"`
	decisionResp
	SnapshotVersion  int64   `json:"snapshot_version"`
	Cached           bool    `json:"cached"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}

func (h *handler) newClassifyResp(utterance string, out classify.ClassifyOutput) classifyResp {
	return classifyResp{
		Utterance:        utterance,
		decisionResp:     newDecisionResp(out.Decision),
		SnapshotVersion:  out.SnapshotVersion,
		Cached:           out.Cached,
		ProcessingTimeMs: float64(out.Elapsed.Microseconds()) / 1000.0,
	}
}

type segmentResp struct {
	Segment  string       `json:"segment"`
	Decision decisionResp `json:"decision"`
}

type classifySegmentsResp struct {
	Utterance          string        `json:"utterance"`
	HasMultipleIntents bool          `json:"has_multiple_intents"`
	Segments           []segmentResp `json:"segments"`
	SnapshotVersion    int64         `json:"snapshot_version"`
	ProcessingTimeMs   float64       `json:"processing_time_ms"`
}

func (h *handler) newClassifySegmentsResp(utterance string, out classify.ClassifySegmentsOutput) classifySegmentsResp {
	segments := make([]segmentResp, len(out.Segments))
	for i, s := range out.Segments {
		segments[i] = segmentResp{
			Segment:  s.Segment,
			Decision: newDecisionResp(s.Decision),
		}
	}
	return classifySegmentsResp{
		Utterance:          utterance,
		HasMultipleIntents: len(out.Segments) > 1,
		Segments:           segments,
		SnapshotVersion:    out.SnapshotVersion,
		ProcessingTimeMs:   float64(out.Elapsed.Microseconds()) / 1000.0,
	}
}

// optional maps the empty string to a JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
