package classifier

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"intent-classifier/internal/model"
	"intent-classifier/pkg/similarity"
)

// Classify scores every record in the snapshot and applies the decision
// policy. It never returns an error: unusable input yields a no-match
// decision, not a failure.
func (e *ScoringEngine) Classify(ctx context.Context, utterance string, snap *model.Snapshot) Decision {
	norm := similarity.Normalize(utterance)
	if norm == "" || snap == nil || snap.Count() == 0 {
		return e.noMatch(nil, 0)
	}

	ranked := make([]Candidate, 0, snap.Count())
	for _, rec := range snap.Records {
		ranked = append(ranked, e.scoreRecord(norm, rec))
	}
	rank(ranked)

	decision := e.decide(snap, ranked)
	e.l.Debugf(ctx, "%s: %q -> intent=%q confidence=%.3f clarify=%v",
		LogPrefixClassify, norm, decision.IntentName, decision.Confidence, decision.NeedsClarification)
	return decision
}

// decide turns the ranked candidates into one of the three outcomes:
//  1. firm match: top clears its threshold and leads by the margin;
//  2. disambiguation: two or more candidates above the consideration floor
//     sit within the margin of each other;
//  3. no match: everything else.
func (e *ScoringEngine) decide(snap *model.Snapshot, ranked []Candidate) Decision {
	top := ranked[0]
	candidates := e.topCandidates(ranked)
	if top.Score <= 0 {
		return e.noMatch(candidates, 0)
	}

	topRec, _ := snap.ByID(top.IntentID)
	threshold := snap.EffectiveThreshold(topRec)

	clearLead := len(ranked) == 1 || top.Score-ranked[1].Score >= e.cfg.AmbiguityMargin
	if top.Score >= threshold && clearLead {
		return Decision{
			Matched:    true,
			IntentID:   top.IntentID,
			IntentName: top.IntentName,
			Agent:      top.Agent,
			Category:   top.Category,
			Confidence: top.Score,
			Candidates: candidates,
		}
	}

	if close := e.closeCandidates(ranked); len(close) >= 2 {
		return Decision{
			IntentID:             top.IntentID,
			IntentName:           top.IntentName,
			Agent:                top.Agent,
			Category:             top.Category,
			Confidence:           top.Score,
			NeedsClarification:   true,
			DisambiguationPrompt: e.prompt(snap, topRec, close),
			Candidates:           candidates,
		}
	}

	return e.noMatch(candidates, top.Score)
}

// closeCandidates returns the candidates within the ambiguity margin of the
// top one, all at or above the consideration floor. Ranked input means the
// first drop below either bound ends the scan.
func (e *ScoringEngine) closeCandidates(ranked []Candidate) []Candidate {
	top := ranked[0]
	if top.Score < e.cfg.ConsiderationFloor {
		return nil
	}

	var out []Candidate
	for _, c := range ranked {
		if c.Score < e.cfg.ConsiderationFloor || top.Score-c.Score >= e.cfg.AmbiguityMargin {
			break
		}
		out = append(out, c)
	}
	if len(out) > e.cfg.TopCandidates {
		out = out[:e.cfg.TopCandidates]
	}
	return out
}

// prompt prefers the top record's own disambiguation prompt and otherwise
// synthesizes one from the close candidates' short descriptions.
func (e *ScoringEngine) prompt(snap *model.Snapshot, topRec model.IntentRecord, close []Candidate) string {
	if topRec.DisambiguationPrompt != "" {
		return topRec.DisambiguationPrompt
	}

	descs := make([]string, 0, len(close))
	for _, c := range close {
		desc := c.IntentName
		if rec, ok := snap.ByID(c.IntentID); ok && rec.DescriptionShort != "" {
			desc = rec.DescriptionShort
		}
		descs = append(descs, desc)
	}

	if len(descs) == 2 {
		return fmt.Sprintf("I want to make sure I help you correctly. Are you asking about %s or %s?",
			descs[0], descs[1])
	}
	return fmt.Sprintf("I want to make sure I understand. Are you asking about %s?", joinWithOr(descs))
}

// noMatch carries the generic fallback guidance in the prompt field but does
// not ask for clarification: there is nothing concrete to clarify against.
func (e *ScoringEngine) noMatch(candidates []Candidate, topScore float64) Decision {
	if candidates == nil {
		candidates = []Candidate{}
	}
	return Decision{
		Confidence:           topScore,
		DisambiguationPrompt: NoMatchPrompt,
		Candidates:           candidates,
	}
}

// topCandidates keeps the highest-ranked candidates that scored at all.
func (e *ScoringEngine) topCandidates(ranked []Candidate) []Candidate {
	out := make([]Candidate, 0, e.cfg.TopCandidates)
	for _, c := range ranked {
		if len(out) == e.cfg.TopCandidates || c.Score <= 0 {
			break
		}
		out = append(out, c)
	}
	return out
}

// rank orders by score, then priority (higher wins), then intent_id, so ties
// break the same way on every call.
func rank(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].Priority != cands[j].Priority {
			return cands[i].Priority > cands[j].Priority
		}
		return cands[i].IntentID < cands[j].IntentID
	})
}

func joinWithOr(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
