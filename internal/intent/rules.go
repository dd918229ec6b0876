package intent

import "strings"

// tiebreak selects how a rule list resolves multiple matching rules.
type tiebreak int

const (
	// firstMatch stops at the first rule whose phrase occurs in the input.
	// Table order is the priority order.
	firstMatch tiebreak = iota

	// longestMatch scans every rule and keeps the one with the longest
	// matching phrase. A strictly longer phrase always replaces a shorter
	// one; on equal length the earlier rule keeps the slot.
	longestMatch
)

// rule maps one surface phrase to a canonical result with a fixed score.
type rule struct {
	phrase string  // surface phrase, tested by substring containment
	result string  // canonical value produced when the rule fires
	score  float64 // confidence assigned to the hit
	meta   string  // optional payload carried alongside the result
}

// ruleList is an ordered table of rules with an explicit tiebreak policy,
// so match precedence is a property of the data rather than loop shape.
type ruleList struct {
	policy tiebreak
	rules  []rule
}

// ruleHit is the outcome of evaluating a rule list against an input.
type ruleHit struct {
	rule
	atStart bool // the phrase occurred at position 0 of the input
}

// eval tests the input against the list under its tiebreak policy.
// The input must already be normalized (lower-cased, trimmed).
func (l ruleList) eval(input string) (ruleHit, bool) {
	switch l.policy {
	case firstMatch:
		for _, r := range l.rules {
			if idx := strings.Index(input, r.phrase); idx >= 0 {
				return ruleHit{rule: r, atStart: idx == 0}, true
			}
		}
		return ruleHit{}, false

	case longestMatch:
		var best ruleHit
		found := false
		for _, r := range l.rules {
			idx := strings.Index(input, r.phrase)
			if idx < 0 {
				continue
			}
			if !found || len(r.phrase) > len(best.phrase) {
				best = ruleHit{rule: r, atStart: idx == 0}
				found = true
			}
		}
		return best, found
	}
	return ruleHit{}, false
}
