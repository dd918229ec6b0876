package intent

import (
	"math"
	"sort"
	"strings"
)

// maxSuggestions caps the Suggestions result.
const maxSuggestions = 5

// exampleCommands is the curated pool Suggestions draws from. These are
// complete commands known to parse confidently.
var exampleCommands = []string{
	"list http load balancers",
	"create http load balancer in production namespace",
	"show origin pools in staging",
	"edit app firewall named default-waf",
	"view certificates",
	"list dns zones",
	"open cdn distributions",
	"show alerts",
	"list audit logs",
	"show all users",
	"list api credentials",
	"go to home",
	"open administration",
	"list sites",
	"show service policies in production",
}

// Suggestions returns up to five example commands related to the partial
// input, best matches first. This is a convenience for interactive callers
// and carries no guarantee beyond "each suggestion parses confidently".
func (p *Parser) Suggestions(partial string) []string {
	s := normalize(partial)
	if s == "" {
		out := make([]string, maxSuggestions)
		copy(out, exampleCommands)
		return out
	}

	type scored struct {
		command string
		score   float64
	}
	var candidates []scored
	for _, cmd := range exampleCommands {
		score := Similarity(s, cmd)
		if math.IsNaN(score) {
			score = 0
		}
		if strings.HasPrefix(cmd, s) {
			score += 1
		}
		if score > 0 {
			candidates = append(candidates, scored{command: cmd, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.command)
	}
	return out
}
