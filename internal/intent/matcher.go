package intent

import (
	"regexp"
	"strings"
)

// Confidence scores assigned by the extractors. The exact values matter less
// than their ordering: canonical hits outrank synonyms, synonyms at the
// start of the input outrank ones buried in it, and fallbacks rank lowest.
const (
	actionCanonicalConfidence    = 1.0
	actionSynonymStartConfidence = 0.95
	actionSynonymConfidence      = 0.8
	actionFallbackConfidence     = 0.6

	resourceCanonicalConfidence = 0.95
	resourceSynonymConfidence   = 0.85

	workspaceConfidence = 0.9
	namespaceConfidence = 0.9
	nameConfidence      = 0.9
)

// ActionMatch is the result of action extraction. Ok is false on no match.
type ActionMatch struct {
	Action     Action
	Confidence float64
	Ok         bool
}

// ResourceMatch is the result of resource extraction. DefaultWorkspace is
// the workspace context the winning resource carries, if any.
type ResourceMatch struct {
	Resource         Resource
	DefaultWorkspace Workspace
	Confidence       float64
	Ok               bool
}

// WorkspaceMatch is the result of explicit workspace extraction.
type WorkspaceMatch struct {
	Workspace  Workspace
	Confidence float64
	Ok         bool
}

// FieldMatch is the result of namespace or resource-name extraction.
type FieldMatch struct {
	Value      string
	Confidence float64
	Ok         bool
}

// normalize lower-cases and trims the input; all extractors operate on the
// normalized form.
func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ExtractAction finds the action verb in the input. An input starting with
// a canonical verb is a certain match; otherwise the first synonym found
// anywhere in the input wins, scored by whether it leads the input. With no
// verb at all, an input leading with a known resource phrase reads as a
// list request.
func ExtractAction(input string) ActionMatch {
	s := normalize(input)
	if s == "" {
		return ActionMatch{}
	}

	for _, entry := range actionSynonyms {
		if strings.HasPrefix(s, string(entry.action)) {
			return ActionMatch{Action: entry.action, Confidence: actionCanonicalConfidence, Ok: true}
		}
	}

	if hit, ok := actionRules.eval(s); ok {
		conf := actionSynonymConfidence
		if hit.atStart {
			conf = actionSynonymStartConfidence
		}
		return ActionMatch{Action: Action(hit.result), Confidence: conf, Ok: true}
	}

	// Bare resource phrases at the front of the input read as "list".
	if hit, ok := resourceRules.eval(s); ok && hit.atStart {
		return ActionMatch{Action: ActionList, Confidence: actionFallbackConfidence, Ok: true}
	}

	return ActionMatch{}
}

// ExtractResource finds the resource kind in the input. Every canonical
// name and synonym is tested; the longest matching phrase wins regardless
// of discovery order, so "http load balancer" beats the bare "load
// balancer" it contains.
func ExtractResource(input string) ResourceMatch {
	s := normalize(input)
	hit, ok := resourceRules.eval(s)
	if !ok {
		return ResourceMatch{}
	}
	return ResourceMatch{
		Resource:         Resource(hit.result),
		DefaultWorkspace: Workspace(hit.meta),
		Confidence:       hit.score,
		Ok:               true,
	}
}

// ExtractWorkspace finds an explicit workspace mention. First containment
// match in the phrase table wins.
func ExtractWorkspace(input string) WorkspaceMatch {
	s := normalize(input)
	hit, ok := workspaceRules.eval(s)
	if !ok {
		return WorkspaceMatch{}
	}
	return WorkspaceMatch{Workspace: Workspace(hit.result), Confidence: hit.score, Ok: true}
}

// Namespace patterns, in priority order. The trailing "in <ns>" form comes
// last so that "in production namespace" binds to the explicit form first.
var namespacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:in|within|for)\s+([a-z0-9][a-z0-9_-]*)\s+namespace`),
	regexp.MustCompile(`namespace\s+([a-z0-9][a-z0-9_-]*)`),
	regexp.MustCompile(`\bin\s+([a-z0-9][a-z0-9_-]*)$`),
	regexp.MustCompile(`ns:\s*([a-z0-9][a-z0-9_-]*)`),
}

// ExtractNamespace finds the namespace identifier, trying each pattern in
// order and returning the first capture.
func ExtractNamespace(input string) FieldMatch {
	s := normalize(input)
	for _, pat := range namespacePatterns {
		if m := pat.FindStringSubmatch(s); m != nil {
			return FieldMatch{Value: m[1], Confidence: namespaceConfidence, Ok: true}
		}
	}
	return FieldMatch{}
}

var (
	namedPattern = regexp.MustCompile(`(?:named|called)\s+["']?([a-z0-9][a-z0-9._-]*)["']?`)

	// resourceAdjacentPattern captures the word following a resource
	// keyword, e.g. the "frontend" in "edit load balancer frontend".
	resourceAdjacentPattern = regexp.MustCompile(
		`(?:balancer|loadbalancer|lb|pool|firewall|waf|certificate|cert|zone|distribution|site|user|role|policy|check)\s+["']?([a-z0-9][a-z0-9._-]*)["']?`)

	// nameStopwords are words that follow resource keywords without being
	// object names.
	nameStopwords = map[string]bool{
		"in": true, "within": true, "for": true, "named": true, "called": true,
		"from": true, "to": true, "with": true, "and": true, "then": true,
		"all": true, "details": true, "detailed": true, "sorted": true,
		"sort": true, "filter": true, "first": true, "top": true, "limit": true,
		"namespace": true, "ns": true,
	}
)

// ExtractResourceName finds the specific object name, preferring the
// explicit "named <x>" / "called <x>" form, then a word adjacent to a
// resource keyword. Surrounding quotes are stripped by the patterns.
func ExtractResourceName(input string) FieldMatch {
	s := normalize(input)
	if m := namedPattern.FindStringSubmatch(s); m != nil {
		return FieldMatch{Value: m[1], Confidence: nameConfidence, Ok: true}
	}
	if m := resourceAdjacentPattern.FindStringSubmatch(s); m != nil {
		if !nameStopwords[m[1]] {
			return FieldMatch{Value: m[1], Confidence: nameConfidence - 0.2, Ok: true}
		}
	}
	return FieldMatch{}
}

var nonToken = regexp.MustCompile(`[^a-z0-9\s-]`)

// Tokenize lower-cases the input, strips everything except word characters
// and hyphens, and splits on whitespace into a set.
func Tokenize(input string) map[string]bool {
	cleaned := nonToken.ReplaceAllString(strings.ToLower(input), "")
	set := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		set[tok] = true
	}
	return set
}

// Similarity computes the Jaccard similarity of the two inputs' token sets.
// When both inputs tokenize to nothing the result is NaN (0/0); callers that
// care should check with math.IsNaN.
func Similarity(a, b string) float64 {
	ta, tb := Tokenize(a), Tokenize(b)
	intersection := 0
	for tok := range ta {
		if tb[tok] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	return float64(intersection) / float64(union)
}
