package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"consolenav/internal/metrics"
)

// MinConfidence is the threshold below which a parse always requires
// clarification before acting.
const MinConfidence = 0.5

// minInputLength guards IsValidCommand against fragments like "a" or "ok".
const minInputLength = 3

// Confidence weights for the overall score. Workspace and namespace only
// participate when their extractors fired, so action and resource alone
// carry full weight on plain commands.
const (
	actionWeight    = 0.30
	resourceWeight  = 0.40
	workspaceWeight = 0.15
	namespaceWeight = 0.15
)

// Scores assigned to inferred (not extracted) action/resource values.
// Keyword-based inference is worth more than falling through to the
// universal defaults.
const (
	inferredKeywordScore = 0.5
	inferredDefaultScore = 0.3
)

// Parser turns free-form command text into ParsedIntent values. Construct
// one in your composition root and share it freely: Parse is a pure
// function of its input and the static tables, so concurrent use is safe.
type Parser struct {
	minConfidence float64
	log           zerolog.Logger
}

// Option configures the parser.
type Option func(*Parser)

// WithMinConfidence overrides the clarification threshold.
func WithMinConfidence(v float64) Option {
	return func(p *Parser) {
		p.minConfidence = v
	}
}

// WithLogger attaches a logger for parse diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// NewParser creates a parser with default settings.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		minConfidence: MinConfidence,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse interprets one command. It never fails: ambiguous or empty input
// degrades to low confidence and a clarification request rather than an
// error.
func (p *Parser) Parse(input string) *ParsedIntent {
	raw := strings.TrimSpace(input)

	actionMatch := ExtractAction(raw)
	resourceMatch := ExtractResource(raw)
	workspaceMatch := ExtractWorkspace(raw)
	namespaceMatch := ExtractNamespace(raw)
	nameMatch := ExtractResourceName(raw)

	intent := &ParsedIntent{
		RawInput:   raw,
		Parameters: extractParameters(raw),
	}

	var patterns []string
	actionScore := actionMatch.Confidence
	if actionMatch.Ok {
		intent.Action = actionMatch.Action
		patterns = append(patterns, fmt.Sprintf("action:%s", actionMatch.Action))
	} else {
		intent.Action, actionScore = inferAction(raw)
	}

	resourceScore := resourceMatch.Confidence
	if resourceMatch.Ok {
		intent.Resource = resourceMatch.Resource
		patterns = append(patterns, fmt.Sprintf("resource:%s", resourceMatch.Resource))
	} else {
		intent.Resource, resourceScore = inferResource(raw)
	}

	if workspaceMatch.Ok {
		intent.Workspace = workspaceMatch.Workspace
		patterns = append(patterns, fmt.Sprintf("workspace:%s", workspaceMatch.Workspace))
	} else if resourceMatch.Ok && resourceMatch.DefaultWorkspace != "" {
		intent.Workspace = resourceMatch.DefaultWorkspace
	}

	if namespaceMatch.Ok {
		intent.Namespace = namespaceMatch.Value
		patterns = append(patterns, fmt.Sprintf("namespace:%s", namespaceMatch.Value))
	}

	if nameMatch.Ok {
		intent.ResourceName = nameMatch.Value
	}

	intent.MatchedPatterns = patterns

	intent.Confidence = weightedAverage([]component{
		{weight: actionWeight, score: actionScore, present: true},
		{weight: resourceWeight, score: resourceScore, present: true},
		{weight: workspaceWeight, score: workspaceMatch.Confidence, present: workspaceMatch.Ok},
		{weight: namespaceWeight, score: namespaceMatch.Confidence, present: namespaceMatch.Ok},
	})

	p.applyClarification(intent)

	metrics.ParseCompleted()
	if intent.NeedsClarification {
		metrics.ClarificationRequired()
	}
	p.log.Debug().
		Str("action", string(intent.Action)).
		Str("resource", string(intent.Resource)).
		Float64("confidence", intent.Confidence).
		Bool("needs_clarification", intent.NeedsClarification).
		Msg("parsed command")

	return intent
}

// applyClarification decides whether the intent can be acted on as-is and,
// if not, generates the questions to ask.
func (p *Parser) applyClarification(intent *ParsedIntent) {
	lowConfidence := intent.Confidence < p.minConfidence
	missingNamespace := intent.Action.IsMutating() &&
		intent.Resource.IsNamespaceScoped() &&
		intent.Namespace == ""

	if !lowConfidence && !missingNamespace {
		return
	}
	intent.NeedsClarification = true

	var questions []string
	if intent.Namespace == "" {
		questions = append(questions, "Which namespace should I use?")
	}
	if intent.Resource == ResourceWorkspace && intent.Workspace == "" {
		questions = append(questions, "Which workspace do you want to open? (waap, mcn, dns, cdn, shared, admin, observability)")
	}
	if intent.Action == ActionCreate {
		questions = append(questions, fmt.Sprintf("What should the new %s be called?", intent.Resource.Human()))
	}
	intent.ClarificationQuestions = questions
}

// inferAction picks an action when no verb was extracted, from the leading
// word of the input. Navigate is the universal default.
func inferAction(raw string) (Action, float64) {
	first := firstWord(normalize(raw))
	switch first {
	case "what", "which", "who", "show", "list", "display":
		return ActionList, inferredKeywordScore
	case "create", "add", "new", "make", "provision":
		return ActionCreate, inferredKeywordScore
	case "edit", "update", "modify", "change":
		return ActionEdit, inferredKeywordScore
	case "delete", "remove", "destroy":
		return ActionDelete, inferredKeywordScore
	}
	return ActionNavigate, inferredDefaultScore
}

// inferResource picks a resource when none was extracted. Overview is the
// universal default.
func inferResource(raw string) (Resource, float64) {
	s := normalize(raw)
	for _, word := range []string{"home", "dashboard", "main", "start"} {
		if strings.Contains(s, word) {
			return ResourceHome, inferredKeywordScore
		}
	}
	for _, word := range []string{"admin", "settings", "account", "tenant"} {
		if strings.Contains(s, word) {
			return ResourceWorkspace, inferredKeywordScore
		}
	}
	return ResourceOverview, inferredDefaultScore
}

func firstWord(s string) string {
	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		return s[:idx]
	}
	return s
}

// segmentSplitter separates compound commands. Longest separator first so
// "and then" is not split as "and" + "then".
var segmentSplitter = regexp.MustCompile(`(?i)\s+(?:and\s+then|then|and)\s+`)

// ParseMultiple splits a compound command on "and then" / "then" / "and"
// and parses each segment independently. Segments share no context: a
// namespace stated in the first segment does not carry into the second.
func (p *Parser) ParseMultiple(input string) []*ParsedIntent {
	segments := segmentSplitter.Split(strings.TrimSpace(input), -1)
	intents := make([]*ParsedIntent, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		intents = append(intents, p.Parse(seg))
	}
	return intents
}

// IsValidCommand reports whether the input parses confidently enough to be
// worth acting on without clarification.
func (p *Parser) IsValidCommand(input string) bool {
	if len(strings.TrimSpace(input)) < minInputLength {
		return false
	}
	return p.Parse(input).Confidence >= p.minConfidence
}
