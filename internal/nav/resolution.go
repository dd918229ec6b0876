// Package nav maps parsed intents to concrete console navigation targets.
package nav

// ResolutionSource identifies which strategy produced a URL.
type ResolutionSource string

const (
	SourceStaticRoute  ResolutionSource = "static_route"
	SourceDynamicRoute ResolutionSource = "dynamic_route"
	SourceShortcut     ResolutionSource = "shortcut"
	SourceWorkspace    ResolutionSource = "workspace"
	SourceDirect       ResolutionSource = "direct"
)

// Post-navigation action types, in the vocabulary of the automation layer
// that executes them.
const (
	ActionWaitForElement = "wait_for_element"
	ActionFill           = "fill"
	ActionClick          = "click"
)

// PostNavigationAction is one follow-up automation step to run after the
// browser lands on the resolved URL.
type PostNavigationAction struct {
	// Type is one of wait_for_element, fill, click.
	Type string `json:"type"`

	// Target describes the element the action applies to.
	Target string `json:"target"`

	// Value is the text to enter for fill actions.
	Value string `json:"value,omitempty"`

	// TimeoutMS bounds wait actions.
	TimeoutMS int `json:"timeout_ms,omitempty"`

	// Required marks actions whose failure should abort the sequence.
	Required bool `json:"required"`

	// MaxAttempts and BackoffMS define the retry policy for click actions.
	MaxAttempts int `json:"max_attempts,omitempty"`
	BackoffMS   int `json:"backoff_ms,omitempty"`
}

// URLResolution is the outcome of resolving an intent. When IsComplete is
// true the URL contains no unresolved template placeholders.
type URLResolution struct {
	URL                   string                 `json:"url"`
	IsComplete            bool                   `json:"is_complete"`
	UnresolvedVariables   []string               `json:"unresolved_variables,omitempty"`
	PostNavigationActions []PostNavigationAction `json:"post_navigation_actions,omitempty"`
	Source                ResolutionSource       `json:"resolution_source"`
}
