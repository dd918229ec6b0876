// Package snapshot defines the queryable page capture the state detector
// consumes. Producing a Snapshot from a raw page capture is the capture
// layer's job; this package only holds the value and its query operations.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Element is one typed node from a parsed page capture.
type Element struct {
	// Role is the accessibility role: button, tab, link, option, menuitem,
	// region, generic, heading, ...
	Role string `json:"role"`

	// Name is the element's accessible name or text content.
	Name string `json:"name"`

	// Disabled reflects the element's disabled attribute.
	Disabled bool `json:"disabled,omitempty"`

	// Level is the heading level, when the role carries one.
	Level int `json:"level,omitempty"`
}

// Snapshot is an ordered flat list of elements from one page capture.
// Element order is part of the contract: detectors use adjacency between
// consecutive elements as a structural signal.
type Snapshot struct {
	URL      string    `json:"url,omitempty"`
	Title    string    `json:"title,omitempty"`
	Elements []Element `json:"elements"`
}

// Query selects elements by role and/or text.
type Query struct {
	// Role filters by exact role. Empty matches any role.
	Role string

	// Text filters by name. Empty matches any name.
	Text string

	// Partial makes the text filter a containment test instead of equality.
	Partial bool

	// CaseInsensitive lowers both sides of the text comparison.
	CaseInsensitive bool
}

// Find returns the elements matching the query, preserving capture order.
func (s *Snapshot) Find(q Query) []Element {
	var out []Element
	for _, el := range s.Elements {
		if q.Role != "" && el.Role != q.Role {
			continue
		}
		if q.Text != "" && !matchText(el.Name, q.Text, q.Partial, q.CaseInsensitive) {
			continue
		}
		out = append(out, el)
	}
	return out
}

// HasText reports whether any element's name contains the phrase,
// case-insensitively.
func (s *Snapshot) HasText(phrase string) bool {
	needle := strings.ToLower(phrase)
	for _, el := range s.Elements {
		if strings.Contains(strings.ToLower(el.Name), needle) {
			return true
		}
	}
	return false
}

func matchText(name, text string, partial, caseInsensitive bool) bool {
	if caseInsensitive {
		name = strings.ToLower(name)
		text = strings.ToLower(text)
	}
	if partial {
		return strings.Contains(name, text)
	}
	return name == text
}

// Decode reads the JSON form of a snapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}
