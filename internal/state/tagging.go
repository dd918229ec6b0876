package state

import (
	"strings"

	"consolenav/internal/snapshot"
)

// taggedElement is a snapshot element annotated with inferred locked-ness.
// Tagging happens in one pass over the snapshot so every downstream
// detector consumes the same judgment instead of re-deriving it.
type taggedElement struct {
	snapshot.Element
	Locked bool
}

// tagLocked walks the snapshot once and annotates each element. An element
// is locked when its own name mentions "locked", when it is disabled, or
// when the immediately preceding element in capture order is the "Locked"
// marker the console renders next to gated controls.
func tagLocked(snap *snapshot.Snapshot) []taggedElement {
	tagged := make([]taggedElement, len(snap.Elements))
	for i, el := range snap.Elements {
		locked := el.Disabled || strings.Contains(strings.ToLower(el.Name), "locked")
		if !locked && i > 0 && strings.EqualFold(snap.Elements[i-1].Name, "locked") {
			locked = true
		}
		tagged[i] = taggedElement{Element: el, Locked: locked}
	}
	return tagged
}
