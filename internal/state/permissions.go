package state

import (
	"strings"

	"consolenav/internal/snapshot"
)

// actionRoles are the roles whose elements count as page actions.
var actionRoles = map[string]bool{
	"button":   true,
	"tab":      true,
	"option":   true,
	"menuitem": true,
}

// denialKeywords mark tooltips that explain a denied action.
var denialKeywords = []string{
	"permission",
	"not authorized",
	"access denied",
	"insufficient",
	"contact your administrator",
}

// detectPermissions derives the RBAC posture from the tagged snapshot.
func detectPermissions(snap *snapshot.Snapshot) *PermissionState {
	perms := &PermissionState{
		LockedActions:    []string{},
		AvailableActions: []string{},
	}

	tagged := tagLocked(snap)
	for _, el := range tagged {
		if !actionRoles[el.Role] || el.Name == "" {
			continue
		}
		if strings.EqualFold(el.Name, "locked") {
			// The marker itself is not an action.
			continue
		}
		if el.Locked {
			perms.LockedActions = append(perms.LockedActions, el.Name)
		} else {
			perms.AvailableActions = append(perms.AvailableActions, el.Name)
		}
	}

	perms.ReadOnlyBadge = detectReadOnlyBadge(snap)
	perms.DenialHints = collectDenialHints(snap)
	perms.Level = deriveLevel(perms)

	perms.CanCreate = !lockedMentions(perms.LockedActions, "add", "create")
	perms.CanEdit = !lockedMentions(perms.LockedActions, "edit", "manage configuration")
	perms.CanDelete = !lockedMentions(perms.LockedActions, "delete")
	perms.CanClone = !lockedMentions(perms.LockedActions, "clone")

	return perms
}

// detectReadOnlyBadge looks for the page-wide read-only marker: a region
// immediately followed by an element named "view", or direct read-only
// text.
func detectReadOnlyBadge(snap *snapshot.Snapshot) bool {
	for i := 0; i+1 < len(snap.Elements); i++ {
		if snap.Elements[i].Role == "region" && strings.EqualFold(snap.Elements[i+1].Name, "view") {
			return true
		}
	}
	return snap.HasText("View Configuration") || snap.HasText("Read Only")
}

// collectDenialHints gathers tooltip text that explains denied actions.
func collectDenialHints(snap *snapshot.Snapshot) []string {
	var hints []string
	for _, el := range snap.Find(snapshot.Query{Role: "tooltip"}) {
		lower := strings.ToLower(el.Name)
		for _, kw := range denialKeywords {
			if strings.Contains(lower, kw) {
				hints = append(hints, el.Name)
				break
			}
		}
	}
	return hints
}

// deriveLevel maps the collected signals onto the closed permission-level
// set. The read-only badge wins over everything else.
func deriveLevel(perms *PermissionState) PermissionLevel {
	switch {
	case perms.ReadOnlyBadge:
		return LevelReadOnly
	case len(perms.LockedActions) == 0 && len(perms.AvailableActions) > 0:
		return LevelFull
	case len(perms.LockedActions) > 0 && len(perms.AvailableActions) > 0:
		return LevelEdit
	case len(perms.LockedActions) > 0:
		return LevelReadOnly
	}
	return LevelNone
}

// lockedMentions reports whether any locked action name contains one of
// the words.
func lockedMentions(locked []string, words ...string) bool {
	for _, action := range locked {
		lower := strings.ToLower(action)
		for _, word := range words {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}
