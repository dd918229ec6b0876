package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolenav/internal/snapshot"
)

func TestTagLocked(t *testing.T) {
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "button", Name: "Add"},
		{Role: "generic", Name: "Locked"},
		{Role: "button", Name: "Delete"},
		{Role: "button", Name: "Refresh", Disabled: true},
		{Role: "button", Name: "Locked feature"},
	}}

	tagged := tagLocked(snap)
	require.Len(t, tagged, 5)
	assert.False(t, tagged[0].Locked, "plain button")
	assert.True(t, tagged[1].Locked, "the marker itself mentions locked")
	assert.True(t, tagged[2].Locked, "button preceded by the Locked marker")
	assert.True(t, tagged[3].Locked, "disabled button")
	assert.True(t, tagged[4].Locked, "name mentions locked")
}

func TestTagLocked_Idempotent(t *testing.T) {
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "generic", Name: "Locked"},
		{Role: "button", Name: "Delete"},
	}}

	first := tagLocked(snap)
	second := tagLocked(snap)
	assert.Equal(t, first, second)
}

func TestDetectPermissions_LockedSibling(t *testing.T) {
	// A Delete button immediately preceded by a "Locked" marker is locked,
	// not available.
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "button", Name: "Add HTTP Load Balancer"},
		{Role: "generic", Name: "Locked"},
		{Role: "button", Name: "Delete"},
	}}

	perms := detectPermissions(snap)
	assert.Contains(t, perms.LockedActions, "Delete")
	assert.NotContains(t, perms.AvailableActions, "Delete")
	assert.Contains(t, perms.AvailableActions, "Add HTTP Load Balancer")
}

func TestDetectPermissions_Levels(t *testing.T) {
	tests := []struct {
		name     string
		elements []snapshot.Element
		want     PermissionLevel
	}{
		{
			name: "nothing locked, actions available",
			elements: []snapshot.Element{
				{Role: "button", Name: "Add"},
				{Role: "button", Name: "Delete"},
			},
			want: LevelFull,
		},
		{
			name: "mixed locked and available",
			elements: []snapshot.Element{
				{Role: "button", Name: "Edit"},
				{Role: "button", Name: "Delete", Disabled: true},
			},
			want: LevelEdit,
		},
		{
			name: "everything locked",
			elements: []snapshot.Element{
				{Role: "button", Name: "Add", Disabled: true},
				{Role: "button", Name: "Delete", Disabled: true},
			},
			want: LevelReadOnly,
		},
		{
			name:     "no actions at all",
			elements: []snapshot.Element{{Role: "heading", Name: "Empty page"}},
			want:     LevelNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := detectPermissions(&snapshot.Snapshot{Elements: tt.elements})
			assert.Equal(t, tt.want, perms.Level)
		})
	}
}

func TestDetectPermissions_LevelClosure(t *testing.T) {
	valid := map[PermissionLevel]bool{
		LevelFull: true, LevelEdit: true, LevelReadOnly: true, LevelNone: true,
	}
	snaps := []*snapshot.Snapshot{
		{},
		{Elements: []snapshot.Element{{Role: "button", Name: "Add"}}},
		{Elements: []snapshot.Element{{Role: "region", Name: "banner"}, {Role: "generic", Name: "view"}}},
		{Elements: []snapshot.Element{{Role: "tab", Name: "Overview", Disabled: true}}},
	}
	for _, snap := range snaps {
		perms := detectPermissions(snap)
		assert.True(t, valid[perms.Level], "level %q outside closed set", perms.Level)
	}
}

func TestDetectPermissions_ReadOnlyBadgeWins(t *testing.T) {
	// The badge forces read_only even with available actions on the page.
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "region", Name: "header"},
		{Role: "generic", Name: "View"},
		{Role: "button", Name: "Add"},
		{Role: "button", Name: "Delete"},
	}}

	perms := detectPermissions(snap)
	assert.True(t, perms.ReadOnlyBadge)
	assert.Equal(t, LevelReadOnly, perms.Level)
}

func TestDetectPermissions_ReadOnlyText(t *testing.T) {
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "generic", Name: "View Configuration"},
	}}

	perms := detectPermissions(snap)
	assert.True(t, perms.ReadOnlyBadge)
	assert.Equal(t, LevelReadOnly, perms.Level)
}

func TestDetectPermissions_ActionFlags(t *testing.T) {
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "button", Name: "Add HTTP Load Balancer", Disabled: true},
		{Role: "button", Name: "Delete", Disabled: true},
		{Role: "button", Name: "Edit"},
		{Role: "menuitem", Name: "Clone"},
	}}

	perms := detectPermissions(snap)
	assert.False(t, perms.CanCreate)
	assert.False(t, perms.CanDelete)
	assert.True(t, perms.CanEdit)
	assert.True(t, perms.CanClone)
}

func TestDetectPermissions_DenialHints(t *testing.T) {
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "tooltip", Name: "You do not have permission to delete objects"},
		{Role: "tooltip", Name: "Saved successfully"},
	}}

	perms := detectPermissions(snap)
	require.Len(t, perms.DenialHints, 1)
	assert.Contains(t, perms.DenialHints[0], "permission")
}
