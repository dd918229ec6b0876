package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolenav/internal/auth"
	"consolenav/internal/snapshot"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestDetect_CaptureFields(t *testing.T) {
	d := NewDetector(auth.NewHeuristicAnalyzer(), withClock(fixedClock()))

	snap := &snapshot.Snapshot{
		Title:    "Home",
		Elements: []snapshot.Element{{Role: "heading", Name: "Home"}},
	}
	cs := d.Detect("https://console.example.com/web/home", snap)

	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), cs.CapturedAt)
	assert.NotEmpty(t, cs.CaptureID)
	assert.Equal(t, "dom_snapshot", cs.CaptureMethod)
	assert.Equal(t, "home", cs.Page.PageType)
	assert.Equal(t, auth.StateAuthenticated, cs.Auth.State)
}

func TestDetect_CaptureIDsUnique(t *testing.T) {
	d := NewDetector(auth.NewHeuristicAnalyzer())
	snap := &snapshot.Snapshot{}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		cs := d.Detect("https://console.example.com/web/home", snap)
		require.False(t, seen[cs.CaptureID], "duplicate capture id")
		seen[cs.CaptureID] = true
	}
}

func TestDetect_NilSnapshot(t *testing.T) {
	d := NewDetector(auth.NewHeuristicAnalyzer())

	cs := d.Detect("https://console.example.com/web/home", nil)
	assert.Equal(t, auth.StateUnknown, cs.Auth.State)
	assert.Nil(t, cs.Permissions)
	assert.Nil(t, cs.Subscription)
	assert.Nil(t, cs.Modules)
	assert.Equal(t, "home", cs.Page.PageType)
}

func TestDetect_NilAnalyzer(t *testing.T) {
	d := NewDetector(nil)

	cs := d.Detect("https://console.example.com/web/home", &snapshot.Snapshot{})
	assert.Equal(t, auth.StateUnknown, cs.Auth.State)
}

func TestDetect_CaptureMethodOverride(t *testing.T) {
	d := NewDetector(auth.NewHeuristicAnalyzer(), WithCaptureMethod("accessibility_tree"))

	cs := d.Detect("https://console.example.com/web/home", &snapshot.Snapshot{})
	assert.Equal(t, "accessibility_tree", cs.CaptureMethod)
}

func TestDetect_FullScenario(t *testing.T) {
	// A gated load-balancer list page: Delete is locked by a marker, an
	// upgrade prompt caps the tier, and bot defense needs setup.
	d := NewDetector(auth.NewHeuristicAnalyzer(), withClock(fixedClock()))

	snap := &snapshot.Snapshot{
		Title: "HTTP Load Balancers",
		Elements: []snapshot.Element{
			{Role: "heading", Name: "HTTP Load Balancers"},
			{Role: "button", Name: "Add HTTP Load Balancer"},
			{Role: "generic", Name: "Locked"},
			{Role: "button", Name: "Delete"},
			{Role: "generic", Name: "Upgrade your plan to unlock more"},
			{Role: "heading", Name: "Bot Defense"},
			{Role: "button", Name: "Get Started"},
		},
	}
	url := "https://console.example.com/web/workspaces/web-app-and-api-protection/namespaces/staging/manage/load_balancers/http_loadbalancers"

	cs := d.Detect(url, snap)

	assert.Equal(t, "list", cs.Page.PageType)
	assert.Equal(t, "staging", cs.Page.Namespace)

	require.NotNil(t, cs.Permissions)
	assert.Contains(t, cs.Permissions.LockedActions, "Delete")
	assert.Contains(t, cs.Permissions.AvailableActions, "Add HTTP Load Balancer")
	assert.Equal(t, LevelEdit, cs.Permissions.Level)
	assert.False(t, cs.Permissions.CanDelete)
	assert.True(t, cs.Permissions.CanCreate)

	require.NotNil(t, cs.Subscription)
	assert.True(t, cs.Subscription.UpgradeRequired)

	require.Contains(t, cs.Modules, "bot-defense")
	assert.Equal(t, ModuleRequiresInit, cs.Modules["bot-defense"].Status)
}

func TestDetectPermissions_Passthrough(t *testing.T) {
	d := NewDetector(nil)
	snap := &snapshot.Snapshot{Elements: []snapshot.Element{
		{Role: "button", Name: "Add"},
	}}

	perms := d.DetectPermissions(snap)
	require.NotNil(t, perms)
	assert.Equal(t, LevelFull, perms.Level)
}
