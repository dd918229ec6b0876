package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consolenav/internal/intent"
	"consolenav/internal/registry"
)

func newTestResolver(opts ...ResolverOption) *Resolver {
	return NewResolver(registry.Default(), opts...)
}

func TestResolve_Home(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{Action: intent.ActionNavigate, Resource: intent.ResourceHome})

	assert.Equal(t, "/web/home", got.URL)
	assert.True(t, got.IsComplete)
	assert.Equal(t, SourceStaticRoute, got.Source)
}

func TestResolve_Workspace(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionNavigate,
		Resource:  intent.ResourceWorkspace,
		Workspace: intent.WorkspaceMCN,
	})

	assert.Equal(t, "/web/workspaces/multi-cloud-network-connect", got.URL)
	assert.True(t, got.IsComplete)
	assert.Equal(t, SourceWorkspace, got.Source)
}

func TestResolve_WorkspaceUnknown(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{Action: intent.ActionNavigate, Resource: intent.ResourceWorkspace})

	assert.False(t, got.IsComplete)
	assert.Equal(t, []string{"workspace"}, got.UnresolvedVariables)
}

func TestResolve_ShortcutList(t *testing.T) {
	r := newTestResolver(WithDefaultNamespace("default"))
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionList,
		Resource:  intent.ResourceHTTPLoadBalancer,
		Namespace: "prod",
	})

	assert.True(t, got.IsComplete)
	assert.Equal(t, SourceShortcut, got.Source)
	assert.Equal(t,
		"/web/workspaces/web-app-and-api-protection/namespaces/prod/manage/load_balancers/http_loadbalancers",
		got.URL)
}

func TestResolve_ShortcutCreateAppendsSuffix(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionCreate,
		Resource:  intent.ResourceOriginPool,
		Namespace: "staging",
	})

	assert.True(t, got.IsComplete)
	assert.True(t, strings.HasSuffix(got.URL, "/origin_pools/create"), "url %q", got.URL)
}

func TestResolve_ShortcutEditAppendsName(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:       intent.ActionEdit,
		Resource:     intent.ResourceAppFirewall,
		Namespace:    "prod",
		ResourceName: "default-waf",
	})

	assert.True(t, strings.HasSuffix(got.URL, "/app_firewall/default-waf"), "url %q", got.URL)
}

func TestResolve_ShortcutDefaultNamespace(t *testing.T) {
	r := newTestResolver(WithDefaultNamespace("default"))
	got := r.Resolve(&intent.ParsedIntent{
		Action:   intent.ActionList,
		Resource: intent.ResourceCertificate,
	})

	assert.True(t, got.IsComplete)
	assert.Contains(t, got.URL, "/namespaces/default/")
}

func TestResolve_ShortcutUnresolvedNamespace(t *testing.T) {
	// No namespace in the intent and no configured default: the registry
	// reports the placeholder as unresolved.
	r := newTestResolver(WithDefaultNamespace(""))
	got := r.Resolve(&intent.ParsedIntent{
		Action:   intent.ActionList,
		Resource: intent.ResourceHTTPLoadBalancer,
	})

	assert.False(t, got.IsComplete)
	assert.Contains(t, got.UnresolvedVariables, "namespace")
}

func TestResolve_WorkspaceScopedSegment(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionList,
		Resource:  intent.ResourceUser,
		Workspace: intent.WorkspaceAdmin,
		Namespace: "system",
	})

	assert.True(t, got.IsComplete)
	assert.Equal(t, SourceWorkspace, got.Source)
	assert.Equal(t, "/web/workspaces/administration/namespaces/system/users", got.URL)
}

func TestResolve_WorkspaceScopedCreate(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionCreate,
		Resource:  intent.ResourceRole,
		Workspace: intent.WorkspaceAdmin,
		Namespace: "system",
	})

	assert.True(t, strings.HasSuffix(got.URL, "/roles/create"), "url %q", got.URL)
}

func TestResolve_UnmappedResourceFallsBackToWorkspaceRoot(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionNavigate,
		Resource:  intent.ResourceOverview,
		Workspace: intent.WorkspaceShared,
	})

	assert.True(t, got.IsComplete)
	assert.Equal(t, "/web/workspaces/shared-configuration", got.URL)
}

func TestResolve_PatternFallbackToHome(t *testing.T) {
	// No shortcut, no workspace, no registry route: degrade to home with
	// the missing variable named.
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:   intent.ActionList,
		Resource: intent.ResourceUser,
	})

	assert.False(t, got.IsComplete)
	assert.Equal(t, []string{"resource_path"}, got.UnresolvedVariables)
	assert.Equal(t, SourceDirect, got.Source)
	assert.Equal(t, "/web/home", got.URL)
}

func TestResolve_PatternDynamicRoute(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionList,
		Resource:  intent.ResourceVirtualSite,
		Namespace: "prod",
	})

	require.True(t, got.IsComplete)
	assert.Equal(t, SourceDynamicRoute, got.Source)
	assert.Contains(t, got.URL, "/virtual_sites")
}

func TestResolve_CompletenessInvariant(t *testing.T) {
	r := newTestResolver(WithDefaultNamespace("default"))
	intents := []*intent.ParsedIntent{
		{Action: intent.ActionNavigate, Resource: intent.ResourceHome},
		{Action: intent.ActionList, Resource: intent.ResourceHTTPLoadBalancer, Namespace: "prod"},
		{Action: intent.ActionCreate, Resource: intent.ResourceOriginPool, Namespace: "staging"},
		{Action: intent.ActionNavigate, Resource: intent.ResourceWorkspace, Workspace: intent.WorkspaceDNS},
		{Action: intent.ActionList, Resource: intent.ResourceUser, Workspace: intent.WorkspaceAdmin},
		{Action: intent.ActionList, Resource: intent.ResourceCertificate},
		{Action: intent.ActionNavigate, Resource: intent.ResourceOverview},
	}
	for _, in := range intents {
		got := r.Resolve(in)
		if got.IsComplete {
			assert.False(t, strings.ContainsAny(got.URL, "{}"),
				"complete resolution %q must have no placeholders", got.URL)
		}
	}
}

func TestPostNavigationActions_Wait(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionList,
		Resource:  intent.ResourceHTTPLoadBalancer,
		Namespace: "prod",
	})

	require.NotEmpty(t, got.PostNavigationActions)
	wait := got.PostNavigationActions[0]
	assert.Equal(t, ActionWaitForElement, wait.Type)
	assert.Equal(t, 10000, wait.TimeoutMS)
	assert.True(t, wait.Required)
}

func TestPostNavigationActions_FilterFill(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:     intent.ActionList,
		Resource:   intent.ResourceHTTPLoadBalancer,
		Namespace:  "prod",
		Parameters: map[string]any{"filter_name": "frontend"},
	})

	var fill *PostNavigationAction
	for i := range got.PostNavigationActions {
		if got.PostNavigationActions[i].Type == ActionFill {
			fill = &got.PostNavigationActions[i]
		}
	}
	require.NotNil(t, fill)
	assert.Equal(t, "frontend", fill.Value)
	assert.False(t, fill.Required)
}

func TestPostNavigationActions_CreateClickRetry(t *testing.T) {
	r := newTestResolver()
	got := r.Resolve(&intent.ParsedIntent{
		Action:    intent.ActionCreate,
		Resource:  intent.ResourceHTTPLoadBalancer,
		Namespace: "prod",
	})

	var click *PostNavigationAction
	for i := range got.PostNavigationActions {
		if got.PostNavigationActions[i].Type == ActionClick {
			click = &got.PostNavigationActions[i]
		}
	}
	require.NotNil(t, click)
	assert.Equal(t, 3, click.MaxAttempts)
	assert.Equal(t, 1000, click.BackoffMS)
}
