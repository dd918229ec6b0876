package nav

import (
	"strings"

	"github.com/rs/zerolog"

	"consolenav/internal/intent"
	"consolenav/internal/metrics"
	"consolenav/internal/registry"
)

const homePath = "/web/home"

// Wait/retry policy for synthesized post-navigation actions.
const (
	loadingWaitTimeoutMS = 10000
	createClickAttempts  = 3
	createClickBackoffMS = 1000
)

// URLRegistry is the read-only route table collaborator.
type URLRegistry interface {
	ResolveShortcut(name string, vars registry.ShortcutVars) registry.ShortcutResolution
	ResolveWorkspace(id string) (string, bool)
	Resolve(req registry.ResolveRequest) registry.Resolution
	BuildFullURL(path string) string
}

// workspacePaths is the resolver's own workspace table, consulted before
// deferring to the registry.
var workspacePaths = map[intent.Workspace]string{
	intent.WorkspaceWAAP:          "/web/workspaces/web-app-and-api-protection",
	intent.WorkspaceMCN:           "/web/workspaces/multi-cloud-network-connect",
	intent.WorkspaceDNS:           "/web/workspaces/dns-management",
	intent.WorkspaceCDN:           "/web/workspaces/content-delivery-network",
	intent.WorkspaceShared:        "/web/workspaces/shared-configuration",
	intent.WorkspaceAdmin:         "/web/workspaces/administration",
	intent.WorkspaceObservability: "/web/workspaces/observability",
}

// resourceShortcuts maps resource kinds to registered shortcut names.
var resourceShortcuts = map[intent.Resource]string{
	intent.ResourceHTTPLoadBalancer: "http_loadbalancers",
	intent.ResourceTCPLoadBalancer:  "tcp_loadbalancers",
	intent.ResourceOriginPool:       "origin_pools",
	intent.ResourceHealthCheck:      "health_checks",
	intent.ResourceAppFirewall:      "app_firewalls",
	intent.ResourceServicePolicy:    "service_policies",
	intent.ResourceCertificate:      "certificates",
	intent.ResourceDNSZone:          "dns_zones",
	intent.ResourceCDNDistribution:  "cdn_distributions",
	intent.ResourceAlert:            "alerts",
	intent.ResourceAuditLog:         "audit_logs",
	intent.ResourceSite:             "sites",
}

// resourceSegments maps resource kinds to path segments under a workspace's
// namespace scope, for resources without a registered shortcut.
var resourceSegments = map[intent.Resource]string{
	intent.ResourceVirtualSite:   "virtual_sites",
	intent.ResourceUser:          "users",
	intent.ResourceRole:          "roles",
	intent.ResourceAPICredential: "personal-management/credentials",
}

// Resolver turns parsed intents into navigation targets. It never fails:
// anything it cannot fully resolve degrades to the most specific fallback
// URL with the missing variables named.
type Resolver struct {
	reg              URLRegistry
	defaultNamespace string
	log              zerolog.Logger
}

// ResolverOption configures the resolver.
type ResolverOption func(*Resolver)

// WithDefaultNamespace sets the namespace used when an intent has none.
func WithDefaultNamespace(ns string) ResolverOption {
	return func(r *Resolver) {
		r.defaultNamespace = ns
	}
}

// WithLogger attaches a logger for resolution diagnostics.
func WithLogger(log zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg URLRegistry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		reg:              reg,
		defaultNamespace: "default",
		log:              zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve picks the most specific strategy that applies: the static home
// route, the workspace table, a registered shortcut, a workspace-scoped
// resource path, then pattern-based registry resolution.
func (r *Resolver) Resolve(in *intent.ParsedIntent) URLResolution {
	res := r.resolve(in)

	if res.IsComplete {
		metrics.ResolutionComplete()
	} else {
		metrics.ResolutionIncomplete()
	}
	r.log.Debug().
		Str("resource", string(in.Resource)).
		Str("url", res.URL).
		Str("source", string(res.Source)).
		Bool("is_complete", res.IsComplete).
		Msg("resolved intent")
	return res
}

func (r *Resolver) resolve(in *intent.ParsedIntent) URLResolution {
	switch in.Resource {
	case intent.ResourceHome:
		return URLResolution{URL: homePath, IsComplete: true, Source: SourceStaticRoute}
	case intent.ResourceWorkspace:
		return r.resolveWorkspace(in)
	}

	if shortcut, ok := resourceShortcuts[in.Resource]; ok {
		return r.resolveShortcut(in, shortcut)
	}

	if in.Workspace != "" {
		return r.resolveInWorkspace(in)
	}

	return r.resolvePattern(in)
}

// resolveWorkspace handles the workspace pseudo-resource.
func (r *Resolver) resolveWorkspace(in *intent.ParsedIntent) URLResolution {
	if path, ok := workspacePaths[in.Workspace]; ok {
		return URLResolution{URL: path, IsComplete: true, Source: SourceWorkspace}
	}
	if in.Workspace != "" {
		if path, ok := r.reg.ResolveWorkspace(string(in.Workspace)); ok {
			return URLResolution{URL: path, IsComplete: true, Source: SourceWorkspace}
		}
	}
	return URLResolution{
		URL:                 "/web/workspaces/{workspace}",
		IsComplete:          false,
		UnresolvedVariables: []string{"workspace"},
		Source:              SourceWorkspace,
	}
}

// resolveShortcut expands a registered shortcut and appends the action
// suffix: /create for create, /<name> for edit, delete and view.
func (r *Resolver) resolveShortcut(in *intent.ParsedIntent, shortcut string) URLResolution {
	sc := r.reg.ResolveShortcut(shortcut, registry.ShortcutVars{
		Namespace:    r.namespaceFor(in),
		ResourceName: in.ResourceName,
	})
	if !sc.Success {
		return URLResolution{
			URL:                 r.fallbackURL(in),
			IsComplete:          false,
			UnresolvedVariables: []string{"namespace"},
			Source:              SourceShortcut,
		}
	}

	url := sc.URL
	switch {
	case in.Action == intent.ActionCreate:
		url += "/create"
	case in.ResourceName != "" && actionTargetsObject(in.Action):
		url += "/" + in.ResourceName
	}

	return URLResolution{
		URL:                   url,
		IsComplete:            sc.IsComplete,
		UnresolvedVariables:   sc.UnresolvedVariables,
		PostNavigationActions: r.postNavigationActions(in),
		Source:                SourceShortcut,
	}
}

// resolveInWorkspace builds {base}/namespaces/{ns}/{segment} for resources
// that have a workspace but no shortcut. Resources with no mapped segment
// resolve to the workspace root.
func (r *Resolver) resolveInWorkspace(in *intent.ParsedIntent) URLResolution {
	base, ok := workspacePaths[in.Workspace]
	if !ok {
		base, ok = r.reg.ResolveWorkspace(string(in.Workspace))
		if !ok {
			return URLResolution{
				URL:                 "/web/workspaces/{workspace}",
				IsComplete:          false,
				UnresolvedVariables: []string{"workspace"},
				Source:              SourceWorkspace,
			}
		}
	}

	segment, ok := resourceSegments[in.Resource]
	if !ok {
		return URLResolution{URL: base, IsComplete: true, Source: SourceWorkspace}
	}

	url := base + "/namespaces/" + r.namespaceFor(in) + "/" + segment
	if in.Action == intent.ActionCreate {
		url += "/create"
	}
	return URLResolution{
		URL:                   url,
		IsComplete:            true,
		PostNavigationActions: r.postNavigationActions(in),
		Source:                SourceWorkspace,
	}
}

// resolvePattern asks the registry to resolve the resource by name, falling
// back to the workspace root or home when the registry has no route.
func (r *Resolver) resolvePattern(in *intent.ParsedIntent) URLResolution {
	target := strings.ReplaceAll(string(in.Resource), "_", "-")
	res := r.reg.Resolve(registry.ResolveRequest{
		Target:       target,
		Namespace:    r.namespaceFor(in),
		ResourceName: in.ResourceName,
	})
	if res.Success {
		source := SourceDynamicRoute
		if res.Method == "static" {
			source = SourceStaticRoute
		}
		return URLResolution{
			URL:                   res.URL,
			IsComplete:            res.IsComplete,
			UnresolvedVariables:   res.UnresolvedVariables,
			PostNavigationActions: r.postNavigationActions(in),
			Source:                source,
		}
	}

	return URLResolution{
		URL:                 r.fallbackURL(in),
		IsComplete:          false,
		UnresolvedVariables: []string{"resource_path"},
		Source:              SourceDirect,
	}
}

// postNavigationActions synthesizes the follow-up steps: a bounded wait for
// the loading indicator, a fill when the intent filters by name, and a
// retried click on the creation control for create intents.
func (r *Resolver) postNavigationActions(in *intent.ParsedIntent) []PostNavigationAction {
	actions := []PostNavigationAction{{
		Type:      ActionWaitForElement,
		Target:    "loading indicator",
		TimeoutMS: loadingWaitTimeoutMS,
		Required:  true,
	}}

	if name, ok := in.Parameters["filter_name"].(string); ok {
		actions = append(actions, PostNavigationAction{
			Type:   ActionFill,
			Target: "name filter",
			Value:  name,
		})
	}

	if in.Action == intent.ActionCreate {
		actions = append(actions, PostNavigationAction{
			Type:        ActionClick,
			Target:      "add new button",
			Required:    true,
			MaxAttempts: createClickAttempts,
			BackoffMS:   createClickBackoffMS,
		})
	}

	return actions
}

// namespaceFor returns the intent's namespace or the configured default.
func (r *Resolver) namespaceFor(in *intent.ParsedIntent) string {
	if in.Namespace != "" {
		return in.Namespace
	}
	return r.defaultNamespace
}

// fallbackURL picks the most specific URL still known for a failed
// resolution: the intent's workspace root, else home.
func (r *Resolver) fallbackURL(in *intent.ParsedIntent) string {
	if path, ok := workspacePaths[in.Workspace]; ok {
		return path
	}
	return homePath
}

// actionTargetsObject reports whether the action addresses one named
// object, making a /<name> suffix meaningful.
func actionTargetsObject(a intent.Action) bool {
	switch a {
	case intent.ActionEdit, intent.ActionDelete, intent.ActionView:
		return true
	}
	return false
}
