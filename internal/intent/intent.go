package intent

// Action represents the operation a command asks for.
type Action string

const (
	ActionNavigate Action = "navigate"
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
	ActionView     Action = "view"
	ActionClone    Action = "clone"
	ActionSearch   Action = "search"
)

// Resource represents the console object kind a command targets.
// ResourceWorkspace, ResourceHome and ResourceOverview are pseudo-resources
// that name navigation targets rather than configuration objects.
type Resource string

const (
	ResourceHTTPLoadBalancer Resource = "http_loadbalancer"
	ResourceTCPLoadBalancer  Resource = "tcp_loadbalancer"
	ResourceOriginPool       Resource = "origin_pool"
	ResourceHealthCheck      Resource = "health_check"
	ResourceAppFirewall      Resource = "app_firewall"
	ResourceServicePolicy    Resource = "service_policy"
	ResourceCertificate      Resource = "certificate"
	ResourceDNSZone          Resource = "dns_zone"
	ResourceCDNDistribution  Resource = "cdn_distribution"
	ResourceAlert            Resource = "alert"
	ResourceAuditLog         Resource = "audit_log"
	ResourceUser             Resource = "user"
	ResourceRole             Resource = "role"
	ResourceAPICredential    Resource = "api_credential"
	ResourceSite             Resource = "site"
	ResourceVirtualSite      Resource = "virtual_site"

	ResourceWorkspace Resource = "workspace"
	ResourceHome      Resource = "home"
	ResourceOverview  Resource = "overview"
)

// Workspace identifies a top-level functional area of the console.
type Workspace string

const (
	WorkspaceWAAP          Workspace = "waap"
	WorkspaceMCN           Workspace = "mcn"
	WorkspaceDNS           Workspace = "dns"
	WorkspaceCDN           Workspace = "cdn"
	WorkspaceShared        Workspace = "shared"
	WorkspaceAdmin         Workspace = "admin"
	WorkspaceObservability Workspace = "observability"
)

// ParsedIntent is the structured result of interpreting one command.
// It is a plain value: created fresh on every parse, never mutated after
// construction, safe to serialize for logging or transport.
type ParsedIntent struct {
	// Action is the requested operation.
	Action Action `json:"action"`

	// Resource is the target object kind.
	Resource Resource `json:"resource"`

	// ResourceName is the specific object name, when one was given.
	ResourceName string `json:"resource_name,omitempty"`

	// Namespace is the tenant partition the command applies to.
	Namespace string `json:"namespace,omitempty"`

	// Workspace scopes the command to a console area. It may come from an
	// explicit mention or from the resource's default context.
	Workspace Workspace `json:"workspace,omitempty"`

	// Parameters holds extracted modifiers: filter_<field>, sort_by,
	// sort_order, limit, all, detailed.
	Parameters map[string]any `json:"parameters,omitempty"`

	// Confidence is how certain the parse is (0.0 to 1.0). It is a
	// deterministic function of the input and the static tables.
	Confidence float64 `json:"confidence"`

	// MatchedPatterns records which extractors fired, for diagnostics only.
	MatchedPatterns []string `json:"matched_patterns,omitempty"`

	// RawInput is the original command text.
	RawInput string `json:"raw_input"`

	// NeedsClarification is true when the intent is too ambiguous or
	// incomplete to execute safely.
	NeedsClarification bool `json:"needs_clarification"`

	// ClarificationQuestions are the follow-up questions to ask, in order.
	ClarificationQuestions []string `json:"clarification_questions,omitempty"`
}

// HasParameter checks whether a named parameter was extracted.
func (p *ParsedIntent) HasParameter(key string) bool {
	_, ok := p.Parameters[key]
	return ok
}

// IsMutating reports whether the action changes console state.
func (a Action) IsMutating() bool {
	switch a {
	case ActionCreate, ActionEdit, ActionDelete, ActionClone:
		return true
	}
	return false
}

// namespaceScoped lists the resource kinds that live inside a namespace.
// Mutating one of these without a namespace triggers clarification.
var namespaceScoped = map[Resource]bool{
	ResourceHTTPLoadBalancer: true,
	ResourceTCPLoadBalancer:  true,
	ResourceOriginPool:       true,
	ResourceHealthCheck:      true,
	ResourceAppFirewall:      true,
	ResourceServicePolicy:    true,
	ResourceCertificate:      true,
	ResourceDNSZone:          true,
	ResourceCDNDistribution:  true,
}

// IsNamespaceScoped reports whether the resource lives inside a namespace.
func (r Resource) IsNamespaceScoped() bool {
	return namespaceScoped[r]
}

// Human returns the human-readable form of the resource for question text.
func (r Resource) Human() string {
	out := make([]byte, 0, len(r))
	for i := 0; i < len(r); i++ {
		if r[i] == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, r[i])
	}
	return string(out)
}
