package intent

// Static synonym tables. These are the single source of truth for what the
// extractors recognize; parse results are a deterministic function of the
// input string and these tables.

// actionSynonyms maps each verb to its surface synonyms. Table order is
// match-priority order: the first synonym found anywhere in the input wins.
var actionSynonyms = []struct {
	action   Action
	synonyms []string
}{
	{ActionNavigate, []string{"go to", "take me to", "navigate to", "bring up", "open"}},
	{ActionList, []string{"list", "show all", "view all", "see all", "display", "what are", "show"}},
	{ActionCreate, []string{"create", "add a", "add new", "set up", "provision", "deploy", "make a", "new"}},
	{ActionEdit, []string{"edit", "update", "modify", "change", "configure"}},
	{ActionDelete, []string{"delete", "remove", "destroy", "tear down"}},
	{ActionView, []string{"view", "inspect", "look at", "describe", "details of"}},
	{ActionClone, []string{"clone", "duplicate", "copy"}},
	{ActionSearch, []string{"search", "find", "look up", "query"}},
}

// resourceDef describes one recognizable resource kind: its synonyms and,
// where applicable, the workspace a command about it defaults into.
type resourceDef struct {
	resource         Resource
	synonyms         []string
	defaultWorkspace Workspace
}

var resourceDefs = []resourceDef{
	{ResourceHTTPLoadBalancer, []string{"http load balancer", "http loadbalancer", "http lb", "load balancer", "loadbalancer", "lb"}, WorkspaceWAAP},
	{ResourceTCPLoadBalancer, []string{"tcp load balancer", "tcp loadbalancer", "tcp lb"}, WorkspaceWAAP},
	{ResourceOriginPool, []string{"origin pool", "origin server pool", "backend pool", "pool"}, WorkspaceWAAP},
	{ResourceHealthCheck, []string{"health check", "healthcheck", "health monitor"}, WorkspaceWAAP},
	{ResourceAppFirewall, []string{"app firewall", "application firewall", "web application firewall", "waf", "firewall"}, WorkspaceWAAP},
	{ResourceServicePolicy, []string{"service policy", "service policies", "security policy"}, WorkspaceWAAP},
	{ResourceCertificate, []string{"certificate", "tls certificate", "tls cert", "cert"}, WorkspaceWAAP},
	{ResourceDNSZone, []string{"dns zone", "dns record", "zone"}, WorkspaceDNS},
	{ResourceCDNDistribution, []string{"cdn distribution", "distribution", "cdn"}, WorkspaceCDN},
	{ResourceAlert, []string{"alert", "alerts", "notification"}, WorkspaceObservability},
	{ResourceAuditLog, []string{"audit log", "audit logs", "audit trail"}, WorkspaceObservability},
	{ResourceUser, []string{"user", "users", "team member"}, WorkspaceAdmin},
	{ResourceRole, []string{"role", "roles"}, WorkspaceAdmin},
	{ResourceAPICredential, []string{"api credential", "api credentials", "api token", "service credential"}, WorkspaceAdmin},
	{ResourceSite, []string{"site", "sites"}, WorkspaceMCN},
	{ResourceVirtualSite, []string{"virtual site", "virtual sites"}, WorkspaceMCN},
	{ResourceWorkspace, []string{"workspace", "workspaces"}, ""},
	{ResourceHome, []string{"home", "homepage", "main page", "landing page"}, ""},
	{ResourceOverview, []string{"overview", "summary"}, ""},
}

// workspaceRules is the flat phrase table for explicit workspace mentions.
// First containment match wins.
var workspaceRules = ruleList{
	policy: firstMatch,
	rules: []rule{
		{phrase: "web app and api protection", result: string(WorkspaceWAAP), score: workspaceConfidence},
		{phrase: "app security", result: string(WorkspaceWAAP), score: workspaceConfidence},
		{phrase: "waap", result: string(WorkspaceWAAP), score: workspaceConfidence},
		{phrase: "multi-cloud", result: string(WorkspaceMCN), score: workspaceConfidence},
		{phrase: "network connect", result: string(WorkspaceMCN), score: workspaceConfidence},
		{phrase: "mcn", result: string(WorkspaceMCN), score: workspaceConfidence},
		{phrase: "dns management", result: string(WorkspaceDNS), score: workspaceConfidence},
		{phrase: "content delivery", result: string(WorkspaceCDN), score: workspaceConfidence},
		{phrase: "shared configuration", result: string(WorkspaceShared), score: workspaceConfidence},
		{phrase: "shared config", result: string(WorkspaceShared), score: workspaceConfidence},
		{phrase: "administration", result: string(WorkspaceAdmin), score: workspaceConfidence},
		{phrase: "admin area", result: string(WorkspaceAdmin), score: workspaceConfidence},
		{phrase: "tenant settings", result: string(WorkspaceAdmin), score: workspaceConfidence},
		{phrase: "observability", result: string(WorkspaceObservability), score: workspaceConfidence},
		{phrase: "monitoring", result: string(WorkspaceObservability), score: workspaceConfidence},
	},
}

// buildActionRules flattens actionSynonyms into a first-match rule list.
// Scores are placeholders; ExtractAction rescoring depends on position.
func buildActionRules() ruleList {
	l := ruleList{policy: firstMatch}
	for _, entry := range actionSynonyms {
		for _, syn := range entry.synonyms {
			l.rules = append(l.rules, rule{phrase: syn, result: string(entry.action)})
		}
	}
	return l
}

// buildResourceRules flattens resourceDefs into a longest-match rule list.
// The canonical name (underscores as spaces) scores higher than synonyms.
func buildResourceRules() ruleList {
	l := ruleList{policy: longestMatch}
	for _, def := range resourceDefs {
		l.rules = append(l.rules, rule{
			phrase: def.resource.Human(),
			result: string(def.resource),
			score:  resourceCanonicalConfidence,
			meta:   string(def.defaultWorkspace),
		})
		for _, syn := range def.synonyms {
			l.rules = append(l.rules, rule{
				phrase: syn,
				result: string(def.resource),
				score:  resourceSynonymConfidence,
				meta:   string(def.defaultWorkspace),
			})
		}
	}
	return l
}

var (
	actionRules   = buildActionRules()
	resourceRules = buildResourceRules()
)
