package registry

// Built-in console tables. Load can replace these from sitemap/pages JSON
// files; Default returns a registry backed by this snapshot of the console
// layout.

const (
	waapBase          = "/web/workspaces/web-app-and-api-protection"
	mcnBase           = "/web/workspaces/multi-cloud-network-connect"
	dnsBase           = "/web/workspaces/dns-management"
	cdnBase           = "/web/workspaces/content-delivery-network"
	sharedBase        = "/web/workspaces/shared-configuration"
	adminBase         = "/web/workspaces/administration"
	observabilityBase = "/web/workspaces/observability"
)

var defaultWorkspaces = map[string]string{
	"waap":          waapBase,
	"mcn":           mcnBase,
	"dns":           dnsBase,
	"cdn":           cdnBase,
	"shared":        sharedBase,
	"admin":         adminBase,
	"observability": observabilityBase,
}

var defaultStaticRoutes = map[string]string{
	"home":     "/web/home",
	"overview": "/web/overview",
}

var defaultDynamicRoutes = map[string]string{
	"http-loadbalancer": waapBase + "/namespaces/{namespace}/manage/load_balancers/http_loadbalancers",
	"tcp-loadbalancer":  waapBase + "/namespaces/{namespace}/manage/load_balancers/tcp_loadbalancers",
	"origin-pool":       waapBase + "/namespaces/{namespace}/manage/load_balancers/origin_pools",
	"health-check":      waapBase + "/namespaces/{namespace}/manage/load_balancers/health_checks",
	"app-firewall":      waapBase + "/namespaces/{namespace}/manage/app_firewall",
	"service-policy":    waapBase + "/namespaces/{namespace}/manage/service_policies",
	"certificate":       waapBase + "/namespaces/{namespace}/manage/certificates",
	"dns-zone":          dnsBase + "/namespaces/{namespace}/manage/dns_zones",
	"cdn-distribution":  cdnBase + "/namespaces/{namespace}/manage/cdn_distributions",
	"alert":             observabilityBase + "/namespaces/{namespace}/alerts",
	"audit-log":         observabilityBase + "/namespaces/{namespace}/audit_logs",
	"site":              mcnBase + "/namespaces/{namespace}/sites",
	"virtual-site":      mcnBase + "/namespaces/{namespace}/virtual_sites",
	"api-credential":    adminBase + "/personal-management/credentials",
}

var defaultShortcuts = map[string]string{
	"http_loadbalancers": waapBase + "/namespaces/{namespace}/manage/load_balancers/http_loadbalancers",
	"tcp_loadbalancers":  waapBase + "/namespaces/{namespace}/manage/load_balancers/tcp_loadbalancers",
	"origin_pools":       waapBase + "/namespaces/{namespace}/manage/load_balancers/origin_pools",
	"health_checks":      waapBase + "/namespaces/{namespace}/manage/load_balancers/health_checks",
	"app_firewalls":      waapBase + "/namespaces/{namespace}/manage/app_firewall",
	"service_policies":   waapBase + "/namespaces/{namespace}/manage/service_policies",
	"certificates":       waapBase + "/namespaces/{namespace}/manage/certificates",
	"dns_zones":          dnsBase + "/namespaces/{namespace}/manage/dns_zones",
	"cdn_distributions":  cdnBase + "/namespaces/{namespace}/manage/cdn_distributions",
	"alerts":             observabilityBase + "/namespaces/{namespace}/alerts",
	"audit_logs":         observabilityBase + "/namespaces/{namespace}/audit_logs",
	"sites":              mcnBase + "/namespaces/{namespace}/sites",
}

var defaultPages = map[string]PageInfo{
	"/web/home":     {Title: "Home", PageType: "home"},
	"/web/overview": {Title: "Overview", PageType: "overview"},
	waapBase:        {Title: "Web App and API Protection", Workspace: "waap", PageType: "workspace"},
	mcnBase:         {Title: "Multi-Cloud Network Connect", Workspace: "mcn", PageType: "workspace"},
	dnsBase:         {Title: "DNS Management", Workspace: "dns", PageType: "workspace"},
	cdnBase:         {Title: "Content Delivery Network", Workspace: "cdn", PageType: "workspace"},
	sharedBase:      {Title: "Shared Configuration", Workspace: "shared", PageType: "workspace"},
	adminBase:       {Title: "Administration", Workspace: "admin", PageType: "workspace"},
}

// Default returns a registry backed by the built-in console tables.
func Default() *Registry {
	return &Registry{
		staticRoutes:  defaultStaticRoutes,
		dynamicRoutes: defaultDynamicRoutes,
		workspaces:    defaultWorkspaces,
		shortcuts:     defaultShortcuts,
		pages:         defaultPages,
	}
}
