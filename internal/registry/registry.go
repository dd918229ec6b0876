// Package registry holds the console's URL tables: static routes, dynamic
// route templates, workspace base paths and resource shortcuts. A Registry
// is loaded once at startup and never written afterwards, so concurrent
// readers need no locking.
package registry

import (
	"regexp"
	"strings"
)

// PageInfo is the metadata attached to a route.
type PageInfo struct {
	Title     string `json:"title"`
	Workspace string `json:"workspace,omitempty"`
	PageType  string `json:"page_type,omitempty"`
}

// Registry is the read-only URL table set.
type Registry struct {
	baseURL       string
	staticRoutes  map[string]string // target name -> exact path
	dynamicRoutes map[string]string // target name -> path template
	workspaces    map[string]string // workspace id -> base path
	shortcuts     map[string]string // shortcut name -> path template
	pages         map[string]PageInfo
}

// ShortcutVars are the values available when expanding a shortcut template.
type ShortcutVars struct {
	Namespace    string
	ResourceName string
}

// ShortcutResolution is the outcome of expanding a shortcut.
type ShortcutResolution struct {
	Success             bool
	URL                 string
	IsComplete          bool
	UnresolvedVariables []string
}

// ResolveRequest asks for a target by name with whatever values the caller
// has on hand.
type ResolveRequest struct {
	Target       string
	Namespace    string
	ResourceName string
}

// Resolution is the outcome of a pattern-based resolve. Method reports
// whether a static route or a dynamic template produced the URL.
type Resolution struct {
	Success             bool
	URL                 string
	IsComplete          bool
	UnresolvedVariables []string
	Method              string // "static" or "dynamic"
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// expand substitutes template variables, leaving unknown or empty ones in
// place and reporting their names.
func expand(template string, vars map[string]string) (string, []string) {
	var unresolved []string
	url := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v := vars[name]; v != "" {
			return v
		}
		unresolved = append(unresolved, name)
		return m
	})
	return url, unresolved
}

// ResolveShortcut expands the named shortcut template. Success is false
// only when the shortcut does not exist; a missing namespace leaves the
// placeholder in the URL and reports it as unresolved.
func (r *Registry) ResolveShortcut(name string, vars ShortcutVars) ShortcutResolution {
	template, ok := r.shortcuts[name]
	if !ok {
		return ShortcutResolution{}
	}
	url, unresolved := expand(template, map[string]string{
		"namespace":     vars.Namespace,
		"resource_name": vars.ResourceName,
	})
	return ShortcutResolution{
		Success:             true,
		URL:                 url,
		IsComplete:          len(unresolved) == 0,
		UnresolvedVariables: unresolved,
	}
}

// ResolveWorkspace returns the base path for a workspace id.
func (r *Registry) ResolveWorkspace(id string) (string, bool) {
	path, ok := r.workspaces[id]
	return path, ok
}

// Resolve finds the target by name, preferring an exact static route over a
// dynamic template.
func (r *Registry) Resolve(req ResolveRequest) Resolution {
	if path, ok := r.staticRoutes[req.Target]; ok {
		return Resolution{
			Success:    true,
			URL:        path,
			IsComplete: true,
			Method:     "static",
		}
	}

	template, ok := r.dynamicRoutes[req.Target]
	if !ok {
		return Resolution{}
	}
	url, unresolved := expand(template, map[string]string{
		"namespace":     req.Namespace,
		"resource_name": req.ResourceName,
	})
	return Resolution{
		Success:             true,
		URL:                 url,
		IsComplete:          len(unresolved) == 0,
		UnresolvedVariables: unresolved,
		Method:              "dynamic",
	}
}

// BuildFullURL joins a console path onto the configured base URL.
func (r *Registry) BuildFullURL(path string) string {
	if r.baseURL == "" {
		return path
	}
	return strings.TrimSuffix(r.baseURL, "/") + path
}

// Page returns the metadata registered for a path, if any.
func (r *Registry) Page(path string) (PageInfo, bool) {
	info, ok := r.pages[path]
	return info, ok
}

// Shortcuts lists the registered shortcut names.
func (r *Registry) Shortcuts() []string {
	names := make([]string, 0, len(r.shortcuts))
	for name := range r.shortcuts {
		names = append(names, name)
	}
	return names
}
