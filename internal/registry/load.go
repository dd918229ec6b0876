package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sitemapFile is the on-disk form of the route tables.
type sitemapFile struct {
	BaseURL       string            `json:"base_url"`
	StaticRoutes  map[string]string `json:"static_routes"`
	DynamicRoutes map[string]string `json:"dynamic_routes"`
	Workspaces    map[string]string `json:"workspaces"`
	Shortcuts     map[string]string `json:"shortcuts"`
}

// pagesFile is the on-disk form of the page metadata table.
type pagesFile struct {
	Pages map[string]PageInfo `json:"pages"`
}

// Load reads sitemap.json and pages.json from dir. pages.json is optional;
// sitemap.json is not. The returned registry is immutable.
func Load(dir string) (*Registry, error) {
	sitemapPath := filepath.Join(dir, "sitemap.json")
	data, err := os.ReadFile(sitemapPath)
	if err != nil {
		return nil, fmt.Errorf("reading sitemap: %w", err)
	}

	var sitemap sitemapFile
	if err := json.Unmarshal(data, &sitemap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", sitemapPath, err)
	}

	r := &Registry{
		baseURL:       sitemap.BaseURL,
		staticRoutes:  sitemap.StaticRoutes,
		dynamicRoutes: sitemap.DynamicRoutes,
		workspaces:    sitemap.Workspaces,
		shortcuts:     sitemap.Shortcuts,
		pages:         map[string]PageInfo{},
	}

	pagesPath := filepath.Join(dir, "pages.json")
	pagesData, err := os.ReadFile(pagesPath)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pages: %w", err)
	}
	var pages pagesFile
	if err := json.Unmarshal(pagesData, &pages); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pagesPath, err)
	}
	r.pages = pages.Pages
	return r, nil
}

// NewFromTables builds a registry from in-memory tables, for tests and
// embedding callers.
func NewFromTables(baseURL string, static, dynamic, workspaces, shortcuts map[string]string, pages map[string]PageInfo) *Registry {
	return &Registry{
		baseURL:       baseURL,
		staticRoutes:  static,
		dynamicRoutes: dynamic,
		workspaces:    workspaces,
		shortcuts:     shortcuts,
		pages:         pages,
	}
}
