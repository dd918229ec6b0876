package state

import (
	"regexp"
	"strings"

	"consolenav/internal/snapshot"
)

var (
	workspacePathPattern = regexp.MustCompile(`/web/workspaces/([a-z0-9-]+)`)
	namespacePathPattern = regexp.MustCompile(`/namespaces/([a-zA-Z0-9_-]+)`)
)

// pageTypeRule classifies a URL by substring. First match wins.
type pageTypeRule struct {
	substring string
	pageType  string
}

var pageTypeRules = []pageTypeRule{
	{"/web/home", "home"},
	{"/create", "form"},
	{"/edit", "form"},
	{"/manage/", "list"},
	{"/overview", "overview"},
	{"/about", "about"},
	{"/web/workspaces/", "workspace"},
	{"/login", "login"},
}

var loadingPhrases = []string{"Loading", "Please wait", "Fetching"}

var errorPhrases = []string{"Error", "Failed", "not found", "Something went wrong"}

// detectPage derives page identity from the URL and loading/error posture
// from the snapshot text.
func detectPage(url string, snap *snapshot.Snapshot) PageState {
	page := PageState{URL: url, PageType: "unknown"}

	if m := workspacePathPattern.FindStringSubmatch(url); m != nil {
		page.Workspace = m[1]
	}
	if m := namespacePathPattern.FindStringSubmatch(url); m != nil {
		page.Namespace = m[1]
	}
	for _, rule := range pageTypeRules {
		if strings.Contains(url, rule.substring) {
			page.PageType = rule.pageType
			break
		}
	}

	if snap == nil {
		return page
	}
	page.Title = snap.Title

	for _, phrase := range loadingPhrases {
		if snap.HasText(phrase) {
			page.IsLoading = true
			break
		}
	}
	for _, phrase := range errorPhrases {
		if snap.HasText(phrase) {
			page.HasError = true
			break
		}
	}
	if page.HasError {
		page.ErrorMessage = firstErrorMessage(snap)
	}
	return page
}

// firstErrorMessage returns the name of the first element containing an
// error phrase, as the best-effort error text.
func firstErrorMessage(snap *snapshot.Snapshot) string {
	for _, el := range snap.Elements {
		lower := strings.ToLower(el.Name)
		for _, phrase := range errorPhrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				return el.Name
			}
		}
	}
	return ""
}
