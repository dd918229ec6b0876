package intent

import (
	"regexp"
	"strconv"
)

var (
	filterPattern = regexp.MustCompile(`filter\s+([a-z0-9_]+)\s*=\s*["']?([a-z0-9._-]+)["']?`)
	sortPattern   = regexp.MustCompile(`sort(?:ed)?\s+by\s+([a-z0-9_]+)(?:\s+(asc|desc))?`)
	limitPattern  = regexp.MustCompile(`\b(?:first|top|limit)\s+(\d+)\b`)

	allFlagPattern      = regexp.MustCompile(`\ball\b`)
	detailedFlagPattern = regexp.MustCompile(`\bdetail(?:ed|s)\b`)
)

// extractParameters scans for filter, sort, limit and boolean-flag phrases.
// Extraction is independent of action/resource matching; an empty result
// is returned as nil so plain commands serialize without a parameters key.
func extractParameters(input string) map[string]any {
	s := normalize(input)
	params := make(map[string]any)

	if m := filterPattern.FindStringSubmatch(s); m != nil {
		params["filter_"+m[1]] = m[2]
	}
	if m := sortPattern.FindStringSubmatch(s); m != nil {
		params["sort_by"] = m[1]
		order := "asc"
		if m[2] != "" {
			order = m[2]
		}
		params["sort_order"] = order
	}
	if m := limitPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			params["limit"] = n
		}
	}
	if allFlagPattern.MatchString(s) {
		params["all"] = true
	}
	if detailedFlagPattern.MatchString(s) {
		params["detailed"] = true
	}

	if len(params) == 0 {
		return nil
	}
	return params
}
