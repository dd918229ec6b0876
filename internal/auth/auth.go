// Package auth defines the authentication-state collaborator consumed by
// the state detector. The full login-flow detector lives outside this
// module; the heuristic analyzer here covers the common cases so the
// pipeline is usable standalone.
package auth

import (
	"strings"

	"consolenav/internal/snapshot"
)

// State is the session's authentication status.
type State string

const (
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
	StateExpired         State = "expired"
	StateUnknown         State = "unknown"
)

// Status is the auth portion of a console state capture.
type Status struct {
	State State `json:"state"`
}

// Analyzer determines authentication status from the current URL and page
// snapshot.
type Analyzer interface {
	AnalyzeAuth(url string, snap *snapshot.Snapshot) Status
}

// HeuristicAnalyzer classifies auth state from login-page URL and text
// signals.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer creates the default analyzer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// AnalyzeAuth reports unauthenticated on login pages, expired on session
// timeout text, and authenticated otherwise.
func (a *HeuristicAnalyzer) AnalyzeAuth(url string, snap *snapshot.Snapshot) Status {
	lower := strings.ToLower(url)
	if strings.Contains(lower, "/login") || strings.Contains(lower, "/signin") || strings.Contains(lower, "/auth") {
		return Status{State: StateUnauthenticated}
	}
	if snap == nil {
		return Status{State: StateUnknown}
	}
	if snap.HasText("Session expired") || snap.HasText("session has expired") {
		return Status{State: StateExpired}
	}
	if snap.HasText("Sign in") || snap.HasText("Log in") {
		return Status{State: StateUnauthenticated}
	}
	return Status{State: StateAuthenticated}
}
