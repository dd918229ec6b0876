// Package state infers the console's runtime state from a page snapshot:
// RBAC permission level, subscription gating and per-module initialization
// status, all derived from heuristic text and structural signals.
package state

import (
	"time"

	"consolenav/internal/auth"
)

// PermissionLevel summarizes what the current session may do on the page.
type PermissionLevel string

const (
	LevelFull     PermissionLevel = "full"
	LevelEdit     PermissionLevel = "edit"
	LevelReadOnly PermissionLevel = "read_only"
	LevelNone     PermissionLevel = "none"
)

// PageState describes the page the console is currently showing.
type PageState struct {
	URL          string `json:"url"`
	Title        string `json:"title,omitempty"`
	Workspace    string `json:"workspace,omitempty"`
	Namespace    string `json:"namespace,omitempty"`
	PageType     string `json:"page_type"`
	IsLoading    bool   `json:"is_loading"`
	HasError     bool   `json:"has_error"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// PermissionState is the inferred RBAC posture. Level is always derived
// from the locked/available lists and the read-only badge; it is never set
// independently.
type PermissionState struct {
	Level            PermissionLevel `json:"level"`
	LockedActions    []string        `json:"locked_actions"`
	AvailableActions []string        `json:"available_actions"`
	ReadOnlyBadge    bool            `json:"read_only_badge"`
	DenialHints      []string        `json:"denial_hints,omitempty"`
	CanCreate        bool            `json:"can_create"`
	CanEdit          bool            `json:"can_edit"`
	CanDelete        bool            `json:"can_delete"`
	CanClone         bool            `json:"can_clone"`
}

// SubscriptionBadge is one gating badge found on the page.
type SubscriptionBadge struct {
	Text   string `json:"text"`
	Tier   string `json:"tier"`
	Access string `json:"access"`
}

// SubscriptionState is the inferred subscription posture.
type SubscriptionState struct {
	Tier              string              `json:"tier"`
	Badges            []SubscriptionBadge `json:"badges,omitempty"`
	AvailableFeatures []string            `json:"available_features,omitempty"`
	GatedFeatures     []string            `json:"gated_features,omitempty"`
	UpgradeRequired   bool                `json:"upgrade_required"`
}

// ModuleStatus classifies a product module's presence on the page.
type ModuleStatus string

const (
	ModuleEnabled      ModuleStatus = "enabled"
	ModuleRequiresInit ModuleStatus = "requires_init"
	ModuleEmpty        ModuleStatus = "empty"
	ModuleUnknown      ModuleStatus = "unknown"
)

// ModuleState is one module's inferred status.
type ModuleState struct {
	Status      ModuleStatus `json:"status"`
	Initialized bool         `json:"initialized"`
	StatusText  string       `json:"status_text,omitempty"`
	NextAction  string       `json:"next_action,omitempty"`
}

// ConsoleState is the full snapshot-in-time aggregate.
type ConsoleState struct {
	Auth          auth.Status            `json:"auth"`
	Page          PageState              `json:"page"`
	Permissions   *PermissionState       `json:"permissions,omitempty"`
	Subscription  *SubscriptionState     `json:"subscription,omitempty"`
	Modules       map[string]ModuleState `json:"modules,omitempty"`
	CapturedAt    time.Time              `json:"captured_at"`
	CaptureID     string                 `json:"capture_id"`
	CaptureMethod string                 `json:"capture_method"`
}
