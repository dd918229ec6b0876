package state

import (
	"sort"
	"strings"

	"consolenav/internal/snapshot"
)

// Subscription tiers. Enterprise is only reached through an
// enterprise-tagged badge and is revoked again by any upgrade prompt.
const (
	tierStandard   = "standard"
	tierEnterprise = "enterprise"
)

// badgeKeyword maps a badge phrase to the tier and access mode it implies.
type badgeKeyword struct {
	phrase string
	tier   string
	access string
}

var badgeKeywords = []badgeKeyword{
	{"limited availability", tierEnterprise, "limited"},
	{"early access", tierEnterprise, "preview"},
	{"upgrade", tierStandard, "upgrade_required"},
	{"new", tierStandard, "general"},
}

// upgradePrompts are page texts that mean the current plan is insufficient.
var upgradePrompts = []string{
	"Upgrade your plan",
	"Upgrade to access",
	"Contact sales",
	"Unlock this feature",
	"requires an upgraded plan",
}

// featureIndicators maps feature ids to the surface text that marks their
// presence on the page.
var featureIndicators = map[string]string{
	"bot_defense":              "Bot Defense",
	"api_discovery":            "API Discovery",
	"client_side_defense":      "Client-Side Defense",
	"malicious_user_detection": "Malicious User Detection",
	"synthetic_monitors":       "Synthetic Monitors",
}

// detectSubscription derives the subscription posture from badge and
// upgrade-prompt signals. An upgrade prompt overrides badge escalation:
// being told to upgrade means the current tier is insufficient.
func detectSubscription(snap *snapshot.Snapshot) *SubscriptionState {
	sub := &SubscriptionState{Tier: tierStandard}

	badgeElements := append(
		snap.Find(snapshot.Query{Role: "link"}),
		snap.Find(snapshot.Query{Role: "generic"})...)
	for _, el := range badgeElements {
		lower := strings.ToLower(el.Name)
		for _, kw := range badgeKeywords {
			if !strings.Contains(lower, kw.phrase) {
				continue
			}
			sub.Badges = append(sub.Badges, SubscriptionBadge{
				Text:   el.Name,
				Tier:   kw.tier,
				Access: kw.access,
			})
			if kw.tier == tierEnterprise {
				sub.Tier = tierEnterprise
			}
		}
	}

	for _, prompt := range upgradePrompts {
		if snap.HasText(prompt) {
			sub.Tier = tierStandard
			sub.UpgradeRequired = true
			sub.Badges = append(sub.Badges, SubscriptionBadge{
				Text:   prompt,
				Tier:   tierStandard,
				Access: "upgrade_required",
			})
			break
		}
	}

	for feature, indicator := range featureIndicators {
		if !snap.HasText(indicator) {
			continue
		}
		if snap.HasText("Enable "+indicator) || snap.HasText("Upgrade") {
			sub.GatedFeatures = append(sub.GatedFeatures, feature)
		} else {
			sub.AvailableFeatures = append(sub.AvailableFeatures, feature)
		}
	}
	sort.Strings(sub.GatedFeatures)
	sort.Strings(sub.AvailableFeatures)

	return sub
}
