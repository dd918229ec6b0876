package state

import (
	"strings"

	"consolenav/internal/snapshot"
)

// knownModules is the closed list of independently enable-able product
// capabilities the detector looks for.
var knownModules = []string{
	"bot-defense",
	"api-protection",
	"client-side-defense",
	"malicious-user-detection",
	"synthetic-monitoring",
}

// Status phrase lists, checked in priority order: an enabled signal beats a
// setup prompt, which beats an empty-state message.
var (
	enabledPhrases = []string{"Enabled", "Active", "Monitoring active", "Configured"}

	requiresInitPhrases = []string{"Get Started", "Set up", "Enable now", "Requires setup", "Activate"}

	emptyPhrases = []string{"No data", "Nothing to display", "No items found", "Empty"}
)

// detectModules reports the status of every known module present on the
// page. A module is present when any of its surface-text variants
// (hyphenated, spaced, concatenated) appears.
func detectModules(snap *snapshot.Snapshot) map[string]ModuleState {
	modules := make(map[string]ModuleState)
	for _, id := range knownModules {
		if !modulePresent(snap, id) {
			continue
		}
		modules[id] = classifyModule(snap)
	}
	return modules
}

func modulePresent(snap *snapshot.Snapshot, id string) bool {
	variants := []string{
		id,
		strings.ReplaceAll(id, "-", " "),
		strings.ReplaceAll(id, "-", ""),
	}
	for _, v := range variants {
		if snap.HasText(v) {
			return true
		}
	}
	return false
}

func classifyModule(snap *snapshot.Snapshot) ModuleState {
	if phrase, ok := firstPhrase(snap, enabledPhrases); ok {
		return ModuleState{Status: ModuleEnabled, Initialized: true, StatusText: phrase}
	}
	if phrase, ok := firstPhrase(snap, requiresInitPhrases); ok {
		return ModuleState{
			Status:     ModuleRequiresInit,
			StatusText: phrase,
			NextAction: "run the module's initial setup",
		}
	}
	if phrase, ok := firstPhrase(snap, emptyPhrases); ok {
		return ModuleState{
			Status:      ModuleEmpty,
			Initialized: true,
			StatusText:  phrase,
			NextAction:  "create the first object",
		}
	}
	return ModuleState{Status: ModuleUnknown}
}

func firstPhrase(snap *snapshot.Snapshot, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		if snap.HasText(phrase) {
			return phrase, true
		}
	}
	return "", false
}
