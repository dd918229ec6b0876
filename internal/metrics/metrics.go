package metrics

import (
	"sync/atomic"
)

// Metrics tracks operational metrics.
type Metrics struct {
	ParsesTotal            uint64 `json:"parses_total"`
	ClarificationsRequired uint64 `json:"clarifications_required"`
	ResolutionsComplete    uint64 `json:"resolutions_complete"`
	ResolutionsIncomplete  uint64 `json:"resolutions_incomplete"`
	SnapshotsInspected     uint64 `json:"snapshots_inspected"`
}

var global = &Metrics{}

// ParseCompleted increments the count of commands parsed.
func ParseCompleted() { atomic.AddUint64(&global.ParsesTotal, 1) }

// ClarificationRequired increments the count of parses that needed clarification.
func ClarificationRequired() { atomic.AddUint64(&global.ClarificationsRequired, 1) }

// ResolutionComplete increments the count of fully resolved URLs.
func ResolutionComplete() { atomic.AddUint64(&global.ResolutionsComplete, 1) }

// ResolutionIncomplete increments the count of resolutions left with unresolved variables.
func ResolutionIncomplete() { atomic.AddUint64(&global.ResolutionsIncomplete, 1) }

// SnapshotInspected increments the count of console state detections.
func SnapshotInspected() { atomic.AddUint64(&global.SnapshotsInspected, 1) }

// Get returns a snapshot of the current metrics.
func Get() Metrics {
	return Metrics{
		ParsesTotal:            atomic.LoadUint64(&global.ParsesTotal),
		ClarificationsRequired: atomic.LoadUint64(&global.ClarificationsRequired),
		ResolutionsComplete:    atomic.LoadUint64(&global.ResolutionsComplete),
		ResolutionsIncomplete:  atomic.LoadUint64(&global.ResolutionsIncomplete),
		SnapshotsInspected:     atomic.LoadUint64(&global.SnapshotsInspected),
	}
}

// Reset resets all metrics to zero (useful for testing).
func Reset() {
	atomic.StoreUint64(&global.ParsesTotal, 0)
	atomic.StoreUint64(&global.ClarificationsRequired, 0)
	atomic.StoreUint64(&global.ResolutionsComplete, 0)
	atomic.StoreUint64(&global.ResolutionsIncomplete, 0)
	atomic.StoreUint64(&global.SnapshotsInspected, 0)
}
