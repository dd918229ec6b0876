package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"consolenav/internal/auth"
	"consolenav/internal/metrics"
	"consolenav/internal/snapshot"
)

// defaultCaptureMethod tags states produced from parsed DOM snapshots.
const defaultCaptureMethod = "dom_snapshot"

// Detector infers ConsoleState from a page snapshot. It holds no cross-call
// state: every Detect result depends only on its arguments.
type Detector struct {
	authAnalyzer  auth.Analyzer
	captureMethod string
	log           zerolog.Logger
	now           func() time.Time
}

// DetectorOption configures the detector.
type DetectorOption func(*Detector)

// WithCaptureMethod overrides the capture-method tag.
func WithCaptureMethod(method string) DetectorOption {
	return func(d *Detector) {
		d.captureMethod = method
	}
}

// WithLogger attaches a logger for detection diagnostics.
func WithLogger(log zerolog.Logger) DetectorOption {
	return func(d *Detector) {
		d.log = log
	}
}

// withClock fixes the timestamp source, for tests.
func withClock(now func() time.Time) DetectorOption {
	return func(d *Detector) {
		d.now = now
	}
}

// NewDetector creates a detector using the given auth collaborator.
func NewDetector(authAnalyzer auth.Analyzer, opts ...DetectorOption) *Detector {
	d := &Detector{
		authAnalyzer:  authAnalyzer,
		captureMethod: defaultCaptureMethod,
		log:           zerolog.Nop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect inspects the snapshot and returns the inferred console state. The
// snapshot is never mutated; absent signals yield conservative defaults
// rather than errors.
func (d *Detector) Detect(url string, snap *snapshot.Snapshot) *ConsoleState {
	cs := &ConsoleState{
		Page:          detectPage(url, snap),
		CapturedAt:    d.now().UTC(),
		CaptureID:     uuid.NewString(),
		CaptureMethod: d.captureMethod,
	}

	if d.authAnalyzer != nil {
		cs.Auth = d.authAnalyzer.AnalyzeAuth(url, snap)
	} else {
		cs.Auth = auth.Status{State: auth.StateUnknown}
	}

	if snap != nil {
		cs.Permissions = detectPermissions(snap)
		cs.Subscription = detectSubscription(snap)
		cs.Modules = detectModules(snap)
	}

	metrics.SnapshotInspected()
	d.log.Debug().
		Str("url", url).
		Str("page_type", cs.Page.PageType).
		Str("capture_id", cs.CaptureID).
		Msg("detected console state")

	return cs
}

// DetectPermissions exposes permission detection on its own, for callers
// that only need the RBAC posture of a snapshot.
func (d *Detector) DetectPermissions(snap *snapshot.Snapshot) *PermissionState {
	return detectPermissions(snap)
}
