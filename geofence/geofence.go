// Package geofence gates issue submission on the citizen's physical
// proximity to the reported object.
package geofence

import (
	"context"
	"time"

	"civic-reporter-be/geoutil"

	"github.com/paulmach/orb"
)

// State of an in-progress report attempt.
type State string

const (
	// AwaitingFix is the initial state while the GPS fix resolves.
	AwaitingFix State = "awaiting_fix"
	// WithinRange permits submission: the citizen is close enough.
	WithinRange State = "within_range"
	// OutOfRange is the only state that blocks submission.
	OutOfRange State = "out_of_range"
	// Unconstrained permits submission without a proximity check: either
	// the object carries no coordinates, or the fix could not be obtained
	// in time. Failing open is a policy choice favoring availability, not
	// a security control.
	Unconstrained State = "unconstrained"
)

const (
	// DefaultThresholdMeters is how close a citizen must be to report.
	DefaultThresholdMeters = 100.0
	// DefaultFixWait bounds GPS acquisition.
	DefaultFixWait = 10 * time.Second
)

// Fix is a resolved GPS position.
type Fix struct {
	Latitude  float64
	Longitude float64
}

// FixSource yields the citizen's live position. Implementations must honor
// context cancellation.
type FixSource interface {
	CurrentFix(ctx context.Context) (Fix, error)
}

// StaticFix is a FixSource for a position already acquired by the client.
type StaticFix Fix

func (f StaticFix) CurrentFix(ctx context.Context) (Fix, error) {
	return Fix(f), nil
}

// NoFix is a FixSource that never resolves, used when the client supplied
// no position.
type NoFix struct{}

func (NoFix) CurrentFix(ctx context.Context) (Fix, error) {
	<-ctx.Done()
	return Fix{}, ctx.Err()
}

// Decision is the terminal state of one report attempt.
type Decision struct {
	State State
	// DistanceMeters is the measured distance, or -1 when no distance was
	// computed.
	DistanceMeters float64
}

// Permitted reports whether submission may proceed. Only OutOfRange blocks.
func (d Decision) Permitted() bool {
	return d.State != OutOfRange
}

// Validator decides whether a report attempt is within range of its target.
type Validator struct {
	ThresholdMeters float64
	FixWait         time.Duration
}

func NewValidator() *Validator {
	return &Validator{
		ThresholdMeters: DefaultThresholdMeters,
		FixWait:         DefaultFixWait,
	}
}

// Evaluate runs the attempt to a terminal state. A target without
// coordinates is Unconstrained; a fix inside the bounded wait is measured
// against the threshold; a failed or timed-out fix fails open.
func (v *Validator) Evaluate(ctx context.Context, target *orb.Point, src FixSource) Decision {
	if target == nil {
		return Decision{State: Unconstrained, DistanceMeters: -1}
	}

	fixCtx, cancel := context.WithTimeout(ctx, v.FixWait)
	defer cancel()

	fix, err := src.CurrentFix(fixCtx)
	if err != nil {
		return Decision{State: Unconstrained, DistanceMeters: -1}
	}

	distance := geoutil.Distance(fix.Latitude, fix.Longitude, target.Lat(), target.Lon())
	if distance <= v.ThresholdMeters {
		return Decision{State: WithinRange, DistanceMeters: distance}
	}
	return Decision{State: OutOfRange, DistanceMeters: distance}
}
