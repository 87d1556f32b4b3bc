package geofence

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// target object at 5th & Main.
var target = orb.Point{77.583, 12.930}

// slowFix resolves after a delay, honoring context cancellation.
type slowFix struct {
	delay time.Duration
	fix   Fix
}

func (s slowFix) CurrentFix(ctx context.Context) (Fix, error) {
	select {
	case <-time.After(s.delay):
		return s.fix, nil
	case <-ctx.Done():
		return Fix{}, ctx.Err()
	}
}

func TestEvaluate_NoTargetCoordinatesIsUnconstrained(t *testing.T) {
	v := NewValidator()

	decision := v.Evaluate(context.Background(), nil, StaticFix{Latitude: 12.930, Longitude: 77.583})

	assert.Equal(t, Unconstrained, decision.State)
	assert.True(t, decision.Permitted())
}

func TestEvaluate_WithinRange(t *testing.T) {
	v := NewValidator()

	// ~50 m north of the target.
	decision := v.Evaluate(context.Background(), &target, StaticFix{Latitude: 12.93045, Longitude: 77.583})

	assert.Equal(t, WithinRange, decision.State)
	assert.True(t, decision.Permitted())
	assert.InDelta(t, 50, decision.DistanceMeters, 2)
}

func TestEvaluate_OutOfRangeBlocks(t *testing.T) {
	v := NewValidator()

	// ~150 m north of the target.
	decision := v.Evaluate(context.Background(), &target, StaticFix{Latitude: 12.93135, Longitude: 77.583})

	assert.Equal(t, OutOfRange, decision.State)
	assert.False(t, decision.Permitted())
	assert.InDelta(t, 150, decision.DistanceMeters, 2)
}

func TestEvaluate_FixTimeoutFailsOpen(t *testing.T) {
	v := &Validator{ThresholdMeters: DefaultThresholdMeters, FixWait: 10 * time.Millisecond}

	decision := v.Evaluate(context.Background(), &target, NoFix{})

	assert.Equal(t, Unconstrained, decision.State)
	assert.True(t, decision.Permitted())
	assert.Equal(t, -1.0, decision.DistanceMeters)
}

func TestEvaluate_SlowFixWithinWaitIsMeasured(t *testing.T) {
	v := &Validator{ThresholdMeters: DefaultThresholdMeters, FixWait: 200 * time.Millisecond}
	src := slowFix{delay: 10 * time.Millisecond, fix: Fix{Latitude: 12.93045, Longitude: 77.583}}

	decision := v.Evaluate(context.Background(), &target, src)

	assert.Equal(t, WithinRange, decision.State)
}

func TestEvaluate_SlowFixPastWaitFailsOpen(t *testing.T) {
	v := &Validator{ThresholdMeters: DefaultThresholdMeters, FixWait: 10 * time.Millisecond}
	// Would be out of range, but the fix arrives too late to matter.
	src := slowFix{delay: 500 * time.Millisecond, fix: Fix{Latitude: 12.93135, Longitude: 77.583}}

	decision := v.Evaluate(context.Background(), &target, src)

	assert.Equal(t, Unconstrained, decision.State)
	assert.True(t, decision.Permitted())
}

func TestEvaluate_ExactThresholdPermits(t *testing.T) {
	v := &Validator{ThresholdMeters: 1e9, FixWait: DefaultFixWait}

	decision := v.Evaluate(context.Background(), &target, StaticFix{Latitude: -33.8688, Longitude: 151.2093})

	assert.Equal(t, WithinRange, decision.State)
}
