package stereo

import (
	"fmt"
	"math"
	"time"
)

// Advance returns currentDeg advanced by elapsedSeconds of a rotation that takes
// periodSeconds per full turn. The result is always in [0,360), also for negative
// input and for deltas larger than a turn.
//
// periodSeconds must be > 0; RotationEngine validates it once at construction.
func Advance(currentDeg, elapsedSeconds, periodSeconds float64) float64 {
	delta := elapsedSeconds / periodSeconds * 360
	return wrapDegrees(currentDeg + delta)
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds to 360 in float64.
	if a >= 360 {
		a = 0
	}
	return a
}

// RotationEngine owns the scene rotation angle.
type RotationEngine struct {
	angle  float64 // degrees, [0,360)
	period time.Duration
}

// NewRotationEngine returns an engine at angle 0 that completes one turn per period.
func NewRotationEngine(period time.Duration) (*RotationEngine, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rotation period %v: %w", period, ErrInvalidConfiguration)
	}
	return &RotationEngine{period: period}, nil
}

// Angle returns the current angle in degrees.
func (e *RotationEngine) Angle() float64 { return e.angle }

// Period returns the duration of one full turn.
func (e *RotationEngine) Period() time.Duration { return e.period }

// Step advances the angle by the elapsed time and returns the new angle.
func (e *RotationEngine) Step(elapsed time.Duration) float64 {
	e.angle = Advance(e.angle, elapsed.Seconds(), e.period.Seconds())
	return e.angle
}

// Reset sets the angle, folded into [0,360).
func (e *RotationEngine) Reset(deg float64) { e.angle = wrapDegrees(deg) }
