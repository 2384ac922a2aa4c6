package stereo

import (
	"fmt"
	"time"
)

// Clock supplies the time used to measure tick intervals.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// DriverState is the animation driver state.
type DriverState uint8

const (
	Stopped DriverState = iota
	Running
)

func (s DriverState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Driver is the periodic tick source of the animation.
//
// It does not own a goroutine: the host loop calls Step, and a tick fires once
// the measured time since the previous tick reaches the interval. The engine
// advances by the measured time, not the nominal interval, so rotation speed
// does not depend on host jitter. Every tick ends with an explicit render call.
//
// Start while Running is a no-op. Stop is idempotent, and once it returns no
// further tick fires.
type Driver struct {
	engine   *RotationEngine
	clock    Clock
	interval time.Duration
	render   func(angleDeg float64)

	state  DriverState
	gen    uint64
	last   time.Time
	frames uint64
}

// NewDriver returns a stopped driver.
func NewDriver(engine *RotationEngine, clock Clock, interval time.Duration, render func(angleDeg float64)) (*Driver, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("frame interval %v: %w", interval, ErrInvalidConfiguration)
	}
	if engine == nil || clock == nil || render == nil {
		return nil, fmt.Errorf("driver needs engine, clock and render: %w", ErrInvalidConfiguration)
	}
	return &Driver{
		engine:   engine,
		clock:    clock,
		interval: interval,
		render:   render,
	}, nil
}

// Start begins ticking and returns a handle that stops this run. The handle is
// a no-op once the run has ended, even if the driver was restarted since.
func (d *Driver) Start() (stop func()) {
	if d.state != Running {
		d.state = Running
		d.gen++
		d.last = d.clock.Now()
	}
	gen := d.gen
	return func() {
		if d.gen == gen {
			d.Stop()
		}
	}
}

// Stop cancels ticking.
func (d *Driver) Stop() {
	d.state = Stopped
}

// Step fires a tick if the driver is running and the interval has elapsed.
// It reports whether a tick fired.
func (d *Driver) Step() bool {
	if d.state != Running {
		return false
	}
	now := d.clock.Now()
	elapsed := now.Sub(d.last)
	if elapsed < d.interval {
		return false
	}
	d.last = now
	angle := d.engine.Step(elapsed)
	d.frames++
	d.render(angle)
	return true
}

// State returns the current state.
func (d *Driver) State() DriverState { return d.state }

// Interval returns the nominal tick interval.
func (d *Driver) Interval() time.Duration { return d.interval }

// Frames returns the number of ticks fired since the driver was created.
func (d *Driver) Frames() uint64 { return d.frames }

// Angle returns the engine angle in degrees.
func (d *Driver) Angle() float64 { return d.engine.Angle() }
