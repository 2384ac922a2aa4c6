package stereo

import (
	"errors"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDriver(t *testing.T) (*Driver, *fakeClock, *[]float64) {
	t.Helper()
	e, err := NewRotationEngine(4 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	clk := &fakeClock{now: time.Unix(1000, 0)}
	var renders []float64
	d, err := NewDriver(e, clk, 20*time.Millisecond, func(a float64) { renders = append(renders, a) })
	if err != nil {
		t.Fatal(err)
	}
	return d, clk, &renders
}

func TestNewDriverInvalid(t *testing.T) {
	e, _ := NewRotationEngine(time.Second)
	clk := &fakeClock{}
	render := func(float64) {}
	if _, err := NewDriver(e, clk, 0, render); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("zero interval: err = %v", err)
	}
	if _, err := NewDriver(e, clk, -time.Millisecond, render); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("negative interval: err = %v", err)
	}
	if _, err := NewDriver(nil, clk, time.Millisecond, render); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("nil engine: err = %v", err)
	}
}

func TestDriverStoppedByDefault(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	if d.State() != Stopped {
		t.Fatalf("initial state %s", d.State())
	}
	clk.Advance(time.Second)
	if d.Step() || len(*renders) != 0 {
		t.Fatalf("stopped driver ticked")
	}
}

func TestDriverTicksOnInterval(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	d.Start()

	if d.Step() {
		t.Fatalf("ticked before interval")
	}
	clk.Advance(10 * time.Millisecond)
	if d.Step() {
		t.Fatalf("ticked at half interval")
	}
	clk.Advance(10 * time.Millisecond)
	if !d.Step() {
		t.Fatalf("no tick at interval")
	}
	if len(*renders) != 1 || !scalar.EqualWithinAbs((*renders)[0], 1.8, 1e-9) {
		t.Fatalf("renders = %v", *renders)
	}
	if d.Frames() != 1 || d.Angle() != (*renders)[0] {
		t.Fatalf("frames %d angle %v", d.Frames(), d.Angle())
	}
}

func TestDriverUsesMeasuredElapsed(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	d.Start()
	// A late tick advances by the real gap, not the nominal 20ms.
	clk.Advance(100 * time.Millisecond)
	d.Step()
	if !scalar.EqualWithinAbs((*renders)[0], 9, 1e-9) {
		t.Fatalf("angle after 100ms = %v, want 9", (*renders)[0])
	}
	// A full period of jittery polling, including polls that come too early
	// to tick, returns to the same angle.
	for i := 0; i < 100; i++ {
		clk.Advance(17 * time.Millisecond)
		d.Step()
		clk.Advance(23 * time.Millisecond)
		d.Step()
	}
	if !scalar.EqualWithinAbs(d.Angle(), 9, 1e-6) {
		t.Fatalf("angle after one period = %v, want 9", d.Angle())
	}
}

func TestDriverStopIdempotent(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	d.Stop()
	d.Stop()
	if d.State() != Stopped {
		t.Fatalf("state %s", d.State())
	}

	d.Start()
	clk.Advance(20 * time.Millisecond)
	d.Step()
	d.Stop()
	d.Stop()
	n := len(*renders)
	for i := 0; i < 10; i++ {
		clk.Advance(20 * time.Millisecond)
		if d.Step() {
			t.Fatalf("tick after stop")
		}
	}
	if len(*renders) != n {
		t.Fatalf("render after stop")
	}
}

func TestDriverStartWhileRunning(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	d.Start()
	clk.Advance(15 * time.Millisecond)
	d.Start()
	// The second Start did not reset the interval.
	clk.Advance(5 * time.Millisecond)
	if !d.Step() {
		t.Fatalf("restart reset the interval")
	}
	if len(*renders) != 1 {
		t.Fatalf("renders = %d", len(*renders))
	}
}

func TestDriverStopHandle(t *testing.T) {
	d, clk, _ := newTestDriver(t)
	stop := d.Start()
	stop()
	if d.State() != Stopped {
		t.Fatalf("handle did not stop")
	}
	stop()

	restart := d.Start()
	stop()
	if d.State() != Running {
		t.Fatalf("stale handle stopped a new run")
	}
	restart()
	clk.Advance(time.Second)
	if d.Step() {
		t.Fatalf("tick after handle stop")
	}
}

func TestDriverRestartMeasuresFromStart(t *testing.T) {
	d, clk, renders := newTestDriver(t)
	d.Start()
	d.Stop()
	clk.Advance(time.Hour)
	d.Start()
	clk.Advance(20 * time.Millisecond)
	d.Step()
	// The hour spent stopped does not count.
	if !scalar.EqualWithinAbs((*renders)[0], 1.8, 1e-9) {
		t.Fatalf("angle = %v", (*renders)[0])
	}
}
