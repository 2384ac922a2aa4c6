package app

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"stereo/config"
	"stereo/hal"
	"stereo/stereo"
)

func newTestApp(t *testing.T) (*App, hal.HAL, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h := hal.NewWithOutput(480, 320, &out)
	a, err := New(h, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, h, &out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Viewer.ViewDistanceInches = 0
	_, err := New(hal.NewWithOutput(64, 64, &bytes.Buffer{}), cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, stereo.ErrInvalidConfiguration) && !errors.Is(err, stereo.ErrInvalidGeometryConfig) {
		t.Fatalf("err=%v", err)
	}
}

func TestNewDoesNotStart(t *testing.T) {
	a, _, out := newTestApp(t)
	if a.Running() {
		t.Fatalf("running before visible")
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.Frames() != 0 {
		t.Fatalf("frames=%d", a.Frames())
	}
	if !strings.Contains(out.String(), "stereo: ") {
		t.Fatalf("missing startup log: %q", out.String())
	}
}

func TestVisibleRendersImmediately(t *testing.T) {
	a, h, _ := newTestApp(t)
	a.SetVisible(true)
	if !a.Running() {
		t.Fatalf("not running after SetVisible(true)")
	}

	img, err := hal.NewFramebufferImage(h.Display().Framebuffer())
	if err != nil {
		t.Fatalf("NewFramebufferImage: %v", err)
	}
	// Interior of the left-eye panel at angle 0.
	if got := img.RGBAAt(166, 160); got.B != 0xFF || got.R != 0 {
		t.Fatalf("panel pixel=%v", got)
	}
	// Between the two eye images.
	if got := img.RGBAAt(240, 160); got.R != 0xFF || got.G != 0xFF || got.B != 0xFF {
		t.Fatalf("background pixel=%v", got)
	}

	a.SetVisible(false)
	if a.Running() {
		t.Fatalf("running after SetVisible(false)")
	}
}

func TestKeys(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.SetVisible(true)

	a.HandleKey(hal.KeySpace)
	if a.Running() {
		t.Fatalf("running while paused")
	}
	a.HandleKey(hal.KeySpace)
	if !a.Running() {
		t.Fatalf("not running after resume")
	}

	a.HandleKey(hal.KeyReset)
	if a.Angle() != 0 {
		t.Fatalf("angle=%v after reset", a.Angle())
	}

	a.HandleKey(hal.KeyEscape)
	if err := a.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("Step err=%v, want ErrQuit", err)
	}
}

func TestPausedStaysStoppedWhenShown(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.HandleKey(hal.KeySpace)
	a.SetVisible(true)
	if a.Running() {
		t.Fatalf("paused app started on show")
	}
}

func TestHeadlessFixedStep(t *testing.T) {
	cfg := config.Default()
	var a *App
	err := hal.RunHeadless(context.Background(), func(h hal.HAL) (hal.App, error) {
		var err error
		a, err = New(h, cfg)
		return a, err
	}, hal.HeadlessConfig{
		Hz:        cfg.PollHz(),
		Ticks:     50,
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		FixedStep: true,
		Output:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	// 50 polls of 10ms fire a tick every second poll; 25 ticks of 20ms at 4s
	// per turn is 45°.
	if a.Frames() != 25 {
		t.Fatalf("frames=%d, want 25", a.Frames())
	}
	if math.Abs(a.Angle()-45) > 1e-9 {
		t.Fatalf("angle=%v, want 45", a.Angle())
	}
	if a.Running() {
		t.Fatalf("still running after the runner returned")
	}
}
