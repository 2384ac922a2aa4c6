package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64 // stop after N ticks; 0 runs until ctx is done
	Width  int
	Height int

	// FixedStep pins the clock and advances it by exactly 1/Hz per tick, so a
	// run renders the same frames regardless of host load.
	FixedStep bool

	// Output receives log lines; nil means stdout.
	Output io.Writer
}

// RunHeadless drives the app from a ticker without opening a window.
//
// The app is made visible before the first tick and hidden on every exit path.
func RunHeadless(ctx context.Context, newApp func(HAL) (App, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Width, cfg.Height, cfg.Output)
	if cfg.FixedStep {
		h.clock.pin()
	}
	app, err := newApp(h)
	if err != nil {
		return err
	}
	app.SetVisible(true)
	defer app.SetVisible(false)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clock.step(d)
			if err := app.Step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
