package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"stereo/app"
	"stereo/config"
	"stereo/hal"
)

func main() {
	var (
		headless  bool
		ticks     uint64
		fixedStep bool
		cfgPath   string
		width     int
		height    int
		scale     int
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N host ticks in headless mode (0 = run forever).")
	flag.BoolVar(&fixedStep, "fixed-step", false, "Advance time by exactly one tick per poll in headless mode.")
	flag.StringVar(&cfgPath, "config", "", "TOML configuration file.")
	flag.IntVar(&width, "width", 0, "Display width in pixels (overrides config).")
	flag.IntVar(&height, "height", 0, "Display height in pixels (overrides config).")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()

	if err := run(headless, ticks, fixedStep, cfgPath, width, height, scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(headless bool, ticks uint64, fixedStep bool, cfgPath string, width, height, scale int) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if width > 0 {
		cfg.Display.Width = width
	}
	if height > 0 {
		cfg.Display.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	newApp := func(h hal.HAL) (hal.App, error) {
		return app.New(h, cfg)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Hz:        cfg.PollHz(),
			Ticks:     ticks,
			Width:     cfg.Display.Width,
			Height:    cfg.Display.Height,
			FixedStep: fixedStep,
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return hal.RunWindow(newApp, hal.WindowConfig{
		Title:  "stereo",
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Scale:  scale,
		TPS:    cfg.PollHz(),
	})
}
