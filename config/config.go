// Package config holds the startup configuration of the stereo renderer.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"stereo/stereo"
)

// Config groups every tunable constant. All lengths are display points unless
// the field name says inches.
type Config struct {
	// FrameInterval is the nominal time between ticks, in seconds.
	FrameInterval float64 `toml:"frame_interval"`
	// RotationPeriod is the time for one full turn, in seconds.
	RotationPeriod float64 `toml:"rotation_period"`

	Shape   Shape   `toml:"shape"`
	Viewer  Viewer  `toml:"viewer"`
	Markers Markers `toml:"markers"`
	Display Display `toml:"display"`
}

type Shape struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Depth  float64 `toml:"depth"`
}

// Viewer describes the device and the viewer's head.
type Viewer struct {
	PointsPerInch      float64 `toml:"points_per_inch"`
	EyeOffsetInches    float64 `toml:"eye_offset_inches"`
	ViewDistanceInches float64 `toml:"view_distance_inches"`
}

type Markers struct {
	Radius     float64 `toml:"radius"`
	Amplitude  float64 `toml:"amplitude"`
	IndexScale float64 `toml:"index_scale"`
	// PhaseStep is the phase between consecutive markers, in degrees.
	PhaseStep float64 `toml:"phase_step"`
}

type Display struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	LineWidth float64 `toml:"line_width"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		FrameInterval:  0.02,
		RotationPeriod: 4,
		Shape:          Shape{Width: 200, Height: 200, Depth: 800},
		Viewer: Viewer{
			PointsPerInch:      163, // iPhone 6S class density
			EyeOffsetInches:    1.2,
			ViewDistanceInches: 8,
		},
		Markers: Markers{Radius: 5, Amplitude: 200, PhaseStep: 90},
		Display: Display{Width: 480, Height: 320, LineWidth: 2},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.decode(b); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse is Load for in-memory TOML.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(b); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(b []byte) error {
	d := toml.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	return d.Decode(c)
}

// Validate reports the first non-positive or non-finite setting.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"frame_interval", c.FrameInterval},
		{"rotation_period", c.RotationPeriod},
		{"shape.width", c.Shape.Width},
		{"shape.height", c.Shape.Height},
		{"viewer.points_per_inch", c.Viewer.PointsPerInch},
		{"viewer.view_distance_inches", c.Viewer.ViewDistanceInches},
		{"markers.radius", c.Markers.Radius},
		{"display.width", float64(c.Display.Width)},
		{"display.height", float64(c.Display.Height)},
		{"display.line_width", c.Display.LineWidth},
	}
	for _, ck := range checks {
		if !(ck.v > 0) || math.IsInf(ck.v, 0) {
			return fmt.Errorf("%s = %v: %w", ck.name, ck.v, stereo.ErrInvalidConfiguration)
		}
	}
	if !(c.Viewer.EyeOffsetInches >= 0) || math.IsInf(c.Viewer.EyeOffsetInches, 0) {
		return fmt.Errorf("viewer.eye_offset_inches = %v: %w", c.Viewer.EyeOffsetInches, stereo.ErrInvalidConfiguration)
	}

	// Any sign is fine here; the scene checks the reachable depths.
	finite := []struct {
		name string
		v    float64
	}{
		{"shape.depth", c.Shape.Depth},
		{"markers.amplitude", c.Markers.Amplitude},
		{"markers.index_scale", c.Markers.IndexScale},
		{"markers.phase_step", c.Markers.PhaseStep},
	}
	for _, ck := range finite {
		if !isFinite(ck.v) {
			return fmt.Errorf("%s = %v: %w", ck.name, ck.v, stereo.ErrInvalidConfiguration)
		}
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Interval returns FrameInterval as a duration.
func (c Config) Interval() time.Duration { return seconds(c.FrameInterval) }

// Period returns RotationPeriod as a duration.
func (c Config) Period() time.Duration { return seconds(c.RotationPeriod) }

func seconds(s float64) time.Duration { return time.Duration(math.Round(s * float64(time.Second))) }

// Geometry derives the viewer geometry.
func (c Config) Geometry() (stereo.ViewerGeometry, error) {
	return stereo.NewViewerGeometry(c.Viewer.PointsPerInch, c.Viewer.EyeOffsetInches, c.Viewer.ViewDistanceInches)
}

// Dimensions returns the reference shape size.
func (c Config) Dimensions() stereo.Dimensions {
	return stereo.Dimensions{Width: c.Shape.Width, Height: c.Shape.Height, Depth: c.Shape.Depth}
}

// MarkerMotion returns the marker oscillation with the phase step in radians.
func (c Config) MarkerMotion() stereo.MarkerMotion {
	return stereo.MarkerMotion{
		Amplitude:  c.Markers.Amplitude,
		IndexScale: c.Markers.IndexScale,
		PhaseStep:  c.Markers.PhaseStep * math.Pi / 180,
	}
}

// PollHz is the host loop rate: twice the frame rate, so a tick is never
// more than half an interval late.
func (c Config) PollHz() int {
	return int(math.Ceil(2/c.FrameInterval - 1e-9))
}
