// Package app wires the stereo renderer to a host HAL.
package app

import (
	"fmt"
	"image/color"

	"stereo/config"
	"stereo/hal"
	"stereo/internal/buildinfo"
	"stereo/stereo"
)

var background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// App renders the reference scene as a stereo pair and animates it while the
// view is visible.
type App struct {
	log hal.Logger
	fb  hal.Framebuffer
	cfg config.Config

	scene    *stereo.Scene
	engine   *stereo.RotationEngine
	renderer *stereo.Renderer
	surface  *stereo.RasterSurface
	driver   *stereo.Driver
	hud      *hud

	visible bool
	paused  bool
	quit    bool
	stop    func()
	err     error
}

var _ hal.App = (*App)(nil)

// New validates cfg and builds the scene, renderer and driver. Nothing is
// drawn until the app becomes visible.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}
	scene, err := stereo.ReferenceScene(g, cfg.Dimensions(), cfg.MarkerMotion())
	if err != nil {
		return nil, err
	}
	engine, err := stereo.NewRotationEngine(cfg.Period())
	if err != nil {
		return nil, err
	}

	fb := h.Display().Framebuffer()
	img, err := hal.NewFramebufferImage(fb)
	if err != nil {
		return nil, err
	}

	a := &App{
		log:      h.Logger(),
		fb:       fb,
		cfg:      cfg,
		scene:    scene,
		engine:   engine,
		renderer: stereo.NewRenderer(fb.Width(), fb.Height(), cfg.Display.LineWidth, cfg.Markers.Radius),
		surface:  stereo.NewRasterSurface(img),
		hud:      newHUD(img),
	}
	a.driver, err = stereo.NewDriver(engine, h.Clock(), cfg.Interval(), a.render)
	if err != nil {
		return nil, err
	}

	a.logf("stereo: %s, %dx%d, eye offset %.1fpt, view distance %.1fpt, frame %v, period %v",
		buildinfo.Full(), fb.Width(), fb.Height(), g.EyeOffset, g.ViewDistance, cfg.Interval(), cfg.Period())
	return a, nil
}

// Step polls the driver. It returns hal.ErrQuit once a quit key was pressed,
// or the first presentation error.
func (a *App) Step() error {
	if a.quit {
		return hal.ErrQuit
	}
	a.driver.Step()
	if err := a.err; err != nil {
		a.err = nil
		return err
	}
	return nil
}

// SetVisible starts the animation when the view appears and stops it when the
// view disappears.
func (a *App) SetVisible(visible bool) {
	if visible == a.visible {
		return
	}
	a.visible = visible
	if !visible {
		a.halt()
		a.logf("stereo: hidden after %d frames", a.driver.Frames())
		return
	}
	a.logf("stereo: visible")
	if !a.paused {
		a.resume()
	}
	a.render(a.engine.Angle())
}

// HandleKey handles escape (quit), space (pause) and reset.
func (a *App) HandleKey(k hal.KeyCode) {
	switch k {
	case hal.KeyEscape:
		a.quit = true
	case hal.KeySpace:
		a.paused = !a.paused
		if a.paused {
			a.halt()
			a.logf("stereo: paused at %.1f°", a.engine.Angle())
		} else if a.visible {
			a.resume()
			a.logf("stereo: resumed")
		}
		if a.visible {
			a.render(a.engine.Angle())
		}
	case hal.KeyReset:
		a.engine.Reset(0)
		if a.visible {
			a.render(a.engine.Angle())
		}
	}
}

// Angle returns the current rotation angle in degrees.
func (a *App) Angle() float64 { return a.engine.Angle() }

// Frames returns the number of animation ticks rendered.
func (a *App) Frames() uint64 { return a.driver.Frames() }

// Running reports whether the animation is ticking.
func (a *App) Running() bool { return a.driver.State() == stereo.Running }

func (a *App) resume() {
	a.stop = a.driver.Start()
}

func (a *App) halt() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
}

func (a *App) render(angleDeg float64) {
	a.surface.Clear(background)
	a.renderer.Frame(a.surface, a.scene, angleDeg)
	a.hud.draw(angleDeg, a.paused)
	if err := a.fb.Present(); err != nil && a.err == nil {
		a.err = fmt.Errorf("present: %w", err)
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
