//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"stereo/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
}

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes or the app quits.
//
// Minimizing the window hides the app; restoring it shows the app again. The
// app is hidden before RunWindow returns.
func RunWindow(newApp func(HAL) (App, error), cfg WindowConfig) error {
	h := newHostHAL(cfg.Width, cfg.Height, nil)
	app, err := newApp(h)
	if err != nil {
		return err
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}

	g := &hostGame{h: h, app: app, kbd: newHostKeyboard()}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(g)
	app.SetVisible(false)
	if errors.Is(err, ebiten.Termination) || errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

type hostGame struct {
	h   *hostHAL
	app App
	kbd *hostKeyboard

	shown   bool
	visible bool

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.app.SetVisible(false)
		return ebiten.Termination
	}
	visible := !ebiten.IsWindowMinimized()
	if !g.shown || visible != g.visible {
		g.shown = true
		g.visible = visible
		g.app.SetVisible(visible)
	}

	g.kbd.poll()
	for drained := false; !drained; {
		select {
		case ev := <-g.kbd.Events():
			if ev.Press {
				g.app.HandleKey(ev.Code)
			}
		default:
			drained = true
		}
	}
	return g.app.Step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
