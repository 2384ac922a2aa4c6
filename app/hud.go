package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"stereo/hal"
	"stereo/internal/buildinfo"
)

var (
	hudText = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xFF}
	hudDim  = color.RGBA{R: 0x90, G: 0x90, B: 0xA0, A: 0xFF}
)

const hudMargin = 4

// hud draws the status line in the top corners.
type hud struct {
	d          *fbDisplayer
	font       tinyfont.Fonter
	fontHeight int16
}

func newHUD(img *hal.FramebufferImage) *hud {
	return &hud{
		d:          &fbDisplayer{img: img},
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
	}
}

func (h *hud) draw(angleDeg float64, paused bool) {
	status := fmt.Sprintf("%5.1f deg", angleDeg)
	if paused {
		status += "  paused"
	}
	h.writeLine(hudMargin, hudMargin, status, hudText)

	id := buildinfo.Short()
	_, w := tinyfont.LineWidth(h.font, id)
	sw, _ := h.d.Size()
	h.writeLine(int(sw)-int(w)-hudMargin, hudMargin, id, hudDim)
}

func (h *hud) writeLine(x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(h.d, h.font, int16(x), int16(y)+h.fontHeight, s, c)
}

// fbDisplayer lets tinyfont draw into the framebuffer.
type fbDisplayer struct {
	img *hal.FramebufferImage
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *fbDisplayer) Display() error { return nil }
