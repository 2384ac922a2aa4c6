package hal

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// FramebufferImage exposes an RGB565 framebuffer as a draw.Image, so image
// libraries can render straight into it. Writes outside the buffer are dropped.
type FramebufferImage struct {
	fb Framebuffer
}

var _ draw.Image = (*FramebufferImage)(nil)

// NewFramebufferImage wraps fb. Only PixelFormatRGB565 is supported.
func NewFramebufferImage(fb Framebuffer) (*FramebufferImage, error) {
	if fb == nil {
		return nil, fmt.Errorf("nil framebuffer: %w", ErrNotImplemented)
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("pixel format %d: %w", fb.Format(), ErrNotImplemented)
	}
	return &FramebufferImage{fb: fb}, nil
}

func (m *FramebufferImage) ColorModel() color.Model { return color.RGBAModel }

func (m *FramebufferImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.fb.Width(), m.fb.Height())
}

func (m *FramebufferImage) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.fb.Width() || y >= m.fb.Height() {
		return 0, false
	}
	off := y*m.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(m.fb.Buffer()) {
		return 0, false
	}
	return off, true
}

func (m *FramebufferImage) At(x, y int) color.Color { return m.RGBAAt(x, y) }

// RGBAAt returns the opaque color at (x, y), expanded from 565.
func (m *FramebufferImage) RGBAAt(x, y int) color.RGBA {
	off, ok := m.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	buf := m.fb.Buffer()
	r, g, b := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (m *FramebufferImage) Set(x, y int, c color.Color) {
	m.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA stores c, dropping alpha and the low channel bits.
func (m *FramebufferImage) SetRGBA(x, y int, c color.RGBA) {
	off, ok := m.offset(x, y)
	if !ok {
		return
	}
	p := rgb565(c.R, c.G, c.B)
	buf := m.fb.Buffer()
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r5 := (p >> 11) & 0x1F
	g6 := (p >> 5) & 0x3F
	b5 := p & 0x1F
	// Bit replication maps 0x1F/0x3F back to 0xFF exactly.
	return uint8(r5<<3 | r5>>2), uint8(g6<<2 | g6>>4), uint8(b5<<3 | b5>>2)
}
