package stereo

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterSurface is a software Surface drawing into any draw.Image.
//
// Paths are filled with the nonzero rule. Strokes are built from one quad per
// edge plus round joins, all wound the same way so overlaps do not cancel.
type RasterSurface struct {
	dst draw.Image
	z   *vector.Rasterizer

	subpaths [][]Point2D
	closed   []bool

	strokeColor color.RGBA
	fillColor   color.RGBA
	lineWidth   float64
}

// NewRasterSurface returns a surface drawing into dst.
func NewRasterSurface(dst draw.Image) *RasterSurface {
	b := dst.Bounds()
	return &RasterSurface{
		dst:         dst,
		z:           vector.NewRasterizer(b.Dx(), b.Dy()),
		strokeColor: color.RGBA{A: 0xFF},
		fillColor:   color.RGBA{A: 0xFF},
		lineWidth:   1,
	}
}

// Clear paints the whole destination with c.
func (s *RasterSurface) Clear(c color.RGBA) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *RasterSurface) BeginPath() {
	s.subpaths = s.subpaths[:0]
	s.closed = s.closed[:0]
}

func (s *RasterSurface) MoveTo(p Point2D) {
	s.subpaths = append(s.subpaths, []Point2D{p})
	s.closed = append(s.closed, false)
}

func (s *RasterSurface) LineTo(p Point2D) {
	if len(s.subpaths) == 0 {
		s.MoveTo(p)
		return
	}
	last := len(s.subpaths) - 1
	s.subpaths[last] = append(s.subpaths[last], p)
}

func (s *RasterSurface) ClosePath() {
	if len(s.closed) > 0 {
		s.closed[len(s.closed)-1] = true
	}
}

func (s *RasterSurface) SetStrokeColor(c color.RGBA) { s.strokeColor = c }
func (s *RasterSurface) SetFillColor(c color.RGBA)   { s.fillColor = c }
func (s *RasterSurface) SetLineWidth(w float64)      { s.lineWidth = w }

func (s *RasterSurface) Fill() {
	s.reset()
	for _, sp := range s.subpaths {
		if len(sp) < 2 {
			continue
		}
		s.moveTo(sp[0])
		for _, p := range sp[1:] {
			s.lineTo(p)
		}
		s.z.ClosePath()
	}
	s.draw(s.fillColor)
}

func (s *RasterSurface) Stroke() {
	hw := s.lineWidth / 2
	if hw <= 0 {
		return
	}
	s.reset()
	for i, sp := range s.subpaths {
		n := len(sp) - 1
		if s.closed[i] {
			n = len(sp)
		}
		for k := 0; k < n; k++ {
			s.segment(sp[k], sp[(k+1)%len(sp)], hw)
		}
		for _, p := range sp {
			s.disc(p, hw)
		}
	}
	s.draw(s.strokeColor)
}

func (s *RasterSurface) FillCircle(center Point2D, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	s.reset()
	s.disc(center, radius)
	s.draw(c)
}

func (s *RasterSurface) reset() {
	b := s.dst.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *RasterSurface) draw(c color.RGBA) {
	b := s.dst.Bounds()
	s.z.DrawOp = draw.Over
	s.z.Draw(s.dst, b, image.NewUniform(c), image.Point{})
}

func (s *RasterSurface) moveTo(p Point2D) {
	m := s.dst.Bounds().Min
	s.z.MoveTo(float32(p.X)-float32(m.X), float32(p.Y)-float32(m.Y))
}

func (s *RasterSurface) lineTo(p Point2D) {
	m := s.dst.Bounds().Min
	s.z.LineTo(float32(p.X)-float32(m.X), float32(p.Y)-float32(m.Y))
}

// segment adds the quad covering a-b widened by hw on both sides.
func (s *RasterSurface) segment(a, b Point2D, hw float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := Point2D{X: -d.Y / l * hw, Y: d.X / l * hw}
	s.moveTo(a.Add(n))
	s.lineTo(b.Add(n))
	s.lineTo(b.Sub(n))
	s.lineTo(a.Sub(n))
	s.z.ClosePath()
}

// disc adds a polygonal circle, wound like segment's quads.
func (s *RasterSurface) disc(c Point2D, r float64) {
	n := int(2 * math.Pi * r)
	if n < 12 {
		n = 12
	}
	if n > 64 {
		n = 64
	}
	for i := 0; i <= n; i++ {
		t := -2 * math.Pi * float64(i) / float64(n)
		p := Point2D{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
		if i == 0 {
			s.moveTo(p)
			continue
		}
		s.lineTo(p)
	}
	s.z.ClosePath()
}
