package stereo

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Renderer turns projected points into Surface commands.
//
// Create it once and reuse it; scratch buffers are kept between frames.
type Renderer struct {
	LineWidth    float64
	MarkerRadius float64

	// Origin is added to every point before drawing, moving screen-centered
	// coordinates to the surface's corner origin (typically its midpoint).
	Origin Point2D

	pose        []Point3D
	left, right []Point2D
	screen      []Point2D
}

// NewRenderer returns a renderer for a surface of the given size.
func NewRenderer(width, height int, lineWidth, markerRadius float64) *Renderer {
	return &Renderer{
		LineWidth:    lineWidth,
		MarkerRadius: markerRadius,
		Origin:       Point2D{X: float64(width) / 2, Y: float64(height) / 2},
	}
}

func (r *Renderer) toScreen(pts []Point2D) []Point2D {
	r.screen = growPoints2(r.screen, len(pts))
	for i, p := range pts {
		r.screen[i] = p.Add(r.Origin)
	}
	return r.screen
}

// Draw paints one closed polygon.
func (r *Renderer) Draw(s Surface, pts []Point2D, style Style) {
	if len(pts) == 0 {
		return
	}
	pts = r.toScreen(pts)
	s.BeginPath()
	s.MoveTo(pts[0])
	for _, p := range pts[1:] {
		s.LineTo(p)
	}
	s.ClosePath()
	switch style.Kind {
	case StyleOutline:
		s.SetLineWidth(r.LineWidth)
		s.SetStrokeColor(style.Color)
		s.Stroke()
	case StyleFilled:
		s.SetFillColor(style.Color)
		s.Fill()
	}
}

// DrawMarkers paints a filled circle of MarkerRadius at every point.
func (r *Renderer) DrawMarkers(s Surface, pts []Point2D, c color.RGBA) {
	for _, p := range r.toScreen(pts) {
		s.FillCircle(p, r.MarkerRadius, c)
	}
}

// Frame draws every shape of sc at angleDeg, once per eye, left first.
func (r *Renderer) Frame(s Surface, sc *Scene, angleDeg float64) {
	a := mgl64.DegToRad(angleDeg)
	g := sc.Geometry()
	for i := 0; i < sc.Len(); i++ {
		sh := sc.Shape(i)
		r.pose = sc.Pose(r.pose, i, a)
		r.left, r.right = Project(r.left, r.right, r.pose, g)
		for _, eye := range [2][]Point2D{r.left, r.right} {
			if sh.Kind == ShapeMarkers {
				r.DrawMarkers(s, eye, sh.Style.Color)
				continue
			}
			r.Draw(s, eye, sh.Style)
		}
	}
}
