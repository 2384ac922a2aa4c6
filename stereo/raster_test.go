package stereo

import (
	"image"
	"image/color"
	"testing"
)

func newTestSurface(w, h int) (*RasterSurface, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	s := NewRasterSurface(img)
	s.Clear(color.RGBA{A: 0xFF})
	return s, img
}

func TestRasterFill(t *testing.T) {
	s, img := newTestSurface(40, 40)
	s.BeginPath()
	s.MoveTo(Point2D{10, 10})
	s.LineTo(Point2D{30, 10})
	s.LineTo(Point2D{30, 30})
	s.LineTo(Point2D{10, 30})
	s.ClosePath()
	s.SetFillColor(ColorBlue)
	s.Fill()

	if got := img.RGBAAt(20, 20); got != ColorBlue {
		t.Fatalf("inside = %v", got)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("outside = %v", got)
	}
}

func TestRasterStroke(t *testing.T) {
	s, img := newTestSurface(40, 40)
	s.BeginPath()
	s.MoveTo(Point2D{10, 10})
	s.LineTo(Point2D{30, 10})
	s.LineTo(Point2D{30, 30})
	s.LineTo(Point2D{10, 30})
	s.ClosePath()
	s.SetLineWidth(4)
	s.SetStrokeColor(ColorRed)
	s.Stroke()

	// Pixel (20,10) straddles the top edge; (10,20) the closing edge.
	for _, p := range []image.Point{{20, 10}, {10, 20}, {30, 20}} {
		if got := img.RGBAAt(p.X, p.Y); got != ColorRed {
			t.Fatalf("edge pixel %v = %v", p, got)
		}
	}
	if got := img.RGBAAt(20, 20); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("outline filled its interior: %v", got)
	}
}

func TestRasterOpenPathStroke(t *testing.T) {
	s, img := newTestSurface(40, 40)
	s.BeginPath()
	s.MoveTo(Point2D{10, 10})
	s.LineTo(Point2D{30, 10})
	s.LineTo(Point2D{30, 30})
	s.SetLineWidth(4)
	s.SetStrokeColor(ColorRed)
	s.Stroke()
	if got := img.RGBAAt(20, 20); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("open path drew its closing edge: %v", got)
	}
}

func TestRasterFillCircle(t *testing.T) {
	s, img := newTestSurface(40, 40)
	s.FillCircle(Point2D{20, 20}, 6, ColorGreen)
	if got := img.RGBAAt(20, 20); got != ColorGreen {
		t.Fatalf("center = %v", got)
	}
	if got := img.RGBAAt(20, 10); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("outside radius = %v", got)
	}
}

func TestRasterFrame(t *testing.T) {
	sc, err := ReferenceScene(refGeometry, Dimensions{Width: 200, Height: 200, Depth: 800}, QuadratureMarkers(200))
	if err != nil {
		t.Fatal(err)
	}
	s, img := newTestSurface(480, 320)
	r := NewRenderer(480, 320, 2, 5)
	r.Frame(s, sc, 0)

	// At angle 0 the panel is flat at z=800: the left eye image of its
	// center sits left of the surface center.
	l, _ := ProjectPoint(Point3D{X: 0, Y: 30, Z: 800}, refGeometry)
	p := l.Add(r.Origin)
	if got := img.RGBAAt(int(p.X), int(p.Y)); got != ColorBlue {
		t.Fatalf("left panel pixel %v = %v", p, got)
	}
}

func TestRecorderReplayMatchesDirect(t *testing.T) {
	r := NewRenderer(40, 40, 2, 3)
	pts := []Point2D{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}

	direct, want := newTestSurface(40, 40)
	r.Draw(direct, pts, Filled(ColorBlue))
	r.DrawMarkers(direct, []Point2D{{0, 15}}, ColorRed)

	var rec Recorder
	r.Draw(&rec, pts, Filled(ColorBlue))
	r.DrawMarkers(&rec, []Point2D{{0, 15}}, ColorRed)
	replayed, got := newTestSurface(40, 40)
	rec.Replay(replayed)

	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("pixel byte %d: got %d want %d", i, got.Pix[i], want.Pix[i])
		}
	}
}
