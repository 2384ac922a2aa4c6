package stereo

import (
	"image/color"
	"math"
)

// Dimensions sizes the reference shapes, in display points.
type Dimensions struct {
	Width, Height, Depth float64
}

// MarkerMotion tunes the oscillating markers of the reference scene.
type MarkerMotion struct {
	Amplitude  float64
	IndexScale float64
	PhaseStep  float64 // radians between consecutive markers
}

var (
	ColorRed   = color.RGBA{R: 0xFF, A: 0xFF}
	ColorBlue  = color.RGBA{B: 0xFF, A: 0xFF}
	ColorGreen = color.RGBA{G: 0xC0, A: 0xFF}
)

// ReferenceScene returns the standard demo: a fixed red outline rectangle, the
// same rectangle filled blue and turning about the vertical axis, and two
// markers on that axis whose depth oscillates.
func ReferenceScene(g ViewerGeometry, d Dimensions, m MarkerMotion) (*Scene, error) {
	hw, hh := d.Width/2, d.Height/2
	rect := []Point3D{
		{X: -hw, Y: -hh, Z: d.Depth},
		{X: hw, Y: -hh, Z: d.Depth},
		{X: hw, Y: hh, Z: d.Depth},
		{X: -hw, Y: hh, Z: d.Depth},
	}
	axis := Markers("axis", ColorGreen,
		Point3D{X: 0, Y: hh, Z: d.Depth},
		Point3D{X: 0, Y: -hh, Z: d.Depth},
	).WithDepth(Sinusoid{
		Amplitude:  m.Amplitude,
		IndexScale: m.IndexScale,
		PhaseStep:  m.PhaseStep,
	})
	return NewScene(g,
		Polygon("frame", Outline(ColorRed), rect...),
		Polygon("panel", Filled(ColorBlue), rect...).Rotating(),
		axis,
	)
}

// QuadratureMarkers is a MarkerMotion whose markers swing 90° apart.
func QuadratureMarkers(amplitude float64) MarkerMotion {
	return MarkerMotion{Amplitude: amplitude, PhaseStep: math.Pi / 2}
}
