package stereo

import (
	"fmt"
	"math"
)

// ViewerGeometry holds the fixed viewing constants, in display points.
type ViewerGeometry struct {
	// EyeOffset is half the interocular distance.
	EyeOffset float64
	// ViewDistance is the assumed eye-to-screen distance.
	ViewDistance float64
}

// NewViewerGeometry derives the geometry from a pixel density and two lengths in inches.
func NewViewerGeometry(pointsPerInch, eyeOffsetInches, viewDistanceInches float64) (ViewerGeometry, error) {
	switch {
	case !(pointsPerInch > 0) || math.IsInf(pointsPerInch, 0):
		return ViewerGeometry{}, fmt.Errorf("points per inch %v: %w", pointsPerInch, ErrInvalidConfiguration)
	case !(eyeOffsetInches >= 0) || math.IsInf(eyeOffsetInches, 0):
		return ViewerGeometry{}, fmt.Errorf("eye offset %v in: %w", eyeOffsetInches, ErrInvalidConfiguration)
	case !(viewDistanceInches > 0) || math.IsInf(viewDistanceInches, 0):
		return ViewerGeometry{}, fmt.Errorf("view distance %v in: %w", viewDistanceInches, ErrInvalidConfiguration)
	}
	return ViewerGeometry{
		EyeOffset:    eyeOffsetInches * pointsPerInch,
		ViewDistance: viewDistanceInches * pointsPerInch,
	}, nil
}

// Visible reports whether a point at depth z stays in front of the viewer.
// NaN is never visible.
func (g ViewerGeometry) Visible(z float64) bool { return g.ViewDistance+z > 0 }

// ProjectPoint returns the left and right eye images of p.
//
// Both eyes share the projected Y: there is no vertical parallax.
func ProjectPoint(p Point3D, g ViewerGeometry) (left, right Point2D) {
	denom := g.ViewDistance + p.Z
	y := p.Y * g.ViewDistance / denom
	left = Point2D{X: p.X - p.Z*(g.EyeOffset+p.X)/denom, Y: y}
	right = Point2D{X: p.X + p.Z*(g.EyeOffset-p.X)/denom, Y: y}
	return left, right
}

// Project writes the per-eye projections of pts into left and right, growing
// them as needed. Output is screen-centered and matches pts in length and order.
//
// Callers must have validated the depths (see NewScene); a point with
// ViewDistance+Z == 0 divides by zero.
func Project(left, right []Point2D, pts []Point3D, g ViewerGeometry) ([]Point2D, []Point2D) {
	left = growPoints2(left, len(pts))
	right = growPoints2(right, len(pts))
	for i, p := range pts {
		left[i], right[i] = ProjectPoint(p, g)
	}
	return left, right
}
