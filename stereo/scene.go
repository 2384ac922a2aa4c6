package stereo

import (
	"fmt"
	"image/color"
	"math"
)

// ShapeKind distinguishes polygons from marker sets.
type ShapeKind uint8

const (
	// ShapePolygon is a closed path of at least 3 points.
	ShapePolygon ShapeKind = iota
	// ShapeMarkers is a set of at least 1 point, each drawn as a filled circle.
	ShapeMarkers
)

func (k ShapeKind) String() string {
	if k == ShapeMarkers {
		return "markers"
	}
	return "polygon"
}

// Shape is one element of a scene.
type Shape struct {
	Name   string
	Kind   ShapeKind
	Points []Point3D

	// Style paints polygons. Markers only use Style.Color.
	Style Style

	// Depth modulates point depth before rotation. Nil keeps base depths.
	Depth DepthRule

	// Rotates makes the shape follow the scene angle. A fixed shape is drawn at angle 0.
	Rotates bool
}

// Polygon returns a closed polygon shape.
func Polygon(name string, style Style, pts ...Point3D) Shape {
	return Shape{Name: name, Kind: ShapePolygon, Points: pts, Style: style}
}

// Markers returns a marker set drawn as filled circles of color c.
func Markers(name string, c color.RGBA, pts ...Point3D) Shape {
	return Shape{Name: name, Kind: ShapeMarkers, Points: pts, Style: Filled(c)}
}

// WithDepth returns a copy of s using rule r.
func (s Shape) WithDepth(r DepthRule) Shape { s.Depth = r; return s }

// Rotating returns a copy of s that follows the scene angle.
func (s Shape) Rotating() Shape { s.Rotates = true; return s }

func (s Shape) depthRule() DepthRule {
	if s.Depth == nil {
		return ConstantDepth{}
	}
	return s.Depth
}

// PointsFromArrays zips parallel coordinate arrays into points.
func PointsFromArrays(xs, ys, zs []float64) ([]Point3D, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("coordinate arrays %d/%d/%d: %w", len(xs), len(ys), len(zs), ErrMalformedShape)
	}
	pts := make([]Point3D, len(xs))
	for i := range xs {
		pts[i] = Point3D{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return pts, nil
}

// Scene is a validated, immutable set of shapes seen from a fixed geometry.
type Scene struct {
	geometry ViewerGeometry
	shapes   []Shape
}

// NewScene validates the shapes against g and returns the scene.
//
// Every depth a shape can reach, through its depth rule and through rotation,
// must stay in front of the viewer; otherwise projection would divide by zero
// mid-animation and ErrInvalidGeometryConfig is returned instead.
func NewScene(g ViewerGeometry, shapes ...Shape) (*Scene, error) {
	if !(g.ViewDistance > 0) || math.IsInf(g.ViewDistance, 0) || !finite(g.EyeOffset) {
		return nil, fmt.Errorf("view distance %v: %w", g.ViewDistance, ErrInvalidGeometryConfig)
	}
	s := &Scene{geometry: g, shapes: make([]Shape, 0, len(shapes))}
	for i, sh := range shapes {
		if err := validateShape(g, sh); err != nil {
			return nil, fmt.Errorf("shape %d %q: %w", i, sh.Name, err)
		}
		sh.Points = append([]Point3D(nil), sh.Points...)
		s.shapes = append(s.shapes, sh)
	}
	return s, nil
}

func validateShape(g ViewerGeometry, sh Shape) error {
	switch sh.Kind {
	case ShapePolygon:
		if len(sh.Points) < 3 {
			return fmt.Errorf("polygon with %d points: %w", len(sh.Points), ErrMalformedShape)
		}
	case ShapeMarkers:
		if len(sh.Points) < 1 {
			return fmt.Errorf("empty marker set: %w", ErrMalformedShape)
		}
	default:
		return fmt.Errorf("kind %d: %w", sh.Kind, ErrMalformedShape)
	}
	if !sh.Style.valid() {
		return fmt.Errorf("style %s: %w", sh.Style.Kind, ErrMalformedShape)
	}
	rule := sh.depthRule()
	for i, p := range sh.Points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("point %d (%v, %v): %w", i, p.X, p.Y, ErrMalformedShape)
		}
		lo, hi := rule.Bounds(i, p.Z)
		if !finite(lo) || !finite(hi) {
			return fmt.Errorf("point %d depth range [%v, %v]: %w", i, lo, hi, ErrInvalidGeometryConfig)
		}
		if sh.Rotates {
			lo -= math.Abs(p.X)
		}
		if !g.Visible(lo) {
			return fmt.Errorf("point %d reaches z=%.2f with view distance %.2f: %w",
				i, lo, g.ViewDistance, ErrInvalidGeometryConfig)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Geometry returns the viewer geometry the scene was validated against.
func (s *Scene) Geometry() ViewerGeometry { return s.geometry }

// Len returns the number of shapes.
func (s *Scene) Len() int { return len(s.shapes) }

// Shape returns shape i. Its Points must not be modified.
func (s *Scene) Shape(i int) Shape { return s.shapes[i] }

// Pose writes the 3D points of shape i at the scene angle into dst: depth
// modulation first, then rotation for rotating shapes.
func (s *Scene) Pose(dst []Point3D, i int, angleRad float64) []Point3D {
	sh := s.shapes[i]
	rule := sh.depthRule()
	dst = growPoints3(dst, len(sh.Points))
	for k, p := range sh.Points {
		p.Z = rule.Depth(k, p.Z, angleRad)
		dst[k] = p
	}
	if sh.Rotates {
		Rotate(dst, dst, angleRad)
	}
	return dst
}
