package stereo

// Point3D is a point in display-point units.
//
// The origin is the screen center and Z grows into the screen, away from the viewer.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a projected point.
//
// Projection output is screen-centered; the renderer translates it to the
// surface origin.
type Point2D struct {
	X, Y float64
}

func (p Point2D) Add(o Point2D) Point2D { return Point2D{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point2D) Sub(o Point2D) Point2D { return Point2D{X: p.X - o.X, Y: p.Y - o.Y} }
