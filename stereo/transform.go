package stereo

import "github.com/go-gl/mathgl/mgl64"

// Rotate turns src about the vertical axis by angleRad and writes the result to
// dst, which is grown if needed and returned. Same length and order as src.
//
// Z is a baseline "into screen" offset rather than a centered depth, so only the
// X extent swings through depth:
//
//	x' = x·cos(a)   y' = y   z' = z − x·sin(a)
//
// At angle 0 the points come back unchanged.
func Rotate(dst, src []Point3D, angleRad float64) []Point3D {
	dst = growPoints3(dst, len(src))
	m := mgl64.Rotate3DY(angleRad)
	for i, p := range src {
		r := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 0})
		dst[i] = Point3D{X: r.X(), Y: p.Y, Z: p.Z + r.Z()}
	}
	return dst
}

// RotateDegrees is Rotate with the angle given in degrees.
func RotateDegrees(dst, src []Point3D, angleDeg float64) []Point3D {
	return Rotate(dst, src, mgl64.DegToRad(angleDeg))
}

func growPoints3(p []Point3D, n int) []Point3D {
	if cap(p) < n {
		return make([]Point3D, n)
	}
	return p[:n]
}

func growPoints2(p []Point2D, n int) []Point2D {
	if cap(p) < n {
		return make([]Point2D, n)
	}
	return p[:n]
}
