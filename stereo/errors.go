package stereo

import "errors"

var (
	// ErrInvalidGeometryConfig reports a scene that can place a point at or
	// behind the viewer plane (viewDistance + z <= 0).
	ErrInvalidGeometryConfig = errors.New("invalid geometry config")

	// ErrMalformedShape reports a polygon with fewer than 3 points, an empty
	// marker set, or mismatched coordinate arrays.
	ErrMalformedShape = errors.New("malformed shape")

	// ErrInvalidConfiguration reports a non-positive period or frame interval.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
