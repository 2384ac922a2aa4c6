package stereo

import "image/color"

// StyleKind selects how a polygon is painted.
type StyleKind uint8

const (
	styleUnset StyleKind = iota
	StyleOutline
	StyleFilled
)

func (k StyleKind) String() string {
	switch k {
	case StyleOutline:
		return "outline"
	case StyleFilled:
		return "filled"
	default:
		return "unset"
	}
}

// Style is exactly one of Outline or Filled, each with a color.
type Style struct {
	Kind  StyleKind
	Color color.RGBA
}

// Outline strokes the closed path without filling it.
func Outline(c color.RGBA) Style { return Style{Kind: StyleOutline, Color: c} }

// Filled fills the closed path without stroking it.
func Filled(c color.RGBA) Style { return Style{Kind: StyleFilled, Color: c} }

func (s Style) valid() bool { return s.Kind == StyleOutline || s.Kind == StyleFilled }
