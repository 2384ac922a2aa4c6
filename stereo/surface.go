package stereo

import (
	"fmt"
	"image/color"
)

// Surface receives drawing commands. The renderer holds it only for the
// duration of one call.
type Surface interface {
	BeginPath()
	MoveTo(p Point2D)
	LineTo(p Point2D)
	ClosePath()
	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetLineWidth(w float64)
	Stroke()
	Fill()
	FillCircle(center Point2D, radius float64, c color.RGBA)
}

// Op identifies a recorded Surface call.
type Op uint8

const (
	OpBeginPath Op = iota + 1
	OpMoveTo
	OpLineTo
	OpClosePath
	OpSetStrokeColor
	OpSetFillColor
	OpSetLineWidth
	OpStroke
	OpFill
	OpFillCircle
)

func (o Op) String() string {
	switch o {
	case OpBeginPath:
		return "begin"
	case OpMoveTo:
		return "move"
	case OpLineTo:
		return "line"
	case OpClosePath:
		return "close"
	case OpSetStrokeColor:
		return "stroke-color"
	case OpSetFillColor:
		return "fill-color"
	case OpSetLineWidth:
		return "line-width"
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpFillCircle:
		return "fill-circle"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Command is one recorded Surface call. Only the fields relevant to Op are set.
type Command struct {
	Op    Op
	P     Point2D
	Color color.RGBA
	Value float64 // line width or circle radius
}

// Recorder is a Surface that keeps the command stream.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) add(c Command) { r.Commands = append(r.Commands, c) }

func (r *Recorder) BeginPath()                  { r.add(Command{Op: OpBeginPath}) }
func (r *Recorder) MoveTo(p Point2D)            { r.add(Command{Op: OpMoveTo, P: p}) }
func (r *Recorder) LineTo(p Point2D)            { r.add(Command{Op: OpLineTo, P: p}) }
func (r *Recorder) ClosePath()                  { r.add(Command{Op: OpClosePath}) }
func (r *Recorder) SetStrokeColor(c color.RGBA) { r.add(Command{Op: OpSetStrokeColor, Color: c}) }
func (r *Recorder) SetFillColor(c color.RGBA)   { r.add(Command{Op: OpSetFillColor, Color: c}) }
func (r *Recorder) SetLineWidth(w float64)      { r.add(Command{Op: OpSetLineWidth, Value: w}) }
func (r *Recorder) Stroke()                     { r.add(Command{Op: OpStroke}) }
func (r *Recorder) Fill()                       { r.add(Command{Op: OpFill}) }

func (r *Recorder) FillCircle(center Point2D, radius float64, c color.RGBA) {
	r.add(Command{Op: OpFillCircle, P: center, Color: c, Value: radius})
}

// Reset drops recorded commands and keeps the buffer.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many commands with op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay issues the recorded commands to s in order.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpBeginPath:
			s.BeginPath()
		case OpMoveTo:
			s.MoveTo(c.P)
		case OpLineTo:
			s.LineTo(c.P)
		case OpClosePath:
			s.ClosePath()
		case OpSetStrokeColor:
			s.SetStrokeColor(c.Color)
		case OpSetFillColor:
			s.SetFillColor(c.Color)
		case OpSetLineWidth:
			s.SetLineWidth(c.Value)
		case OpStroke:
			s.Stroke()
		case OpFill:
			s.Fill()
		case OpFillCircle:
			s.FillCircle(c.P, c.Value, c.Color)
		}
	}
}
