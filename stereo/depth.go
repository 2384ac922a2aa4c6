package stereo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DepthRule modulates the depth of each point of a shape as the scene turns.
//
// Depth must be pure: the same (index, baseZ, angle) always yields the same z.
// Bounds returns the closed range Depth can produce for a point over all angles;
// scene validation relies on it.
type DepthRule interface {
	Depth(index int, baseZ, angleRad float64) float64
	Bounds(index int, baseZ float64) (lo, hi float64)
}

// ConstantDepth keeps every point at its base depth.
type ConstantDepth struct{}

func (ConstantDepth) Depth(_ int, baseZ, _ float64) float64        { return baseZ }
func (ConstantDepth) Bounds(_ int, baseZ float64) (lo, hi float64) { return baseZ, baseZ }

// Sinusoid oscillates each point around its base depth:
//
//	z = baseZ + (Amplitude + IndexScale·i) · sin(Frequency·angle + Phase + PhaseStep·i)
//
// PhaseStep 0 moves all points in phase; PhaseStep π/2 puts neighbours in quadrature.
type Sinusoid struct {
	Amplitude  float64
	IndexScale float64
	Phase      float64 // radians
	PhaseStep  float64 // radians per point index
	Frequency  float64 // oscillations per turn; 0 means 1
}

func (s Sinusoid) amplitude(i int) float64 { return s.Amplitude + s.IndexScale*float64(i) }

func (s Sinusoid) Depth(i int, baseZ, angleRad float64) float64 {
	f := s.Frequency
	if f == 0 {
		f = 1
	}
	return baseZ + s.amplitude(i)*math.Sin(f*angleRad+s.Phase+s.PhaseStep*float64(i))
}

// Bounds is NaN when the phase or frequency is not finite, since Depth would
// be NaN at every angle.
func (s Sinusoid) Bounds(i int, baseZ float64) (lo, hi float64) {
	if !finite(s.Phase) || !finite(s.PhaseStep) || !finite(s.Frequency) {
		return math.NaN(), math.NaN()
	}
	a := math.Abs(s.amplitude(i))
	return baseZ - a, baseZ + a
}

// depthFuncSamples is the number of angles DepthFunc.Bounds evaluates per turn.
const depthFuncSamples = 720

// DepthFunc adapts a plain function to DepthRule.
//
// Bounds are found by sampling one full turn, so a function with a narrow spike
// between samples can escape validation. Prefer a rule with analytic bounds when
// one exists. A NaN sample makes both bounds NaN.
type DepthFunc func(index int, baseZ, angleRad float64) float64

func (f DepthFunc) Depth(i int, baseZ, angleRad float64) float64 { return f(i, baseZ, angleRad) }

func (f DepthFunc) Bounds(i int, baseZ float64) (lo, hi float64) {
	zs := make([]float64, depthFuncSamples)
	for k := range zs {
		zs[k] = f(i, baseZ, 2*math.Pi*float64(k)/depthFuncSamples)
	}
	// floats.Min and Max skip NaN past the first element.
	if floats.HasNaN(zs) {
		return math.NaN(), math.NaN()
	}
	return floats.Min(zs), floats.Max(zs)
}
