// Package stereo renders a stereoscopic pair of a small 3D scene onto a flat surface.
//
// Two slightly offset 2D projections of the same scene are produced, one per eye,
// so that free-viewing the pair gives a depth illusion.
//
// Pipeline (fixed, once per tick):
//
//	Driver → RotationEngine → DepthRule → Rotate → Project → Renderer (left, right) → Surface.
//
// Scenes and viewer geometry are validated once at construction. After that the
// per-frame pass is a total function of (scene, angle, geometry) and has no error
// path. Everything runs on the caller's goroutine; nothing here is safe for
// concurrent use.
package stereo
