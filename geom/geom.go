// Package geom holds the world/screen coordinate types and the affine
// mapping between them. Everything here is stateless; the camera decides
// the scale, this package only applies it.
package geom

import "math"

// Vec2 is a point or displacement: meters in world space, pixels in screen
// space. Which one is clear from context.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WorldToScreen converts a world position (meters) to screen pixels for a
// camera centered at cam with scale ppm (pixels per meter). cw and ch are
// the half extents of the screen in pixels; the camera position lands on
// the screen center.
//
// ppm must be strictly positive. The camera's zoom clamp guarantees that;
// this function does not re-check it.
func WorldToScreen(w, cam Vec2, ppm, cw, ch float64) Vec2 {
	return Vec2{
		X: (w.X-cam.X)*ppm + cw,
		Y: (w.Y-cam.Y)*ppm + ch,
	}
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func ScreenToWorld(s, cam Vec2, ppm, cw, ch float64) Vec2 {
	return Vec2{
		X: (s.X-cw)/ppm + cam.X,
		Y: (s.Y-ch)/ppm + cam.Y,
	}
}
