// Package camera tracks the followed body and owns the zoom factor. The
// effective scale used everywhere is BasePPM·Zoom; the clamp here is what
// keeps the coordinate mapper's ppm>0 precondition true.
package camera

import "decoherence/geom"

type Camera struct {
	Pos     geom.Vec2
	Zoom    float64
	BasePPM float64 // pixels per meter at zoom 1.0
	MinZoom float64
	MaxZoom float64
}

func New(basePPM, zoom, minZoom, maxZoom float64) *Camera {
	c := &Camera{BasePPM: basePPM, Zoom: zoom, MinZoom: minZoom, MaxZoom: maxZoom}
	c.clamp()
	return c
}

// Follow hard-locks the camera onto pos. No smoothing or lag.
func (c *Camera) Follow(pos geom.Vec2) {
	c.Pos = pos
}

// ZoomBy multiplies the zoom factor: factor>1 zooms in, factor<1 out. The
// clamp is re-applied on every change, not just at construction.
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom *= factor
	c.clamp()
}

// PPM returns the effective pixels-per-meter scale.
func (c *Camera) PPM() float64 {
	return c.BasePPM * c.Zoom
}

func (c *Camera) clamp() {
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}
