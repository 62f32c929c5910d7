// Package player models the controlled body: an oriented rectangle with a
// fixed size and speed. Only its position and heading change after
// construction, and only through Move and FaceTowards.
package player

import (
	"math"

	"decoherence/geom"
)

// Player is the oriented body. Angle is the heading in radians, 0 along
// +x; it is stored as-is, never wrapped into [0, 2π).
type Player struct {
	Pos    geom.Vec2
	Angle  float64
	Length float64 // front to back, meters
	Width  float64 // side to side, meters
	Speed  float64 // meters per second
}

func New(pos geom.Vec2, length, width, speed float64) *Player {
	return &Player{Pos: pos, Length: length, Width: width, Speed: speed}
}

// Corners returns the rectangle corners in world space, in the order
// front-right, front-left, back-left, back-right. The order fixes the
// polygon winding for the renderer.
func (p *Player) Corners() [4]geom.Vec2 {
	halfL := p.Length / 2
	halfW := p.Width / 2
	local := [4]geom.Vec2{
		{X: halfL, Y: -halfW},
		{X: halfL, Y: halfW},
		{X: -halfL, Y: halfW},
		{X: -halfL, Y: -halfW},
	}

	sin, cos := math.Sincos(p.Angle)
	var out [4]geom.Vec2
	for i, l := range local {
		out[i] = geom.Vec2{
			X: p.Pos.X + l.X*cos - l.Y*sin,
			Y: p.Pos.Y + l.X*sin + l.Y*cos,
		}
	}
	return out
}

// FrontEdge returns the two front corners (front-right, front-left), used
// to draw the facing indicator.
func (p *Player) FrontEdge() [2]geom.Vec2 {
	c := p.Corners()
	return [2]geom.Vec2{c[0], c[1]}
}

// FaceTowards points the body at target. A target equal to the current
// position is a no-op: atan2 of a zero vector is undefined, so the heading
// is kept.
func (p *Player) FaceTowards(target geom.Vec2) {
	dx := target.X - p.Pos.X
	dy := target.Y - p.Pos.Y
	if dx == 0 && dy == 0 {
		return
	}
	p.Angle = math.Atan2(dy, dx)
}

// Move translates the body by the combination of forward and strafe input,
// each in [-1, 1]. The combined direction is normalized before scaling by
// Speed·dt, so diagonal input moves no faster than a single axis. Zero
// input is zero displacement.
//
// Move never touches the heading: aim is driven solely by FaceTowards, so
// the body can strafe while facing an arbitrary point.
func (p *Player) Move(forward, right, dt float64) {
	sin, cos := math.Sincos(p.Angle)
	// Strafe axis is the forward axis rotated +90°: (-sin, cos).
	mx := forward*cos - right*sin
	my := forward*sin + right*cos

	mag := math.Hypot(mx, my)
	if mag == 0 {
		return
	}
	p.Pos.X += mx / mag * p.Speed * dt
	p.Pos.Y += my / mag * p.Speed * dt
}
