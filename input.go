package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"decoherence/geom"
)

// sampleInput polls the keyboard, mouse and wheel into a FrameInput. WASD
// drives forward/strafe, the cursor is converted to a world-space aim
// point, and the wheel supplies zoom notches.
func (g *Game) sampleInput() FrameInput {
	var in FrameInput

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Right++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Right--
	}

	mx, my := ebiten.CursorPosition()
	cw := float64(g.screenWidth) / 2
	ch := float64(g.screenHeight) / 2
	in.Aim = geom.ScreenToWorld(geom.Vec2{X: float64(mx), Y: float64(my)}, g.cam.Pos, g.cam.PPM(), cw, ch)
	in.HasAim = true

	_, dy := ebiten.Wheel()
	in.ZoomNotches = dy

	return in
}
