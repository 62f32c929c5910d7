package main

import (
	"math"
	"testing"

	"decoherence/camera"
	"decoherence/geom"
	"decoherence/player"
)

// newTestGame builds a Game without the HUD or any Ebitengine resources so
// the frame composition can run headlessly.
func newTestGame(t *testing.T, variant string) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Grid = variant
	tiles, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	return &Game{
		cfg:          cfg,
		player:       player.New(geom.Vec2{}, cfg.PlayerLength, cfg.PlayerWidth, cfg.PlayerSpeed),
		cam:          camera.New(cfg.BasePPM, cfg.Zoom, cfg.MinZoom, cfg.MaxZoom),
		tiles:        tiles,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
	}
}

func TestAdvanceFrameOrder(t *testing.T) {
	g := newTestGame(t, "hex")

	// Aim resolves before movement: facing +x, one second forward covers
	// speed meters, and the camera lands exactly on the body.
	g.advance(1.0, FrameInput{Forward: 1, Aim: geom.Vec2{X: 10}, HasAim: true})

	if math.Abs(g.player.Pos.X-1.5) > 1e-9 || math.Abs(g.player.Pos.Y) > 1e-9 {
		t.Errorf("player at %v, want (1.5, 0)", g.player.Pos)
	}
	if g.cam.Pos != g.player.Pos {
		t.Errorf("camera at %v, player at %v", g.cam.Pos, g.player.Pos)
	}
}

func TestAdvanceAimAtOwnPositionKeepsHeading(t *testing.T) {
	g := newTestGame(t, "hex")
	g.player.Angle = 1.25

	g.advance(0.016, FrameInput{Aim: g.player.Pos, HasAim: true})
	if g.player.Angle != 1.25 {
		t.Errorf("heading changed to %v", g.player.Angle)
	}
}

func TestAdvanceZoomClamped(t *testing.T) {
	g := newTestGame(t, "square")

	for i := 0; i < 200; i++ {
		g.advance(0.016, FrameInput{ZoomNotches: 1})
	}
	if g.cam.Zoom != g.cfg.MaxZoom {
		t.Errorf("zoom = %v after zooming in, want %v", g.cam.Zoom, g.cfg.MaxZoom)
	}

	for i := 0; i < 400; i++ {
		g.advance(0.016, FrameInput{ZoomNotches: -1})
	}
	if g.cam.Zoom != g.cfg.MinZoom {
		t.Errorf("zoom = %v after zooming out, want %v", g.cam.Zoom, g.cfg.MinZoom)
	}
}

func TestAdvanceVisibleTilesFollowPlayer(t *testing.T) {
	g := newTestGame(t, "square")

	// Walk far enough that the origin tile leaves the viewport.
	for i := 0; i < 100; i++ {
		g.advance(1.0, FrameInput{Forward: 1, Aim: geom.Vec2{X: 1e6}, HasAim: true})
	}

	tiles := g.tiles.VisibleTiles(g.cam.Pos, g.cam.PPM(), g.screenWidth, g.screenHeight)
	foundCurrent := false
	for _, tile := range tiles {
		if tile.Col == 0 && tile.Row == 0 {
			t.Fatal("origin tile still enumerated 150 m away")
		}
		if tile.Center.Sub(g.player.Pos).Len() < 1 {
			foundCurrent = true
		}
	}
	if !foundCurrent {
		t.Error("no tile near the player's position")
	}
}

func TestRunActionUpdatesStats(t *testing.T) {
	g := newTestGame(t, "hex")
	g.hud = &HUD{Health: 1, Stamina: 1, Focus: 1, activeRow: -1, activeCol: -1}
	g.cfg.Actions = map[string]string{"1": "health = health - 0.25"}

	g.runAction(0, 0, "1")
	if g.hud.Health != 0.75 {
		t.Errorf("health = %v, want 0.75", g.hud.Health)
	}

	// An unbound slot is a no-op.
	g.runAction(0, 1, "2")
	if g.hud.Health != 0.75 || g.hud.Stamina != 1 {
		t.Errorf("unbound slot changed stats: hp %v st %v", g.hud.Health, g.hud.Stamina)
	}
}

func TestRunActionClampsStats(t *testing.T) {
	g := newTestGame(t, "hex")
	g.hud = &HUD{Health: 1, Stamina: 1, Focus: 1, activeRow: -1, activeCol: -1}
	g.cfg.Actions = map[string]string{
		"!": "health = 5.0",
		"@": "focus = -2.0",
	}

	g.runAction(1, 0, "!")
	if g.hud.Health != 1 {
		t.Errorf("health = %v, want clamp to 1", g.hud.Health)
	}
	g.runAction(1, 1, "@")
	if g.hud.Focus != 0 {
		t.Errorf("focus = %v, want clamp to 0", g.hud.Focus)
	}
}
