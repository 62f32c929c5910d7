package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"decoherence/camera"
	"decoherence/geom"
	"decoherence/grid"
	"decoherence/player"
)

// FrameInput is everything sampled from the host environment before one
// simulation step.
type FrameInput struct {
	Forward float64 // -1..1, W/S
	Right   float64 // -1..1, D/A
	Aim     geom.Vec2
	HasAim  bool
	// ZoomNotches is the scroll wheel movement this frame; positive zooms
	// in one ZoomStep per notch.
	ZoomNotches float64
}

// Game owns all mutable frame state: the player pose, the camera, and the
// HUD. The frame loop is its single owner; nothing here is shared across
// goroutines.
type Game struct {
	cfg    Config
	player *player.Player
	cam    *camera.Camera
	tiles  grid.Grid
	hud    *HUD

	screenWidth  int
	screenHeight int

	whiteImg *ebiten.Image // 1x1 source for filled polygons
}

func NewGame(cfg Config) (*Game, error) {
	tiles, err := cfg.NewGrid()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		player:       player.New(geom.Vec2{}, cfg.PlayerLength, cfg.PlayerWidth, cfg.PlayerSpeed),
		cam:          camera.New(cfg.BasePPM, cfg.Zoom, cfg.MinZoom, cfg.MaxZoom),
		tiles:        tiles,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
	}
	g.hud = NewHUD(cfg.ScreenWidth, cfg.ScreenHeight, LoadHUDFont())
	return g, nil
}

// advance runs one simulation step: aim, move, follow, zoom, in that
// order. It touches no Ebitengine state, so the whole frame composition is
// testable headlessly.
func (g *Game) advance(dt float64, in FrameInput) {
	if in.HasAim {
		g.player.FaceTowards(in.Aim)
	}
	g.player.Move(in.Forward, in.Right, dt)
	g.cam.Follow(g.player.Pos)
	if in.ZoomNotches != 0 {
		g.cam.ZoomBy(math.Pow(g.cfg.ZoomStep, in.ZoomNotches))
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.advance(1.0/float64(ebiten.TPS()), g.sampleInput())

	if row, col, label, ok := g.hud.HandleKeys(); ok {
		g.runAction(row, col, label)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	ppm := g.cam.PPM()
	cw := float64(g.screenWidth) / 2
	ch := float64(g.screenHeight) / 2

	for _, t := range g.tiles.VisibleTiles(g.cam.Pos, ppm, g.screenWidth, g.screenHeight) {
		pts := make([]geom.Vec2, len(t.Verts))
		for i, v := range t.Verts {
			pts[i] = geom.WorldToScreen(v, g.cam.Pos, ppm, cw, ch)
		}
		g.fillPolygon(screen, pts, ColorTileFill)
		strokePolygon(screen, pts, 2, ColorTileBorder)
	}

	corners := g.player.Corners()
	body := make([]geom.Vec2, len(corners))
	for i, c := range corners {
		body[i] = geom.WorldToScreen(c, g.cam.Pos, ppm, cw, ch)
	}
	g.fillPolygon(screen, body, ColorPlayer)
	strokePolygon(screen, body, 2, ColorPlayerBorder)

	front := g.player.FrontEdge()
	a := geom.WorldToScreen(front[0], g.cam.Pos, ppm, cw, ch)
	b := geom.WorldToScreen(front[1], g.cam.Pos, ppm, cw, ch)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, ColorPlayerFront, false)

	g.hud.Draw(screen, g.player, g.tiles, g.cam)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// fillPolygon fills an arbitrary screen-space polygon by triangulating a
// vector.Path against a 1x1 white image.
func (g *Game) fillPolygon(dst *ebiten.Image, pts []geom.Vec2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	verts, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if g.whiteImg == nil {
		g.whiteImg = ebiten.NewImage(1, 1)
		g.whiteImg.Fill(color.White)
	}

	for i := range verts {
		verts[i].SrcX = 0
		verts[i].SrcY = 0
		verts[i].ColorR = float32(c.R) / 255
		verts[i].ColorG = float32(c.G) / 255
		verts[i].ColorB = float32(c.B) / 255
		verts[i].ColorA = float32(c.A) / 255
	}

	dst.DrawTriangles(verts, indices, g.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

func strokePolygon(dst *ebiten.Image, pts []geom.Vec2, width float32, c color.Color) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, false)
	}
}
