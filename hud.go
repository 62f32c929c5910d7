package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"decoherence/camera"
	"decoherence/geom"
	"decoherence/grid"
	"decoherence/player"
)

const (
	panelSize       = 160
	actionBarHeight = 160
	actionBarCols   = 12
	actionBarRows   = 2
	actionCellSize  = 80

	minimapRadius      = 15.0 // meters around the camera
	minimapInnerMargin = 8

	cornerAccentSize = 8
)

// Action bar key rows. Shift selects the bottom row.
var actionKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0, ebiten.KeyMinus, ebiten.KeyEqual,
}

var topRowLabels = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}
var bottomRowLabels = []string{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+"}

// HUD is the retro computing-style overlay: minimap, stat bars, a 12x2
// action bar, an info readout, and a CRT scanline pass. It holds the only
// HUD state there is: stat values and the active action slot.
type HUD struct {
	face font.Face

	minimapRect   image.Rectangle
	statsRect     image.Rectangle
	actionBarRect image.Rectangle
	infoRect      image.Rectangle
	mapArea       image.Rectangle

	Health  float64
	Stamina float64
	Focus   float64

	activeRow int // -1 when no slot selected
	activeCol int

	mapLayer  *ebiten.Image // clipped minimap drawing surface
	scanlines *ebiten.Image // built once, blitted every frame
}

func NewHUD(screenW, screenH int, face font.Face) *HUD {
	h := &HUD{
		face:      face,
		Health:    1.0,
		Stamina:   1.0,
		Focus:     1.0,
		activeRow: -1,
		activeCol: -1,
	}

	barWidth := actionBarCols * actionCellSize
	h.minimapRect = image.Rect(0, 0, panelSize, panelSize)
	h.statsRect = image.Rect(0, screenH-panelSize, panelSize, screenH)
	h.actionBarRect = image.Rect(panelSize, screenH-actionBarHeight, panelSize+barWidth, screenH)
	h.infoRect = image.Rect(screenW-panelSize, screenH-panelSize, screenW, screenH)

	h.mapArea = image.Rect(
		h.minimapRect.Min.X+minimapInnerMargin,
		h.minimapRect.Min.Y+minimapInnerMargin+12,
		h.minimapRect.Max.X-minimapInnerMargin,
		h.minimapRect.Max.Y-minimapInnerMargin,
	)
	h.mapLayer = ebiten.NewImage(h.mapArea.Dx(), h.mapArea.Dy())

	h.scanlines = ebiten.NewImage(screenW, screenH)
	for y := 0; y < screenH; y += 3 {
		vector.StrokeLine(h.scanlines, 0, float32(y), float32(screenW), float32(y), 1, color.RGBA{0, 0, 0, 20}, false)
	}

	return h
}

// HandleKeys reports an action bar slot activated this frame, if any, and
// marks it active. Shift held selects the bottom row.
func (h *HUD) HandleKeys() (row, col int, label string, ok bool) {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i, k := range actionKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		row = 0
		label = topRowLabels[i]
		if shift {
			row = 1
			label = bottomRowLabels[i]
		}
		h.activeRow, h.activeCol = row, i
		return row, i, label, true
	}
	return 0, 0, "", false
}

func (h *HUD) Draw(screen *ebiten.Image, p *player.Player, tiles grid.Grid, cam *camera.Camera) {
	h.drawMinimap(screen, p, tiles, cam.Pos)
	h.drawStatsPanel(screen)
	h.drawActionBar(screen)
	h.drawInfoPanel(screen, p, cam.Zoom)

	screen.DrawImage(h.scanlines, nil)
}

func (h *HUD) drawMinimap(screen *ebiten.Image, p *player.Player, tiles grid.Grid, camPos geom.Vec2) {
	fillRect(screen, h.minimapRect, ColorPanelBG)
	DrawTextLines(screen, h.face, "SCAN", h.minimapRect.Min.X+4, h.minimapRect.Min.Y+2, ColorOrange)

	h.mapLayer.Fill(color.RGBA{4, 4, 8, 255})

	mw := h.mapArea.Dx()
	mh := h.mapArea.Dy()
	scale := math.Min(float64(mw), float64(mh)) / (2 * minimapRadius)

	// Synthetic viewport sized to the scan radius. The grid over-generates
	// past the square; the radius check trims it to the circle.
	for _, t := range tiles.VisibleTiles(camPos, scale, mw, mh) {
		dx := t.Center.X - camPos.X
		dy := t.Center.Y - camPos.Y
		if math.Hypot(dx, dy) > minimapRadius {
			continue
		}
		px := int(dx*scale) + mw/2
		py := int(dy*scale) + mh/2
		if px >= 0 && px < mw && py >= 0 && py < mh {
			vector.DrawFilledRect(h.mapLayer, float32(px), float32(py), 1, 1, ColorCyanDark, false)
		}
	}

	// Player dot and facing tick.
	px := int((p.Pos.X-camPos.X)*scale) + mw/2
	py := int((p.Pos.Y-camPos.Y)*scale) + mh/2
	if px >= 0 && px < mw && py >= 0 && py < mh {
		vector.DrawFilledCircle(h.mapLayer, float32(px), float32(py), 2, ColorOrange, false)
		dirX := float32(px) + 4*float32(math.Cos(p.Angle))
		dirY := float32(py) + 4*float32(math.Sin(p.Angle))
		vector.StrokeLine(h.mapLayer, float32(px), float32(py), dirX, dirY, 1, ColorOrange, false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.mapArea.Min.X), float64(h.mapArea.Min.Y))
	screen.DrawImage(h.mapLayer, op)

	strokeRect(screen, h.minimapRect, 2, ColorCyan)
	drawCornerAccents(screen, h.minimapRect)
}

func (h *HUD) drawStatsPanel(screen *ebiten.Image) {
	fillRect(screen, h.statsRect, ColorPanelBG)
	DrawTextLines(screen, h.face, "STATUS", h.statsRect.Min.X+4, h.statsRect.Min.Y+2, ColorOrange)

	barX := h.statsRect.Min.X + 10
	barWidth := h.statsRect.Dx() - 20
	const barSpacing = 40

	h.drawStatBar(screen, barX, h.statsRect.Min.Y+25, barWidth, "HP", h.Health, ColorOrange, ColorOrangeDim)
	h.drawStatBar(screen, barX, h.statsRect.Min.Y+25+barSpacing, barWidth, "ST", h.Stamina, ColorCyan, ColorCyanDim)
	h.drawStatBar(screen, barX, h.statsRect.Min.Y+25+2*barSpacing, barWidth, "FC", h.Focus, ColorPurple, ColorPurpleDim)

	strokeRect(screen, h.statsRect, 2, ColorCyan)
	drawCornerAccents(screen, h.statsRect)
}

// drawStatBar renders one labeled progress bar with a bright 1px glow line
// along the top of the filled portion.
func (h *HUD) drawStatBar(screen *ebiten.Image, x, y, width int, label string, value float64, bright, dim color.RGBA) {
	DrawTextLines(screen, h.face, fmt.Sprintf("%s: %d", label, int(value*100)), x, y, ColorCyan)

	barY := y + 16
	const barHeight = 12

	barRect := image.Rect(x, barY, x+width, barY+barHeight)
	fillRect(screen, barRect, color.RGBA{2, 2, 4, 255})

	filled := int(float64(width) * clamp01(value))
	if filled > 0 {
		fillRect(screen, image.Rect(x, barY, x+filled, barY+barHeight), dim)
		vector.StrokeLine(screen, float32(x), float32(barY), float32(x+filled), float32(barY), 1, bright, false)
	}

	strokeRect(screen, barRect, 1, ColorCyanDark)
}

func (h *HUD) drawActionBar(screen *ebiten.Image) {
	fillRect(screen, h.actionBarRect, ColorPanelBG)

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	for row := 0; row < actionBarRows; row++ {
		for col := 0; col < actionBarCols; col++ {
			cellX := h.actionBarRect.Min.X + col*actionCellSize
			cellY := h.actionBarRect.Min.Y + row*actionCellSize
			cell := image.Rect(cellX, cellY, cellX+actionCellSize, cellY+actionCellSize)

			pressed := ebiten.IsKeyPressed(actionKeys[col]) && (row == 1) == shift

			bg := ColorSlotBG
			if pressed {
				bg = ColorSlotBGPressed
			}
			fillRect(screen, cell, bg)

			border := ColorCyanDark
			if h.activeRow == row && h.activeCol == col {
				border = ColorOrange
			}
			strokeRect(screen, cell, 1, border)

			label := topRowLabels[col]
			if row == 1 {
				label = bottomRowLabels[col]
			}
			DrawTextLines(screen, h.face, label, cellX+3, cellY+2, ColorCyanDim)
		}
	}

	strokeRect(screen, h.actionBarRect, 2, ColorCyan)
}

func (h *HUD) drawInfoPanel(screen *ebiten.Image, p *player.Player, zoom float64) {
	fillRect(screen, h.infoRect, ColorPanelBG)
	DrawTextLines(screen, h.face, "SYSTEM", h.infoRect.Min.X+4, h.infoRect.Min.Y+2, ColorOrange)

	infoX := h.infoRect.Min.X + 8
	infoY := h.infoRect.Min.Y + 25
	const lineHeight = 18

	degrees := math.Mod(p.Angle*180/math.Pi, 360)
	if degrees < 0 {
		degrees += 360
	}

	DrawTextLines(screen, h.face, fmt.Sprintf("X:%+.1f", p.Pos.X), infoX, infoY, ColorCyan)
	DrawTextLines(screen, h.face, fmt.Sprintf("Y:%+.1f", p.Pos.Y), infoX, infoY+lineHeight, ColorCyan)
	DrawTextLines(screen, h.face, fmt.Sprintf("HDG:%03.0f", degrees), infoX, infoY+2*lineHeight, ColorCyan)
	DrawTextLines(screen, h.face, fmt.Sprintf("ZM:%.1fx", zoom), infoX, infoY+3*lineHeight, ColorCyan)

	dividerY := h.infoRect.Max.Y - 30
	vector.StrokeLine(screen, float32(h.infoRect.Min.X+8), float32(dividerY),
		float32(h.infoRect.Max.X-8), float32(dividerY), 1, ColorCyanDark, false)
	DrawTextLines(screen, h.face, "ONLINE", infoX, dividerY+6, ColorGreen)

	strokeRect(screen, h.infoRect, 2, ColorCyan)
	drawCornerAccents(screen, h.infoRect)
}

// drawCornerAccents draws orange L-shaped marks on all four corners of a
// panel, pointing inward.
func drawCornerAccents(screen *ebiten.Image, r image.Rectangle) {
	corners := []struct{ x, y, dx, dy float32 }{
		{float32(r.Min.X), float32(r.Min.Y), 1, 1},
		{float32(r.Max.X - 1), float32(r.Min.Y), -1, 1},
		{float32(r.Min.X), float32(r.Max.Y - 1), 1, -1},
		{float32(r.Max.X - 1), float32(r.Max.Y - 1), -1, -1},
	}
	for _, c := range corners {
		vector.StrokeLine(screen, c.x, c.y, c.x+c.dx*cornerAccentSize, c.y, 2, ColorOrange, false)
		vector.StrokeLine(screen, c.x, c.y, c.x, c.y+c.dy*cornerAccentSize, 2, ColorOrange, false)
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
