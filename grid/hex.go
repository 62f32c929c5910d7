package grid

import (
	"math"

	"decoherence/geom"
)

// HexGrid is a flat-top hexagonal grid. Odd columns sit half a cell lower
// than even ones (brick offset); that offset is what makes the layout
// seamless, so it is load-bearing, not cosmetic.
type HexGrid struct {
	Circumradius float64 // center to vertex, meters
	Width        float64 // vertex to vertex, 2R
	Height       float64 // flat to flat, sqrt(3)*R
	HorizSpacing float64 // 3/4 of width
	VertSpacing  float64 // equals Height
}

func NewHexGrid(circumradius float64) *HexGrid {
	w := 2 * circumradius
	h := math.Sqrt(3) * circumradius
	return &HexGrid{
		Circumradius: circumradius,
		Width:        w,
		Height:       h,
		HorizSpacing: w * 0.75,
		VertSpacing:  h,
	}
}

// Center returns the world position of the hex at (col, row).
func (g *HexGrid) Center(col, row int) geom.Vec2 {
	c := geom.Vec2{
		X: float64(col) * g.HorizSpacing,
		Y: float64(row) * g.VertSpacing,
	}
	if col%2 != 0 {
		c.Y += g.VertSpacing / 2
	}
	return c
}

// Vertices returns the six corners of the hex centered at c. Flat-top
// orientation: the first vertex lies on the +x axis, the rest follow at
// 60 degree steps.
func (g *HexGrid) Vertices(c geom.Vec2) []geom.Vec2 {
	verts := make([]geom.Vec2, 6)
	for i := range verts {
		angle := math.Pi / 3 * float64(i)
		verts[i] = geom.Vec2{
			X: c.X + g.Circumradius*math.Cos(angle),
			Y: c.Y + g.Circumradius*math.Sin(angle),
		}
	}
	return verts
}

// VisibleTiles enumerates every hex whose column/row lands in the padded
// viewport range. The range uses truncating division plus a slack band on
// each side; the row offset skews the lattice, so the bounds stay generous
// rather than tight. Over-generation is harmless, seams are not.
func (g *HexGrid) VisibleTiles(center geom.Vec2, ppm float64, screenW, screenH int) []Tile {
	minX, minY, maxX, maxY := viewBounds(center, ppm, screenW, screenH)

	colStart := int(minX/g.HorizSpacing) - 1
	colEnd := int(maxX/g.HorizSpacing) + 2
	rowStart := int(minY/g.VertSpacing) - 1
	rowEnd := int(maxY/g.VertSpacing) + 2

	tiles := make([]Tile, 0, (colEnd-colStart)*(rowEnd-rowStart))
	for col := colStart; col < colEnd; col++ {
		for row := rowStart; row < rowEnd; row++ {
			c := g.Center(col, row)
			tiles = append(tiles, Tile{Col: col, Row: row, Center: c, Verts: g.Vertices(c)})
		}
	}
	return tiles
}
