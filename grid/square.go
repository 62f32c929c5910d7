package grid

import (
	"math"

	"decoherence/geom"
)

// SquareGrid is an axis-aligned grid of Side×Side cells. Tile (col, row)
// spans [col·Side, (col+1)·Side) × [row·Side, (row+1)·Side).
type SquareGrid struct {
	Side float64 // meters
}

func NewSquareGrid(side float64) *SquareGrid {
	return &SquareGrid{Side: side}
}

// TileAt returns the coordinate of the cell containing p.
func (g *SquareGrid) TileAt(p geom.Vec2) (col, row int) {
	return int(math.Floor(p.X / g.Side)), int(math.Floor(p.Y / g.Side))
}

// Center returns the world position of the middle of tile (col, row).
func (g *SquareGrid) Center(col, row int) geom.Vec2 {
	return geom.Vec2{
		X: (float64(col) + 0.5) * g.Side,
		Y: (float64(row) + 0.5) * g.Side,
	}
}

// VisibleTiles enumerates every cell touching the padded viewport box.
// Square cells are gap-free, so flooring the low edge and ceiling the high
// edge covers the box exactly; no extra slack band is needed.
func (g *SquareGrid) VisibleTiles(center geom.Vec2, ppm float64, screenW, screenH int) []Tile {
	minX, minY, maxX, maxY := viewBounds(center, ppm, screenW, screenH)

	colStart := int(math.Floor(minX / g.Side))
	colEnd := int(math.Ceil(maxX / g.Side))
	rowStart := int(math.Floor(minY / g.Side))
	rowEnd := int(math.Ceil(maxY / g.Side))

	tiles := make([]Tile, 0, (colEnd-colStart)*(rowEnd-rowStart))
	for col := colStart; col < colEnd; col++ {
		for row := rowStart; row < rowEnd; row++ {
			x := float64(col) * g.Side
			y := float64(row) * g.Side
			tiles = append(tiles, Tile{
				Col:    col,
				Row:    row,
				Center: g.Center(col, row),
				Verts: []geom.Vec2{
					{X: x, Y: y},
					{X: x + g.Side, Y: y},
					{X: x + g.Side, Y: y + g.Side},
					{X: x, Y: y + g.Side},
				},
			})
		}
	}
	return tiles
}
