// Package grid enumerates the tiles of an infinite plane that intersect
// the current viewport. Two layouts exist, flat-top hexagons and
// axis-aligned squares, behind one interface. Tiles are generated fresh
// every frame and carry no state of their own.
package grid

import "decoherence/geom"

// Tile is one grid cell produced for the current viewport.
type Tile struct {
	Col, Row int
	Center   geom.Vec2
	// Verts is the boundary polygon in world space, wound consistently so
	// the renderer can fill it directly.
	Verts []geom.Vec2
}

// Grid enumerates the tiles covering a viewport centered at center with
// scale ppm (pixels per meter) on a screenW×screenH pixel screen.
//
// The contract is full coverage: every point of the visible screen
// rectangle must fall inside some returned tile. Emitting extra tiles past
// the edges is fine; leaving a gap is a bug.
type Grid interface {
	VisibleTiles(center geom.Vec2, ppm float64, screenW, screenH int) []Tile
}

// viewPadding is the margin, in meters, added around the visible area so
// tiles never pop in at the screen edge.
const viewPadding = 2.0

// viewBounds returns the padded world-space bounding box of the screen.
func viewBounds(center geom.Vec2, ppm float64, screenW, screenH int) (minX, minY, maxX, maxY float64) {
	halfW := float64(screenW)/2/ppm + viewPadding
	halfH := float64(screenH)/2/ppm + viewPadding
	return center.X - halfW, center.Y - halfH, center.X + halfW, center.Y + halfH
}
