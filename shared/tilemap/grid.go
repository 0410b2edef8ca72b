// Package tilemap provides the layered tile grid and its collision queries,
// shared between the game client and the map tools. It has no dependencies
// on ebitengine, donburi, or resolv, pure data only.
package tilemap

import "math"

// Layer is one tile plane of a map, rendered low-to-high in slice order.
// A tile value of 0 means the cell is empty on this layer.
type Layer struct {
	Name  string
	tiles []uint32
}

// Grid is the layered cell grid of one map. Dimensions are fixed at load
// time; cells outside the grid are always treated as blocked (world edges
// are solid). The grid is only mutated during map load or an editor
// paint commit, never while collision queries are running.
type Grid struct {
	name     string
	width    int // cells
	height   int // cells
	tileSize int // pixels per cell edge
	layers   []*Layer
	blocked  []bool // width*height, true if any layer blocks the cell
}

// NewGrid returns an empty grid with no layers and no blocked cells.
func NewGrid(name string, width, height, tileSize int) *Grid {
	return &Grid{
		name:     name,
		width:    width,
		height:   height,
		tileSize: tileSize,
		blocked:  make([]bool, width*height),
	}
}

func (g *Grid) Name() string  { return g.name }
func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) TileSize() int { return g.tileSize }

// PixelWidth returns the map width in pixels.
func (g *Grid) PixelWidth() float64 { return float64(g.width * g.tileSize) }

// PixelHeight returns the map height in pixels.
func (g *Grid) PixelHeight() float64 { return float64(g.height * g.tileSize) }

// AddLayer appends an empty layer on top of the existing ones.
func (g *Grid) AddLayer(name string) *Layer {
	l := &Layer{Name: name, tiles: make([]uint32, g.width*g.height)}
	g.layers = append(g.layers, l)
	return l
}

// Layers returns the layers in render order, lowest first.
func (g *Grid) Layers() []*Layer { return g.layers }

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// TileAt returns the tile at (col, row) on the given layer, or 0 for
// out-of-bounds coordinates.
func (g *Grid) TileAt(layer, col, row int) uint32 {
	if layer < 0 || layer >= len(g.layers) || !g.inBounds(col, row) {
		return 0
	}
	return g.layers[layer].tiles[row*g.width+col]
}

// SetTile places a tile on the given layer. Out-of-bounds coordinates are
// ignored. Editor paint path; must not run concurrently with queries.
func (g *Grid) SetTile(layer, col, row int, tile uint32) {
	if layer < 0 || layer >= len(g.layers) || !g.inBounds(col, row) {
		return
	}
	g.layers[layer].tiles[row*g.width+col] = tile
}

// Blocked reports whether the cell at (col, row) is impassable. Cells
// outside the grid are blocked.
func (g *Grid) Blocked(col, row int) bool {
	if !g.inBounds(col, row) {
		return true
	}
	return g.blocked[row*g.width+col]
}

// SetBlocked marks a cell as impassable or clears it. Out-of-bounds
// coordinates are ignored. Editor paint path; must not run concurrently
// with queries.
func (g *Grid) SetBlocked(col, row int, blocked bool) {
	if !g.inBounds(col, row) {
		return
	}
	g.blocked[row*g.width+col] = blocked
}

// CellAt returns the cell coordinate containing the pixel position.
func (g *Grid) CellAt(x, y float64) (col, row int) {
	ts := float64(g.tileSize)
	return int(math.Floor(x / ts)), int(math.Floor(y / ts))
}

// CollidesAt reports whether the cell containing the pixel position is
// blocked, or whether the position lies outside the grid.
func (g *Grid) CollidesAt(x, y float64) bool {
	col, row := g.CellAt(x, y)
	return g.Blocked(col, row)
}

// CollidesRect reports whether r overlaps any blocked cell. Every cell the
// rect covers is checked, so rects larger than a tile cannot straddle a
// blocked cell undetected. A rect with non-positive size covers no cells.
func (g *Grid) CollidesRect(r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	ts := float64(g.tileSize)
	minCol := int(math.Floor(r.X / ts))
	minRow := int(math.Floor(r.Y / ts))
	maxCol := int(math.Ceil((r.X+r.W)/ts)) - 1
	maxRow := int(math.Ceil((r.Y+r.H)/ts)) - 1

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if g.Blocked(col, row) {
				return true
			}
		}
	}
	return false
}
