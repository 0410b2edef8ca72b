package tilemap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// CollisionLayerName is the dedicated overlay layer: any tile painted on it
// blocks the cell regardless of tile properties.
const CollisionLayerName = "collision"

// BlockedProperty is the tileset tile property that marks a tile as solid
// on any layer.
const BlockedProperty = "blocked"

// MapFormatError reports malformed or inconsistent map data. A map that
// fails to load is rejected whole; no partial grid is ever installed.
type MapFormatError struct {
	Map    string
	Layer  string // empty when the problem is not tied to one layer
	Reason string
	Err    error
}

func (e *MapFormatError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("map %s: layer %s: %s", e.Map, e.Layer, e.Reason)
	}
	return fmt.Sprintf("map %s: %s", e.Map, e.Reason)
}

func (e *MapFormatError) Unwrap() error { return e.Err }

// Load parses a TMX file into a Grid. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (tools). Parse and validation failures
// surface as *MapFormatError.
func Load(fsys fs.FS, tmxPath string) (*Grid, error) {
	name := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")

	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &MapFormatError{Map: name, Reason: "parse failed: " + err.Error(), Err: err}
	}

	return FromTiledMap(name, m)
}

// FromTiledMap builds a Grid from an already-parsed TMX map, deriving the
// per-cell blocked flags from the collision overlay layer and from tiles
// carrying the blocked property.
func FromTiledMap(name string, m *tiled.Map) (*Grid, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, &MapFormatError{
			Map:    name,
			Reason: fmt.Sprintf("non-positive dimensions %dx%d", m.Width, m.Height),
		}
	}
	if m.TileWidth != m.TileHeight {
		return nil, &MapFormatError{
			Map:    name,
			Reason: fmt.Sprintf("tiles must be square, got %dx%d", m.TileWidth, m.TileHeight),
		}
	}

	g := NewGrid(name, m.Width, m.Height, m.TileWidth)
	wantTiles := m.Width * m.Height

	for _, layer := range m.Layers {
		if len(layer.Tiles) != wantTiles {
			return nil, &MapFormatError{
				Map:    name,
				Layer:  layer.Name,
				Reason: fmt.Sprintf("has %d tiles, want %d", len(layer.Tiles), wantTiles),
			}
		}

		gl := g.AddLayer(layer.Name)
		isOverlay := layer.Name == CollisionLayerName

		for i, tile := range layer.Tiles {
			if tile.IsNil() {
				continue
			}
			if tile.Tileset == nil {
				return nil, &MapFormatError{
					Map:    name,
					Layer:  layer.Name,
					Reason: fmt.Sprintf("cell %d references a tile with no tileset", i),
				}
			}
			if tile.Tileset.TileCount > 0 && tile.ID >= uint32(tile.Tileset.TileCount) {
				return nil, &MapFormatError{
					Map:    name,
					Layer:  layer.Name,
					Reason: fmt.Sprintf("cell %d references unknown tile %d in tileset %q", i, tile.ID, tile.Tileset.Name),
				}
			}

			gl.tiles[i] = tile.Tileset.FirstGID + tile.ID

			blocks := isOverlay
			if !blocks {
				// Tiles without custom properties are simply not listed in
				// the tileset, so a failed lookup is not an error.
				if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					blocks = tt.Properties.GetBool(BlockedProperty)
				}
			}
			if blocks {
				g.blocked[i] = true
			}
		}
	}

	return g, nil
}
