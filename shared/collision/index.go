// Package collision derives blocked-space queries from a tile grid plus the
// current frame's dynamic obstacles, and implements the nearest-free-space
// search used to recover a stuck player. Like tilemap, it stays free of
// engine dependencies so the tools and tests can use it headless.
package collision

import "github.com/wildmere/emberhollow/shared/tilemap"

// Blocker answers whether a pixel-space rect overlaps impassable space.
type Blocker interface {
	Blocked(r tilemap.Rect) bool
}

// Index combines a grid with a snapshot of dynamic obstacle rects (closed
// chests, placed objects). It is rebuilt from fresh inputs for each query
// window and holds no state of its own, so staleness after objects open or
// despawn is impossible. The inputs must not be mutated while queries run.
type Index struct {
	Grid      *tilemap.Grid
	Obstacles []tilemap.Rect
}

// Blocked reports whether r overlaps a blocked cell or any obstacle.
func (ix Index) Blocked(r tilemap.Rect) bool {
	if ix.Grid != nil && ix.Grid.CollidesRect(r) {
		return true
	}
	for _, o := range ix.Obstacles {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}
