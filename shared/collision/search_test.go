package collision

import (
	"math"
	"testing"

	"github.com/wildmere/emberhollow/shared/tilemap"
)

// blockFunc adapts a plain predicate to the Blocker interface.
type blockFunc func(tilemap.Rect) bool

func (f blockFunc) Blocked(r tilemap.Rect) bool { return f(r) }

// countingBlocker counts collision checks for the boundedness property.
type countingBlocker struct {
	inner  Blocker
	checks int
}

func (c *countingBlocker) Blocked(r tilemap.Rect) bool {
	c.checks++
	return c.inner.Blocked(r)
}

func TestFindFreeSpaceNoOpWhenFree(t *testing.T) {
	g := tilemap.NewGrid("test", 16, 16, 16)
	ix := Index{Grid: g}
	origin := tilemap.Point{X: 100, Y: 100}

	pos, ok := FindFreeSpace(origin, 16, 16, ix, DefaultSearchConfig())
	if !ok {
		t.Fatal("search failed on a free origin")
	}
	if pos != origin {
		t.Errorf("free origin moved: got %+v, want %+v", pos, origin)
	}
}

// A player rect fully inside a single blocked cell with free neighbors must
// resolve at the first radius, with displacement no more than one diagonal
// cell step.
func TestFindFreeSpaceSingleBlockedCell(t *testing.T) {
	g := tilemap.NewGrid("test", 16, 16, 16)
	g.SetBlocked(1, 12, true)
	ix := Index{Grid: g}

	// Center of cell (1,12): the 16x16 player rect covers the cell exactly.
	origin := tilemap.Point{X: 24, Y: 200}
	pos, ok := FindFreeSpace(origin, 16, 16, ix, DefaultSearchConfig())
	if !ok {
		t.Fatal("expected a free position at the first radius")
	}

	dist := math.Hypot(pos.X-origin.X, pos.Y-origin.Y)
	if dist > 16*math.Sqrt2 {
		t.Errorf("displacement %.2f exceeds one diagonal cell step", dist)
	}

	// All minimal candidates sit at exactly the start radius; the angle 0
	// tie-break picks the +X neighbor cell.
	want := tilemap.Point{X: 40, Y: 200}
	if pos != want {
		t.Errorf("resolved at %+v, want %+v", pos, want)
	}
	if ix.Blocked(tilemap.CenteredRect(pos, 16, 16)) {
		t.Error("resolved position is still blocked")
	}
}

// When nothing within 24px of the origin is free, the radius-16 circle finds
// nothing and the radius-32 circle must return its minimum-distance free
// sample, ties broken by the smallest angle.
func TestFindFreeSpaceMinimality(t *testing.T) {
	origin := tilemap.Point{X: 200, Y: 200}
	ix := blockFunc(func(r tilemap.Rect) bool {
		c := r.Center()
		return math.Hypot(c.X-origin.X, c.Y-origin.Y) < 24
	})

	pos, ok := FindFreeSpace(origin, 16, 16, ix, DefaultSearchConfig())
	if !ok {
		t.Fatal("expected a free position at radius 32")
	}

	// Radius-32 samples truncate to whole pixels; (30,8) at 15 degrees has
	// distance 31.05, beating the cardinal (32,0), and wins the smallest-
	// angle tie against (8,30) at 75 degrees.
	want := tilemap.Point{X: origin.X + 30, Y: origin.Y + 8}
	if pos != want {
		t.Errorf("resolved at %+v, want %+v", pos, want)
	}
}

func TestFindFreeSpaceBoundedChecks(t *testing.T) {
	cfg := DefaultSearchConfig()
	blocked := &countingBlocker{inner: blockFunc(func(tilemap.Rect) bool { return true })}

	_, ok := FindFreeSpace(tilemap.Point{X: 100, Y: 100}, 16, 16, blocked, cfg)
	if ok {
		t.Fatal("search succeeded against an always-blocked index")
	}

	// 1 origin check + 4 radii * 24 angles + 4 directions * 4 steps.
	const wantChecks = 1 + 4*24 + 4*4
	if blocked.checks != wantChecks {
		t.Errorf("collision checks = %d, want %d", blocked.checks, wantChecks)
	}
}

func TestFindFreeSpaceDeterminism(t *testing.T) {
	g := tilemap.NewGrid("test", 16, 16, 16)
	g.SetBlocked(1, 12, true)
	g.SetBlocked(2, 12, true)
	ix := Index{
		Grid:      g,
		Obstacles: []tilemap.Rect{{X: 0, Y: 176, W: 16, H: 16}},
	}
	origin := tilemap.Point{X: 24, Y: 200}

	first, okFirst := FindFreeSpace(origin, 16, 16, ix, DefaultSearchConfig())
	for i := 0; i < 10; i++ {
		pos, ok := FindFreeSpace(origin, 16, 16, ix, DefaultSearchConfig())
		if ok != okFirst || pos != first {
			t.Fatalf("call %d returned (%+v, %v), first call returned (%+v, %v)",
				i, pos, ok, first, okFirst)
		}
	}
}

// With the sweep capped at one radius, a free cell two fallback steps out
// must be found by the cardinal probe rather than reported as unreachable.
func TestFindFreeSpaceCardinalFallback(t *testing.T) {
	g := tilemap.NewGrid("test", 5, 5, 16)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			g.SetBlocked(col, row, true)
		}
	}
	g.SetBlocked(2, 4, false)
	ix := Index{Grid: g}

	cfg := DefaultSearchConfig()
	cfg.MaxRadius = 16

	// Center of cell (2,2); the only free cell is two steps down.
	origin := tilemap.Point{X: 40, Y: 40}
	pos, ok := FindFreeSpace(origin, 16, 16, ix, cfg)
	if !ok {
		t.Fatal("fallback probe should reach the free cell")
	}
	want := tilemap.Point{X: 40, Y: 72}
	if pos != want {
		t.Errorf("resolved at %+v, want %+v", pos, want)
	}
}

func TestFindFreeSpaceEnclosedFails(t *testing.T) {
	g := tilemap.NewGrid("test", 12, 12, 16)
	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			g.SetBlocked(col, row, true)
		}
	}
	ix := Index{Grid: g}

	pos, ok := FindFreeSpace(tilemap.Point{X: 96, Y: 96}, 16, 16, ix, DefaultSearchConfig())
	if ok {
		t.Fatalf("search returned %+v inside a fully blocked region", pos)
	}
	if pos != (tilemap.Point{}) {
		t.Errorf("failed search returned nonzero position %+v", pos)
	}
}
