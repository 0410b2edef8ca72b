package tilemap

import "testing"

func TestCollidesAt(t *testing.T) {
	g := NewGrid("test", 4, 4, 16)
	g.SetBlocked(1, 2, true)

	if !g.CollidesAt(24, 40) {
		t.Error("pixel inside blocked cell (1,2) should collide")
	}
	if g.CollidesAt(8, 8) {
		t.Error("pixel inside free cell (0,0) should not collide")
	}
	if !g.CollidesAt(-1, 5) {
		t.Error("pixel left of the grid should collide (world edges are solid)")
	}
	if !g.CollidesAt(100, 5) {
		t.Error("pixel right of the grid should collide")
	}
	if !g.CollidesAt(5, 64) {
		t.Error("pixel below the grid should collide")
	}
}

func TestCollidesRect(t *testing.T) {
	g := NewGrid("test", 6, 6, 16)
	g.SetBlocked(2, 2, true)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"fully inside blocked cell", Rect{X: 36, Y: 36, W: 8, H: 8}, true},
		{"corner clips blocked cell", Rect{X: 40, Y: 40, W: 16, H: 16}, true},
		{"touching blocked cell edge only", Rect{X: 16, Y: 32, W: 16, H: 16}, false},
		{"free cell", Rect{X: 0, Y: 0, W: 16, H: 16}, false},
		{"past right edge", Rect{X: 90, Y: 0, W: 16, H: 16}, true},
		{"negative origin", Rect{X: -4, Y: 0, W: 8, H: 8}, true},
		{"non-positive size", Rect{X: 36, Y: 36, W: 0, H: 8}, false},
	}
	for _, tc := range tests {
		if got := g.CollidesRect(tc.r); got != tc.want {
			t.Errorf("%s: CollidesRect(%+v) = %v, want %v", tc.name, tc.r, got, tc.want)
		}
	}
}

// A rect wider than a tile must detect a blocked cell it fully encloses,
// not just the cells under its corners.
func TestCollidesRectEnclosedCell(t *testing.T) {
	g := NewGrid("test", 6, 6, 16)
	g.SetBlocked(2, 2, true)

	r := Rect{X: 20, Y: 20, W: 40, H: 40}
	if !g.CollidesRect(r) {
		t.Error("rect enclosing blocked cell (2,2) should collide")
	}
}

func TestPaintCommit(t *testing.T) {
	g := NewGrid("test", 3, 3, 16)
	layer := g.AddLayer("ground")
	if layer == nil {
		t.Fatal("AddLayer returned nil")
	}

	g.SetTile(0, 1, 1, 7)
	if got := g.TileAt(0, 1, 1); got != 7 {
		t.Errorf("TileAt(0,1,1) = %d, want 7", got)
	}

	g.SetBlocked(1, 1, true)
	if !g.CollidesAt(24, 24) {
		t.Error("painted blocked cell should collide")
	}
	g.SetBlocked(1, 1, false)
	if g.CollidesAt(24, 24) {
		t.Error("cleared cell should no longer collide")
	}

	// Out-of-bounds paints are ignored, not applied elsewhere.
	g.SetTile(0, -1, 0, 9)
	g.SetBlocked(5, 5, true)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if g.Blocked(col, row) {
				t.Errorf("cell (%d,%d) unexpectedly blocked after OOB paint", col, row)
			}
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 16, H: 16}
	if !a.Overlaps(Rect{X: 8, Y: 8, W: 16, H: 16}) {
		t.Error("overlapping rects should overlap")
	}
	if a.Overlaps(Rect{X: 16, Y: 0, W: 16, H: 16}) {
		t.Error("edge-touching rects should not overlap")
	}
	if a.Overlaps(Rect{X: 40, Y: 40, W: 4, H: 4}) {
		t.Error("disjoint rects should not overlap")
	}
}
