package collision

import (
	"testing"

	"github.com/wildmere/emberhollow/shared/tilemap"
)

func TestIndexBlocked(t *testing.T) {
	g := tilemap.NewGrid("test", 8, 8, 16)
	g.SetBlocked(4, 4, true)

	ix := Index{
		Grid: g,
		Obstacles: []tilemap.Rect{
			{X: 16, Y: 16, W: 16, H: 16},
		},
	}

	tests := []struct {
		name string
		r    tilemap.Rect
		want bool
	}{
		{"blocked cell", tilemap.Rect{X: 66, Y: 66, W: 8, H: 8}, true},
		{"obstacle rect", tilemap.Rect{X: 24, Y: 24, W: 16, H: 16}, true},
		{"touching obstacle edge", tilemap.Rect{X: 32, Y: 16, W: 16, H: 16}, false},
		{"free space", tilemap.Rect{X: 96, Y: 96, W: 16, H: 16}, false},
		{"outside the grid", tilemap.Rect{X: -20, Y: 0, W: 16, H: 16}, true},
	}
	for _, tc := range tests {
		if got := ix.Blocked(tc.r); got != tc.want {
			t.Errorf("%s: Blocked(%+v) = %v, want %v", tc.name, tc.r, got, tc.want)
		}
	}
}

func TestIndexWithoutGrid(t *testing.T) {
	ix := Index{Obstacles: []tilemap.Rect{{X: 0, Y: 0, W: 16, H: 16}}}

	if !ix.Blocked(tilemap.Rect{X: 8, Y: 8, W: 4, H: 4}) {
		t.Error("obstacle overlap should block even without a grid")
	}
	if ix.Blocked(tilemap.Rect{X: 100, Y: 100, W: 4, H: 4}) {
		t.Error("nothing blocks away from the obstacle")
	}
}
