package collision

import (
	"math"

	"github.com/wildmere/emberhollow/shared/tilemap"
)

// SearchConfig bounds the free-space search. The total number of collision
// checks is at most
//
//	(MaxRadius/CellSize) * (360/AngleStepDegrees) + 4*FallbackMaxSteps
//
// independent of map size, so the search can run inside a frame without
// spiking.
type SearchConfig struct {
	CellSize         float64 // radius increment between circles
	StartRadius      float64 // first circle radius
	MaxRadius        float64 // last circle radius, inclusive
	AngleStepDegrees float64 // angular sampling resolution
	FallbackStep     float64 // cardinal probe step length
	FallbackMaxSteps int     // cardinal probe steps per direction
}

// DefaultSearchConfig returns the tuning used by the game: circles from one
// tile out to four tiles, 24 samples per circle.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		CellSize:         16,
		StartRadius:      16,
		MaxRadius:        64,
		AngleStepDegrees: 15,
		FallbackStep:     16,
		FallbackMaxSteps: 4,
	}
}

// FindFreeSpace looks for the nearest free position for a w-by-h rect
// centered at origin. If origin itself is free it is returned unchanged.
//
// The search sweeps expanding circles, sampling every AngleStepDegrees and
// keeping the free candidate with the smallest exact displacement; ties go
// to the smallest angle so repeated calls are deterministic. The sweep stops
// at the first radius that yields any free candidate: every point at a
// smaller radius has already been rejected, so the winner is the minimal
// displacement discoverable at this angular resolution.
//
// Thin free corridors can slip between two angular samples, so when the
// sweep exhausts MaxRadius a cardinal probe walks +X, -X, +Y, -Y in
// FallbackStep increments and takes the first free point. If that also
// fails, ok is false and the caller decides what to do; the search itself
// never mutates anything.
func FindFreeSpace(origin tilemap.Point, w, h float64, index Blocker, cfg SearchConfig) (pos tilemap.Point, ok bool) {
	if !index.Blocked(tilemap.CenteredRect(origin, w, h)) {
		return origin, true
	}

	for radius := cfg.StartRadius; radius <= cfg.MaxRadius; radius += cfg.CellSize {
		var best tilemap.Point
		bestDist := math.MaxFloat64

		for deg := 0.0; deg < 360; deg += cfg.AngleStepDegrees {
			rad := deg * math.Pi / 180
			// Candidates snap to whole pixels, matching how the player
			// position is stored.
			dx := math.Trunc(radius * math.Cos(rad))
			dy := math.Trunc(radius * math.Sin(rad))
			cand := tilemap.Point{X: origin.X + dx, Y: origin.Y + dy}

			if index.Blocked(tilemap.CenteredRect(cand, w, h)) {
				continue
			}
			if d := math.Hypot(dx, dy); d < bestDist {
				bestDist = d
				best = cand
			}
		}

		if bestDist < math.MaxFloat64 {
			return best, true
		}
	}

	dirs := [4]tilemap.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for k := 1; k <= cfg.FallbackMaxSteps; k++ {
		step := float64(k) * cfg.FallbackStep
		for _, d := range dirs {
			cand := tilemap.Point{X: origin.X + d.X*step, Y: origin.Y + d.Y*step}
			if !index.Blocked(tilemap.CenteredRect(cand, w, h)) {
				return cand, true
			}
		}
	}

	return tilemap.Point{}, false
}
