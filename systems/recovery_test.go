package systems

import (
	"testing"

	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/systems/factory"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newRecoveryECS builds a minimal world around the given grid with the
// player's collision rect centered at (centerX, centerY).
func newRecoveryECS(t *testing.T, grid *tilemap.Grid, centerX, centerY float64) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(e, &assets.Level{Name: "proving-grounds", Grid: grid})
	factory.CreateSpace(e,
		int(grid.PixelWidth()), int(grid.PixelHeight()),
		grid.TileSize(), grid.TileSize())
	factory.CreateWallsFromGrid(e, grid)
	factory.CreateCamera(e)
	factory.CreatePlayer(e, centerX, centerY)
	return e
}

func playerState(t *testing.T, e *ecs.ECS) (*components.ObjectData, *components.PhysicsData) {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player entity")
	}
	return components.Object.Get(entry), components.Physics.Get(entry)
}

func TestTryRecoverNotStuck(t *testing.T) {
	grid := tilemap.NewGrid("open", 20, 20, 16)
	e := newRecoveryECS(t, grid, 88, 88)

	obj, physics := playerState(t, e)
	physics.SpeedX = 1.5
	origX, origY := obj.X, obj.Y

	result := TryRecover(e)

	if result.Status != RecoveryNotStuck {
		t.Fatalf("Status = %v, want RecoveryNotStuck", result.Status)
	}
	if obj.X != origX || obj.Y != origY {
		t.Errorf("player moved to (%v, %v), want unchanged (%v, %v)", obj.X, obj.Y, origX, origY)
	}
	if physics.SpeedX != 1.5 {
		t.Errorf("SpeedX = %v, want untouched 1.5", physics.SpeedX)
	}
}

func TestTryRecoverMovesStuckPlayer(t *testing.T) {
	grid := tilemap.NewGrid("one-wall", 20, 20, 16)
	grid.SetBlocked(5, 5, true)

	// Center the player inside the blocked cell.
	e := newRecoveryECS(t, grid, 88, 88)
	obj, physics := playerState(t, e)
	physics.SpeedX = 2
	physics.SpeedY = -2

	result := TryRecover(e)

	if result.Status != RecoveryMoved {
		t.Fatalf("Status = %v, want RecoveryMoved", result.Status)
	}
	// Nearest free spot is to the right. After pixel snapping the 15 degree
	// sample (+15, +4) is closer than the axis sample (+16, 0).
	want := tilemap.Point{X: 103, Y: 92}
	if result.Position != want {
		t.Errorf("Position = %+v, want %+v", result.Position, want)
	}
	if obj.X != want.X-obj.W/2 || obj.Y != want.Y-obj.H/2 {
		t.Errorf("player rect at (%v, %v), want centered on %+v", obj.X, obj.Y, want)
	}
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Errorf("velocity = (%v, %v), want zeroed", physics.SpeedX, physics.SpeedY)
	}

	cameraEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if camera.GlideX == nil || camera.GlideY == nil {
		t.Error("camera recenter glide not started")
	}
}

func TestTryRecoverObstacleAware(t *testing.T) {
	grid := tilemap.NewGrid("chest-jam", 20, 20, 16)
	grid.SetBlocked(5, 5, true)

	e := newRecoveryECS(t, grid, 88, 88)

	// A closed chest occupies the cell the search would otherwise pick.
	worldEntry, _ := components.World.First(e.World)
	world := components.World.Get(worldEntry)
	world.Obstacles = append(world.Obstacles, tilemap.Rect{X: 96, Y: 80, W: 16, H: 16})

	result := TryRecover(e)

	if result.Status != RecoveryMoved {
		t.Fatalf("Status = %v, want RecoveryMoved", result.Status)
	}
	// The obstacle rules out the right side, so the search settles below.
	if want := (tilemap.Point{X: 92, Y: 103}); result.Position != want {
		t.Errorf("Position = %+v, want %+v", result.Position, want)
	}
	rect := tilemap.Rect{
		X: result.Position.X - 6, Y: result.Position.Y - 7, W: 12, H: 14,
	}
	if grid.CollidesRect(rect) {
		t.Errorf("recovered position %+v still overlaps the grid", result.Position)
	}
	for _, o := range world.Obstacles {
		if o.Overlaps(rect) {
			t.Errorf("recovered position %+v overlaps obstacle %+v", result.Position, o)
		}
	}
}

func TestTryRecoverFailsWhenEnclosed(t *testing.T) {
	grid := tilemap.NewGrid("sealed", 12, 12, 16)
	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			grid.SetBlocked(col, row, true)
		}
	}

	e := newRecoveryECS(t, grid, 96, 96)
	obj, _ := playerState(t, e)
	origX, origY := obj.X, obj.Y

	result := TryRecover(e)

	if result.Status != RecoveryFailed {
		t.Fatalf("Status = %v, want RecoveryFailed", result.Status)
	}
	if obj.X != origX || obj.Y != origY {
		t.Errorf("player moved to (%v, %v) on failure, want unchanged", obj.X, obj.Y)
	}
}

func TestUpdateManualRecoveryEdgeTriggered(t *testing.T) {
	grid := tilemap.NewGrid("manual", 20, 20, 16)
	grid.SetBlocked(5, 5, true)

	e := newRecoveryECS(t, grid, 88, 88)
	obj, _ := playerState(t, e)

	input := getOrCreateInput(e)
	input.Previous[cfg.ActionUnstuck] = false
	input.Current[cfg.ActionUnstuck] = true

	UpdateManualRecovery(e)

	if obj.X != 97 || obj.Y != 85 {
		t.Fatalf("player at (%v, %v), want recovered to (97, 85)", obj.X, obj.Y)
	}

	// Held key: no edge, no second attempt even if stuck again.
	obj.X, obj.Y = 82, 81
	input.Previous[cfg.ActionUnstuck] = true

	UpdateManualRecovery(e)

	if obj.X != 82 || obj.Y != 81 {
		t.Errorf("player at (%v, %v), want untouched while key held", obj.X, obj.Y)
	}
}
