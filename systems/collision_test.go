package systems

import (
	"testing"

	"github.com/automoto/topdown/assets"
	"github.com/automoto/topdown/components"
	cfg "github.com/automoto/topdown/config"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/systems/factory"
	"github.com/automoto/topdown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newArena returns a body at (50,50) 20x20 and a wall spanning x 100..120.
func newArena() (*resolv.Object, *resolv.Object) {
	space := resolv.NewSpace(200, 200, 10, 10)
	wall := resolv.NewObject(100, 0, 20, 200, tags.ResolvSolid)
	body := resolv.NewObject(50, 50, 20, 20, tags.ResolvPlayer)
	space.Add(wall, body)
	return body, wall
}

func TestResolveAxis(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  float64
		want    float64
		wantHit bool
	}{
		{"no movement", 0, 0, 0, false},
		{"free move toward wall", 10, 0, 10, false},
		{"free move away from wall", -10, 0, -10, false},
		{"free vertical move", 0, 10, 10, false},
		{"stops flush against wall", 40, 0, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := newArena()
			got, hit := resolveAxis(body, tt.dx, tt.dy)
			if got != tt.want || hit != tt.wantHit {
				t.Errorf("resolveAxis(%v, %v) = %v, %v, want %v, %v", tt.dx, tt.dy, got, hit, tt.want, tt.wantHit)
			}
		})
	}
}

func TestWallPermit(t *testing.T) {
	body, wall := newArena()
	body.X = wall.X - body.W // touching the wall's left face
	body.Update()

	permit := wallPermit(body)
	tests := []struct {
		axis kinematics.Axis
		dir  int
		want bool
	}{
		{kinematics.AxisX, 1, false},
		{kinematics.AxisX, -1, true},
		{kinematics.AxisY, 1, true},
		{kinematics.AxisY, -1, true},
	}

	for _, tt := range tests {
		if got := permit(tt.axis, tt.dir); got != tt.want {
			t.Errorf("permit(%s, %d) = %v, want %v", tt.axis, tt.dir, got, tt.want)
		}
	}
}

func TestWallPermitAwayFromWalls(t *testing.T) {
	body, _ := newArena()
	body.X = 20
	body.Update()

	if !wallPermit(body)(kinematics.AxisX, 1) {
		t.Error("permit refused a move with nothing in the way")
	}
}

func TestUpdateMovementStopsAtWall(t *testing.T) {
	world := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(world, 800, 600, cfg.C.Level.CellSize)
	// Player body spans x 375..425; the wall starts 5px to its right.
	factory.CreateWall(world, assets.Rect{X: 430, Y: 0, Width: 20, Height: 600})

	scheme := MustBuildScheme(cfg.C.Controls)
	player := factory.CreatePlayer(world, math.Vec2{X: 400, Y: 300}, kinematics.DefaultConfig(), scheme)

	mv := components.Movement.Get(player)
	mv.Velocity = math.Vec2{X: 600}
	obj := components.Object.Get(player).Object
	startY := obj.Y

	UpdateMovement(world)

	// 600px/s at 60 TPS is 10px this frame, cut short after 5px.
	if obj.X != 380 {
		t.Errorf("x = %v, want 380 (flush against the wall)", obj.X)
	}
	if obj.Y != startY {
		t.Errorf("y = %v, want unchanged %v", obj.Y, startY)
	}
	if mv.Velocity.X != 0 {
		t.Errorf("velocity.X = %v, want 0 after hitting the wall", mv.Velocity.X)
	}
}
