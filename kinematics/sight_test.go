package kinematics

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestSightAngle(t *testing.T) {
	tests := []struct {
		name    string
		player  dmath.Vec2
		pointer dmath.Vec2
		want    float64
	}{
		{"right", dmath.Vec2{}, dmath.Vec2{X: 100}, 0},
		{"below", dmath.Vec2{}, dmath.Vec2{Y: 100}, math.Pi / 2},
		{"above", dmath.Vec2{}, dmath.Vec2{Y: -100}, -math.Pi / 2},
		{"up left", dmath.Vec2{}, dmath.Vec2{X: -100, Y: -100}, -3 * math.Pi / 4},
		{"offset diagonal", dmath.Vec2{X: 375, Y: 270}, dmath.Vec2{X: 475, Y: 370}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SightAngle(tt.player, tt.pointer)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SightAngle(%v, %v) = %v, want %v", tt.player, tt.pointer, got, tt.want)
			}
		})
	}
}

func TestSightEnd(t *testing.T) {
	origin := dmath.Vec2{X: 10, Y: 20}
	end := SightEnd(origin, math.Pi/2, 100)
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-120) > 1e-9 {
		t.Errorf("SightEnd = %v, want {10 120}", end)
	}
}
