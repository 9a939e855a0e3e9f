package kinematics

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// SightAngle is the rotation, in radians, of a line from player toward pointer.
// 0 faces +x and positive angles turn toward +y (screen down).
func SightAngle(player, pointer dmath.Vec2) float64 {
	dx := player.X - pointer.X
	dy := player.Y - pointer.Y
	return math.Atan2(-dy, -dx)
}

// SightEnd returns the far end of a line of the given length rotated by angle
// around origin.
func SightEnd(origin dmath.Vec2, angle, length float64) dmath.Vec2 {
	return dmath.Vec2{
		X: origin.X + math.Cos(angle)*length,
		Y: origin.Y + math.Sin(angle)*length,
	}
}
