package systems

import (
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer is the pre-update phase: it snapshots the controls, resets and
// re-applies acceleration, and points the sight at the cursor.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controls.Get(e)
		mv := components.Movement.Get(e)
		obj := components.Object.Get(e).Object

		mv.Input = ctrl.Snapshot()
		kinematics.Reset(&mv.State)
		kinematics.ApplyInput(&mv.State, mv.Input, mv.Config, wallPermit(obj))

		player := components.Player.Get(e)
		if player.Sight != nil && player.Sight.Valid() {
			sight := components.Sight.Get(player.Sight)
			sight.Angle = kinematics.SightAngle(objectCenter(obj), ctrl.Pointer)
		}
	})
}

// wallPermit refuses acceleration into a solid object the body already touches.
func wallPermit(obj *resolv.Object) kinematics.Permit {
	return func(axis kinematics.Axis, dir int) bool {
		var dx, dy float64
		if axis == kinematics.AxisX {
			dx = float64(dir)
		} else {
			dy = float64(dir)
		}
		return obj.Check(dx, dy, tags.ResolvSolid) == nil
	}
}

func objectCenter(obj *resolv.Object) math.Vec2 {
	return math.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}
