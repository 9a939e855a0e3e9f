package systems

import (
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics is the post-update phase: deceleration, then velocity
// integration. Runs after every system that may add acceleration.
func UpdateKinematics(ecs *ecs.ECS) {
	dt := deltaTime()
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		kinematics.Decelerate(&mv.State, mv.Input, mv.Config)
		kinematics.Integrate(&mv.State, mv.Input, mv.Config, dt)
	})
}

// deltaTime is the fixed step of one Update call.
func deltaTime() float64 {
	return 1 / float64(ebiten.TPS())
}
