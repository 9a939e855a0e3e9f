package components

import (
	"github.com/automoto/topdown/kinematics"
	"github.com/yohamta/donburi"
)

// MovementData is the kinematics state of an actor together with its tuning.
// Only the kinematics systems and the position integrator write to it.
type MovementData struct {
	kinematics.State
	Config kinematics.Config
	Input  kinematics.Input // snapshot used this frame
}

var Movement = donburi.NewComponentType[MovementData]()
