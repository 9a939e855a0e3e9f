package components

import (
	"github.com/automoto/topdown/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ControlsData holds an entity's control tracker and the last known pointer
// position in world space.
type ControlsData struct {
	*controls.State[ebiten.Key]
	Pointer math.Vec2
}

var Controls = donburi.NewComponentType[ControlsData]()
