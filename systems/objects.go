package systems

import (
	"github.com/automoto/topdown/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-files moved collision objects into their space cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
