package systems

import (
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSight anchors each player's sight at the body centre and advances the
// spawn ease-in of its length.
func UpdateSight(ecs *ecs.ECS) {
	dt := float32(deltaTime())
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Sight == nil || !player.Sight.Valid() {
			return
		}
		sight := components.Sight.Get(player.Sight)
		sight.Origin = objectCenter(components.Object.Get(e).Object)

		if sight.Grow != nil {
			length, done := sight.Grow.Update(dt)
			sight.Length = float64(length)
			if done {
				sight.Length = sight.MaxLength
				sight.Grow = nil
			}
		}
	})
}
