package systems

import (
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves every body by velocity*dt, one axis at a time, and
// stops it flush against solid objects.
func UpdateMovement(ecs *ecs.ECS) {
	dt := deltaTime()
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		mv := components.Movement.Get(e)
		obj := components.Object.Get(e).Object

		dx, hitX := resolveAxis(obj, mv.Velocity.X*dt, 0)
		obj.X += dx
		if hitX {
			mv.Velocity.X = 0
		}

		dy, hitY := resolveAxis(obj, 0, mv.Velocity.Y*dt)
		obj.Y += dy
		if hitY {
			mv.Velocity.Y = 0
		}
	})
}

// resolveAxis returns how far obj may move along the single nonzero axis of
// (dx, dy) and whether a solid object cut the move short.
func resolveAxis(obj *resolv.Object, dx, dy float64) (float64, bool) {
	if dx == 0 && dy == 0 {
		return 0, false
	}

	free := dx + dy
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return free, false
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return free, false
	}

	contact := check.ContactWithObject(solids[0])
	if dx != 0 {
		return contact.X(), true
	}
	return contact.Y(), true
}
