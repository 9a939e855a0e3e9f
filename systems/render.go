package systems

import (
	"github.com/automoto/topdown/components"
	cfg "github.com/automoto/topdown/config"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer fills each player's body rectangle. The camera is fixed, so
// world and screen coordinates coincide.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	c := cfg.C.Player.Color.ToRGBA()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})
}

// DrawSight strokes each sight line from its origin along its angle.
func DrawSight(ecs *ecs.ECS, screen *ebiten.Image) {
	c := cfg.C.Sight.Color.ToRGBA()
	thickness := float32(cfg.C.Sight.Thickness)
	tags.Sight.Each(ecs.World, func(e *donburi.Entry) {
		sight := components.Sight.Get(e)
		if sight.Length <= 0 {
			return
		}
		end := kinematics.SightEnd(sight.Origin, sight.Angle, sight.Length)
		vector.StrokeLine(screen,
			float32(sight.Origin.X), float32(sight.Origin.Y),
			float32(end.X), float32(end.Y),
			thickness, c, true)
	})
}
