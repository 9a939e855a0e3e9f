package systems

import (
	"image/color"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var wallColor = color.RGBA{70, 70, 70, 255}

// DrawLevel fills the arena walls.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), wallColor, false)
	})
}
