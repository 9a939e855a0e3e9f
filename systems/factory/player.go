package factory

import (
	"github.com/automoto/topdown/archetypes"
	"github.com/automoto/topdown/components"
	cfg "github.com/automoto/topdown/config"
	"github.com/automoto/topdown/controls"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on center, at rest, together with
// its sight line.
func CreatePlayer(ecs *ecs.ECS, center math.Vec2, movement kinematics.Config, scheme *controls.Scheme[ebiten.Key]) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.C.Player.Width, cfg.C.Player.Height
	obj := resolv.NewObject(center.X-w/2, center.Y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Controls.SetValue(player, components.ControlsData{
		State:   controls.NewState(scheme),
		Pointer: center,
	})
	components.Movement.SetValue(player, components.MovementData{
		Config: movement,
	})
	components.Player.SetValue(player, components.PlayerData{
		Sight: CreateSight(ecs, center),
	})

	return player
}

// CreateSight creates a sight line at origin that eases out to its full
// length.
func CreateSight(ecs *ecs.ECS, origin math.Vec2) *donburi.Entry {
	sight := archetypes.Sight.Spawn(ecs)

	maxLength := cfg.C.Sight.Length
	data := components.SightData{
		Origin:    origin,
		Length:    maxLength,
		MaxLength: maxLength,
	}
	if grow := cfg.C.Sight.GrowSeconds; grow > 0 {
		data.Length = 0
		data.Grow = gween.New(0, float32(maxLength), float32(grow), ease.OutCubic)
	}
	components.Sight.SetValue(sight, data)

	return sight
}
