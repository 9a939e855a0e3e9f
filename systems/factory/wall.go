package factory

import (
	"github.com/automoto/topdown/archetypes"
	"github.com/automoto/topdown/assets"
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
