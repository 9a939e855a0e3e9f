package factory

import (
	"github.com/automoto/topdown/archetypes"
	"github.com/automoto/topdown/assets"
	"github.com/automoto/topdown/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores a loaded map in a Level entity.
func CreateLevel(ecs *ecs.ECS, data *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: data})
	return level
}
