package factory

import (
	"github.com/automoto/topdown/archetypes"
	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrace opens a trace file in dir. An empty dir creates the entity
// with tracing disabled.
func CreateTrace(ecs *ecs.ECS, dir string) (*donburi.Entry, error) {
	trace := archetypes.Trace.Spawn(ecs)
	if dir == "" {
		return trace, nil
	}

	rec, err := telemetry.CreateRecorder(dir, telemetry.NewRunID())
	if err != nil {
		return trace, err
	}
	components.Trace.SetValue(trace, components.TraceData{Recorder: rec})
	return trace, nil
}
