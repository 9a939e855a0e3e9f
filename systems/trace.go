package systems

import (
	"log/slog"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/tags"
	"github.com/automoto/topdown/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTrace appends the player's finished frame to the trace, if one is
// open. Runs last so the sample sees the integrated state.
func UpdateTrace(ecs *ecs.ECS) {
	entry, ok := components.Trace.First(ecs.World)
	if !ok {
		return
	}
	trace := components.Trace.Get(entry)
	if trace.Recorder == nil {
		return
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	mv := components.Movement.Get(player)

	trace.Frame++
	sample := telemetry.NewSample(trace.Recorder.RunID(), trace.Frame, deltaTime(), mv.Input, mv.State, mv.Config)
	if err := trace.Recorder.Record(sample); err != nil {
		slog.Warn("trace disabled", "path", trace.Recorder.Path(), "err", err)
		_ = trace.Recorder.Close()
		trace.Recorder = nil
	}
}

// CloseTrace flushes the open trace and logs its summary.
func CloseTrace(ecs *ecs.ECS) {
	components.Trace.Each(ecs.World, func(e *donburi.Entry) {
		trace := components.Trace.Get(e)
		if trace.Recorder == nil {
			return
		}
		if err := trace.Recorder.Close(); err != nil {
			slog.Warn("could not close trace", "path", trace.Recorder.Path(), "err", err)
		}
		slog.Info("trace written",
			"path", trace.Recorder.Path(),
			"run_id", trace.Recorder.RunID(),
			"summary", trace.Recorder.Summary(),
		)
		trace.Recorder = nil
	})
}
