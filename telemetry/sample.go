// Package telemetry records per-frame kinematics samples and summarises them.
package telemetry

import (
	"log/slog"
	"math"

	"github.com/automoto/topdown/kinematics"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is one frame of a kinematics trace.
type Sample struct {
	RunID       string  `csv:"run_id"`
	Frame       int     `csv:"frame"`
	Time        float64 `csv:"time"`
	HeldX       int     `csv:"held_x"`
	HeldY       int     `csv:"held_y"`
	Run         bool    `csv:"run"`
	MaxVelocity float64 `csv:"max_velocity"`
	VelX        float64 `csv:"vel_x"`
	VelY        float64 `csv:"vel_y"`
	AccX        float64 `csv:"acc_x"`
	AccY        float64 `csv:"acc_y"`
	FacingX     string  `csv:"facing_x"`
	FacingY     string  `csv:"facing_y"`
}

// NewRunID returns a fresh identifier for a trace.
func NewRunID() string {
	return uuid.NewString()
}

// NewSample captures the finished state of a frame.
func NewSample(runID string, frame int, dt float64, in kinematics.Input, s kinematics.State, cfg kinematics.Config) Sample {
	return Sample{
		RunID:       runID,
		Frame:       frame,
		Time:        float64(frame) * dt,
		HeldX:       in.X,
		HeldY:       in.Y,
		Run:         in.Run,
		MaxVelocity: kinematics.MaxVelocity(in, cfg),
		VelX:        s.Velocity.X,
		VelY:        s.Velocity.Y,
		AccX:        s.Acceleration.X,
		AccY:        s.Acceleration.Y,
		FacingX:     string(s.Facing.X),
		FacingY:     string(s.Facing.Y),
	}
}

// Speed is the magnitude of the sampled velocity.
func (s Sample) Speed() float64 {
	return math.Hypot(s.VelX, s.VelY)
}

// Summary aggregates a trace.
type Summary struct {
	Frames     int
	Duration   float64
	PeakSpeed  float64
	MeanSpeed  float64
	MovingTime float64 // seconds with nonzero velocity
	FinalSpeed float64
}

// Summarize computes summary statistics over samples.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	speeds := make([]float64, len(samples))
	moving := 0
	for i, s := range samples {
		speeds[i] = s.Speed()
		if speeds[i] != 0 {
			moving++
		}
	}

	last := samples[len(samples)-1]
	var dt float64
	if last.Frame > 0 {
		dt = last.Time / float64(last.Frame)
	}

	return Summary{
		Frames:     len(samples),
		Duration:   last.Time,
		PeakSpeed:  floats.Max(speeds),
		MeanSpeed:  stat.Mean(speeds, nil),
		MovingTime: float64(moving) * dt,
		FinalSpeed: speeds[len(speeds)-1],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Float64("duration", s.Duration),
		slog.Float64("peak_speed", s.PeakSpeed),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Float64("moving_time", s.MovingTime),
		slog.Float64("final_speed", s.FinalSpeed),
	)
}
