package telemetry

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/automoto/topdown/kinematics"
	"github.com/gocarina/gocsv"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestNewSample(t *testing.T) {
	cfg := kinematics.DefaultConfig()
	s := kinematics.State{
		Velocity:     dmath.Vec2{X: 3, Y: 4},
		Acceleration: dmath.Vec2{X: 300},
		Facing:       kinematics.Facing{X: kinematics.FacingRight},
	}
	in := kinematics.Input{X: 1, Run: true}

	got := NewSample("run", 30, 1.0/60, in, s, cfg)
	if got.MaxVelocity != cfg.RunMaxVelocity {
		t.Errorf("MaxVelocity = %v, want %v", got.MaxVelocity, cfg.RunMaxVelocity)
	}
	if math.Abs(got.Time-0.5) > 1e-9 {
		t.Errorf("Time = %v, want 0.5", got.Time)
	}
	if got.Speed() != 5 {
		t.Errorf("Speed() = %v, want 5", got.Speed())
	}
	if got.FacingX != "right" || got.FacingY != "" {
		t.Errorf("facing = %q/%q, want right/empty", got.FacingX, got.FacingY)
	}
}

func TestSummarize(t *testing.T) {
	samples := []Sample{
		{Frame: 1, Time: 0.5, VelX: 0},
		{Frame: 2, Time: 1.0, VelX: 3, VelY: 4},
		{Frame: 3, Time: 1.5, VelX: -10},
		{Frame: 4, Time: 2.0, VelX: 0},
	}

	got := Summarize(samples)
	if got.Frames != 4 {
		t.Errorf("Frames = %d, want 4", got.Frames)
	}
	if got.PeakSpeed != 10 {
		t.Errorf("PeakSpeed = %v, want 10", got.PeakSpeed)
	}
	if math.Abs(got.MeanSpeed-3.75) > 1e-9 {
		t.Errorf("MeanSpeed = %v, want 3.75", got.MeanSpeed)
	}
	if math.Abs(got.MovingTime-1.0) > 1e-9 {
		t.Errorf("MovingTime = %v, want 1.0", got.MovingTime)
	}
	if got.Duration != 2.0 || got.FinalSpeed != 0 {
		t.Errorf("Duration/FinalSpeed = %v/%v, want 2/0", got.Duration, got.FinalSpeed)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, "abc")

	for i := 0; i < flushEvery+5; i++ {
		if err := r.Record(Sample{Frame: i, VelX: float64(i)}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	out := buf.String()
	if n := strings.Count(out, "run_id,"); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}

	var back []Sample
	if err := gocsv.UnmarshalString(out, &back); err != nil {
		t.Fatalf("reading trace: %v", err)
	}
	if len(back) != flushEvery+5 {
		t.Fatalf("read %d samples, want %d", len(back), flushEvery+5)
	}
	if back[7].RunID != "abc" || back[7].VelX != 7 {
		t.Errorf("sample 7 = %+v, want run abc with vel_x 7", back[7])
	}
	if r.Summary().PeakSpeed != float64(flushEvery+4) {
		t.Errorf("PeakSpeed = %v, want %d", r.Summary().PeakSpeed, flushEvery+4)
	}
}

func TestCreateRecorder(t *testing.T) {
	dir := t.TempDir()
	id := NewRunID()
	r, err := CreateRecorder(dir+"/traces", id)
	if err != nil {
		t.Fatalf("CreateRecorder() error = %v", err)
	}
	if err := r.Record(Sample{Frame: 1}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(r.Path())
	if err != nil {
		t.Fatalf("reading %s: %v", r.Path(), err)
	}
	if !strings.Contains(string(data), id) {
		t.Errorf("trace does not contain run id %s", id)
	}
}
