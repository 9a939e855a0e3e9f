package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/topdown/telemetry"
	"github.com/gocarina/gocsv"
)

func TestRunWritesTrace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.csv")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-script", "testdata/turnaround.yaml", "-out", out}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading trace: %v", err)
	}
	var samples []telemetry.Sample
	if err := gocsv.UnmarshalBytes(data, &samples); err != nil {
		t.Fatalf("parsing trace: %v", err)
	}
	if len(samples) != 255 {
		t.Fatalf("samples = %d, want 255", len(samples))
	}
	if samples[60].HeldX != -1 {
		t.Errorf("frame 61 held_x = %d, want -1 (newer Left press)", samples[60].HeldX)
	}
	last := samples[len(samples)-1]
	if last.VelX != 0 || last.VelY != 0 {
		t.Errorf("final velocity = %v,%v, want rest", last.VelX, last.VelY)
	}
	if !strings.Contains(stderr.String(), "replay finished") {
		t.Errorf("summary not logged: %s", stderr.String())
	}
}

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-script", "testdata/turnaround.yaml", "-policy", "coast"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "run_id,frame,time,") {
		t.Errorf("stdout does not start with the CSV header: %.40q", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing script flag", nil},
		{"missing script file", []string{"-script", "testdata/nope.yaml"}},
		{"unknown policy", []string{"-script", "testdata/turnaround.yaml", "-policy", "drift"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Error("run() error = nil, want failure")
			}
		})
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	var stdout, stderr bytes.Buffer
	err := run([]string{"-script", "testdata/turnaround.yaml", "-out", "/dev/full"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("run() error = nil, want the failed write reported")
	}
	if strings.Contains(stderr.String(), "replay finished") {
		t.Errorf("summary logged despite failed write: %s", stderr.String())
	}
}

func TestOpenOutputReturnsFileClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, closeOut, err := openOutput(path, nil)
	if err != nil {
		t.Fatalf("openOutput() error = %v", err)
	}
	if _, ok := w.(*os.File); !ok {
		t.Fatalf("writer = %T, want *os.File", w)
	}
	if err := closeOut(); err != nil {
		t.Fatalf("first close error = %v", err)
	}
	if err := closeOut(); err == nil {
		t.Error("second close error = nil, want the file's own close error")
	}
}

func TestOpenOutputStdout(t *testing.T) {
	var buf bytes.Buffer
	w, closeOut, err := openOutput("", &buf)
	if err != nil {
		t.Fatalf("openOutput() error = %v", err)
	}
	if w != &buf {
		t.Errorf("writer = %v, want stdout", w)
	}
	if err := closeOut(); err != nil {
		t.Errorf("close error = %v, want nil for stdout", err)
	}
}
