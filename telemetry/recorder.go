package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// flushEvery is the number of buffered samples written per CSV batch.
const flushEvery = 120

// Recorder buffers samples and writes them as CSV in batches.
type Recorder struct {
	runID string
	out   io.Writer
	file  *os.File

	pending       []Sample
	all           []Sample
	headerWritten bool
}

// NewRecorder writes samples to w.
func NewRecorder(w io.Writer, runID string) *Recorder {
	return &Recorder{runID: runID, out: w}
}

// CreateRecorder opens dir/trace-<runID>.csv for writing, creating dir.
func CreateRecorder(dir, runID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("trace-%s.csv", runID))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	r := NewRecorder(f, runID)
	r.file = f
	return r, nil
}

// RunID identifies the trace.
func (r *Recorder) RunID() string {
	return r.runID
}

// Path is the file being written, or "" when writing to a plain writer.
func (r *Recorder) Path() string {
	if r.file == nil {
		return ""
	}
	return r.file.Name()
}

// Record buffers a sample, flushing when the batch is full.
func (r *Recorder) Record(s Sample) error {
	if s.RunID == "" {
		s.RunID = r.runID
	}
	r.pending = append(r.pending, s)
	r.all = append(r.all, s)
	if len(r.pending) >= flushEvery {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered samples.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(r.pending, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(r.pending, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	r.pending = r.pending[:0]
	return nil
}

// Summary summarises every sample recorded so far.
func (r *Recorder) Summary() Summary {
	return Summarize(r.all)
}

// Close flushes and closes the underlying file, if any.
func (r *Recorder) Close() error {
	err := r.Flush()
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
