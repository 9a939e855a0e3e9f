// Command kinetrace runs a scripted input sequence through the movement
// controller without a window and writes the per-frame state as CSV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/automoto/topdown/config"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/replay"
	"github.com/automoto/topdown/telemetry"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "kinetrace:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kinetrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scriptPath := fs.String("script", "", "replay script (YAML)")
	configPath := fs.String("config", "", "YAML config merged over the built-in defaults")
	outPath := fs.String("out", "", "CSV output file (default stdout)")
	policy := fs.String("policy", "", "override the deceleration policy (turnaround|coast)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scriptPath == "" {
		return errors.New("-script is required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	movement, err := cfg.Movement()
	if err != nil {
		return err
	}
	if *policy != "" {
		if movement.Policy, err = kinematics.ParsePolicy(*policy); err != nil {
			return err
		}
	}

	script, err := replay.LoadScript(*scriptPath)
	if err != nil {
		return err
	}

	logger.Debug("replay starting",
		"script", *scriptPath,
		"frames", script.TotalFrames(),
		"dt", script.DT,
		"policy", movement.Policy,
	)

	out, closeOut, err := openOutput(*outPath, stdout)
	if err != nil {
		return err
	}
	runID := telemetry.NewRunID()
	rec := telemetry.NewRecorder(out, runID)
	final, err := record(script, movement, rec)
	if cerr := closeOut(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	if err != nil {
		return err
	}

	logger.Info("replay finished",
		"run_id", runID,
		"policy", movement.Policy,
		"final_velocity", fmt.Sprintf("%.2f,%.2f", final.Velocity.X, final.Velocity.Y),
		"summary", rec.Summary(),
	)
	return nil
}

// openOutput returns stdout, or a created file and its Close.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}

// record replays the script into rec and flushes it.
func record(script *replay.Script, movement kinematics.Config, rec *telemetry.Recorder) (kinematics.State, error) {
	var recErr error
	final, err := replay.Run(script, movement, func(f replay.Frame) {
		if recErr != nil {
			return
		}
		recErr = rec.Record(telemetry.NewSample(rec.RunID(), f.Index, script.DT, f.Input, f.State, movement))
	})
	if err != nil {
		return final, err
	}
	if recErr != nil {
		return final, fmt.Errorf("writing trace: %w", recErr)
	}
	return final, rec.Close()
}
