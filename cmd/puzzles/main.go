// Package main implements the entry point for the puzzle runner, which reads
// each configured day's input files and prints the answers.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/puzzles/internal/calibration"
	"github.com/phrazzld/puzzles/internal/config"
	"github.com/phrazzld/puzzles/internal/cubes"
	"github.com/phrazzld/puzzles/internal/events"
	"github.com/phrazzld/puzzles/internal/gears"
	"github.com/phrazzld/puzzles/internal/platform/logger"
	"github.com/phrazzld/puzzles/internal/puzzle"
	"github.com/phrazzld/puzzles/internal/runner"
	"github.com/phrazzld/puzzles/internal/scratch"
)

// application holds the wired components of one run.
type application struct {
	config *config.Config
	logger *slog.Logger
	runner *runner.Runner
}

// main is the entry point for the puzzle runner.
// Answers go to stdout; logs go to stderr.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.runner.Run(ctx); err != nil {
		app.logger.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// initializeApp loads configuration, sets up logging and wires the runner.
// Answers are written to out.
func initializeApp(out io.Writer) (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"input_dir", cfg.Puzzles.InputDir,
		"days", cfg.Puzzles.Days,
		"scratch_strategy", cfg.Scratch.Strategy)

	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle registry: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(events.NewWriterHandler(out))

	r := runner.NewRunner(registry, emitter, runner.RunnerConfig{
		InputDir: cfg.Puzzles.InputDir,
		Days:     cfg.Puzzles.Days,
	}, l)

	return &application{config: cfg, logger: l, runner: r}, nil
}

// buildRegistry creates every solver with its configured parameters.
func buildRegistry(cfg *config.Config) (*puzzle.Registry, error) {
	params, err := scratch.NewParams(cfg.Scratch.Strategy)
	if err != nil {
		return nil, err
	}

	bag := cubes.Round{Red: cfg.Cubes.Red, Green: cfg.Cubes.Green, Blue: cfg.Cubes.Blue}

	return puzzle.NewRegistry(
		calibration.NewSolver(),
		cubes.NewSolver(bag),
		gears.NewSolver(),
		scratch.NewSolver(scratch.NewServiceWithParams(params)),
	)
}
