// Package runner loads puzzle inputs from disk, solves them and publishes the
// answers as events.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/puzzles/internal/events"
	"github.com/phrazzld/puzzles/internal/puzzle"
)

// ErrNoDays is returned when a run is started with nothing to solve.
var ErrNoDays = errors.New("no days to run")

// Parts lists the puzzle parts solved for every day, in order.
var Parts = []int{1, 2}

// RunnerConfig holds configuration for the runner
type RunnerConfig struct {
	// InputDir is the root holding one dayNN directory per puzzle
	InputDir string

	// Days are solved in the order given
	Days []int
}

// Runner drives registered solvers over their input files.
type Runner struct {
	registry *puzzle.Registry
	emitter  events.EventEmitter
	config   RunnerConfig
	logger   *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(
	registry *puzzle.Registry,
	emitter events.EventEmitter,
	config RunnerConfig,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		registry: registry,
		emitter:  emitter,
		config:   config,
		logger:   logger.With("component", "runner"),
	}
}

// InputPath returns the file holding the input for one part of one day:
// <dir>/dayNN/partN.txt.
func InputPath(dir string, day, part int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d", day), fmt.Sprintf("part%d.txt", part))
}

// LoadInput reads an input file and splits it into lines.
func LoadInput(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return puzzle.SplitLines(string(data)), nil
}

// Run solves every configured day. The first failure aborts the run; answers
// already emitted stay emitted. Cancellation is checked between parts.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.config.Days) == 0 {
		return ErrNoDays
	}

	log := r.logger.With("run_id", uuid.New())
	log.Info("starting run", "days", r.config.Days, "input_dir", r.config.InputDir)
	start := time.Now()

	for _, day := range r.config.Days {
		solver, err := r.registry.Lookup(day)
		if err != nil {
			log.Error("no solver for day", "day", day, "error", err)
			return err
		}

		for _, part := range Parts {
			if err := ctx.Err(); err != nil {
				log.Warn("run cancelled", "day", day, "part", part)
				return err
			}
			if err := r.solve(ctx, log, solver, part); err != nil {
				return err
			}
		}
	}

	log.Info("run completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (r *Runner) solve(ctx context.Context, log *slog.Logger, solver puzzle.Solver, part int) error {
	log = log.With("day", solver.Day(), "part", part, "puzzle", solver.Name())

	path := InputPath(r.config.InputDir, solver.Day(), part)
	lines, err := LoadInput(path)
	if err != nil {
		log.Error("failed to load input", "path", path, "error", err)
		return fmt.Errorf("day %d part %d: %w", solver.Day(), part, err)
	}

	start := time.Now()
	answer, err := puzzle.Solve(solver, part, lines)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("failed to solve puzzle", "path", path, "error", err)
		return fmt.Errorf("day %d part %d: %w", solver.Day(), part, err)
	}

	log.Debug("puzzle solved",
		"answer", answer,
		"lines", len(lines),
		"elapsed_ms", elapsed.Milliseconds())

	if err := r.emitter.EmitEvent(ctx, events.NewSolvedEvent(solver.Day(), part, solver.Name(), answer, elapsed)); err != nil {
		return fmt.Errorf("failed to publish answer for day %d part %d: %w", solver.Day(), part, err)
	}
	return nil
}
