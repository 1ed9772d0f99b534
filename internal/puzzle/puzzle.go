// Package puzzle defines the contract every daily solver implements and a
// registry the runner uses to look solvers up by day.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Common registry errors
var (
	// ErrUnknownDay is returned when no solver is registered for a day.
	ErrUnknownDay = errors.New("no solver registered for day")

	// ErrDuplicateDay is returned when two solvers claim the same day.
	ErrDuplicateDay = errors.New("solver already registered for day")

	// ErrInvalidPart is returned when a part other than 1 or 2 is requested.
	ErrInvalidPart = errors.New("part must be 1 or 2")
)

// Solver computes the two answers of one daily puzzle from its input lines.
// Implementations are pure: no I/O, no logging, no retained state between calls.
type Solver interface {
	// Day returns the puzzle's day number.
	Day() int

	// Name returns a short identifier used in logs and errors.
	Name() string

	// Part1 returns the first answer as a decimal string.
	Part1(lines []string) (string, error)

	// Part2 returns the second answer as a decimal string.
	Part2(lines []string) (string, error)
}

// Solve runs the requested part of s.
func Solve(s Solver, part int, lines []string) (string, error) {
	switch part {
	case 1:
		return s.Part1(lines)
	case 2:
		return s.Part2(lines)
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidPart, part)
	}
}

// Registry maps days to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates a registry holding the given solvers.
// Returns an error if two solvers share a day.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s to the registry.
func (r *Registry) Register(s Solver) error {
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// SplitLines splits text into lines. A trailing newline does not produce a
// final empty line, and a '\r' before each '\n' is dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FormatInt renders an answer the way every solver reports it.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatUint renders an unsigned answer.
func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
