package scratch

import (
	"github.com/phrazzld/puzzles/internal/puzzle"
)

// Solver adapts Service to the puzzle.Solver contract (day 4).
type Solver struct {
	svc Service
}

// NewSolver creates a day 4 solver backed by svc.
func NewSolver(svc Service) *Solver {
	return &Solver{svc: svc}
}

// Day implements puzzle.Solver.
func (s *Solver) Day() int { return 4 }

// Name implements puzzle.Solver.
func (s *Solver) Name() string { return puzzleName }

// Part1 returns the total score of the deck.
func (s *Solver) Part1(lines []string) (string, error) {
	deck, err := ParseDeck(lines)
	if err != nil {
		return "", err
	}
	total, err := s.svc.TotalPoints(deck)
	if err != nil {
		return "", err
	}
	return puzzle.FormatUint(total), nil
}

// Part2 returns the total number of card instances after the cascade.
func (s *Solver) Part2(lines []string) (string, error) {
	deck, err := ParseDeck(lines)
	if err != nil {
		return "", err
	}
	total, err := s.svc.TotalInstances(deck)
	if err != nil {
		return "", err
	}
	return puzzle.FormatInt(total), nil
}

var _ puzzle.Solver = (*Solver)(nil)
