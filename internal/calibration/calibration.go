// Package calibration solves the day 1 puzzle: recover a two-digit value from
// each line using its first and last digit tokens, and sum them.
package calibration

import (
	"errors"
	"strings"

	"github.com/phrazzld/puzzles/internal/domain"
	"github.com/phrazzld/puzzles/internal/puzzle"
)

const puzzleName = "calibration"

// ErrNoDigit is returned when a line contains no recognised digit token.
var ErrNoDigit = errors.New("no digit token in line")

// token maps a literal spelling to its digit value.
type token struct {
	text  string
	value int
}

var digitTokens = []token{
	{"0", 0}, {"1", 1}, {"2", 2}, {"3", 3}, {"4", 4},
	{"5", 5}, {"6", 6}, {"7", 7}, {"8", 8}, {"9", 9},
}

var wordTokens = append(append([]token(nil), digitTokens...),
	token{"one", 1}, token{"two", 2}, token{"three", 3},
	token{"four", 4}, token{"five", 5}, token{"six", 6},
	token{"seven", 7}, token{"eight", 8}, token{"nine", 9},
)

// first returns the value of the token starting earliest in line.
func first(line string, tokens []token) (int, bool) {
	for i := 0; i < len(line); i++ {
		for _, t := range tokens {
			if strings.HasPrefix(line[i:], t.text) {
				return t.value, true
			}
		}
	}
	return 0, false
}

// last returns the value of the token ending latest in line. Tokens may
// overlap the one found by first, so "eightwo" yields 8 then 2.
func last(line string, tokens []token) (int, bool) {
	for end := len(line); end > 0; end-- {
		for _, t := range tokens {
			if strings.HasSuffix(line[:end], t.text) {
				return t.value, true
			}
		}
	}
	return 0, false
}

// Value returns 10*first + last for a single line.
func Value(line string, words bool) (int, error) {
	tokens := digitTokens
	if words {
		tokens = wordTokens
	}

	f, ok := first(line, tokens)
	if !ok {
		return 0, domain.NewLineError(puzzleName, line, "no digit found", ErrNoDigit)
	}
	l, _ := last(line, tokens)
	return 10*f + l, nil
}

// Sum adds up the value of every line.
func Sum(lines []string, words bool) (int, error) {
	total := 0
	for i, line := range lines {
		v, err := Value(line, words)
		if err != nil {
			return 0, domain.AtLine(err, i+1)
		}
		total += v
	}
	return total, nil
}

// Solver is the day 1 puzzle.
type Solver struct{}

// NewSolver creates a day 1 solver.
func NewSolver() *Solver { return &Solver{} }

// Day implements puzzle.Solver.
func (Solver) Day() int { return 1 }

// Name implements puzzle.Solver.
func (Solver) Name() string { return puzzleName }

// Part1 sums values using numeric digits only.
func (Solver) Part1(lines []string) (string, error) {
	total, err := Sum(lines, false)
	if err != nil {
		return "", err
	}
	return puzzle.FormatInt(total), nil
}

// Part2 sums values counting spelled-out digits as well.
func (Solver) Part2(lines []string) (string, error) {
	total, err := Sum(lines, true)
	if err != nil {
		return "", err
	}
	return puzzle.FormatInt(total), nil
}

var _ puzzle.Solver = Solver{}
