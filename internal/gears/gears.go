// Package gears solves the day 3 puzzle: an engine schematic in which numbers
// count as part numbers when a symbol touches them.
package gears

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/phrazzld/puzzles/internal/domain"
	"github.com/phrazzld/puzzles/internal/puzzle"
)

const puzzleName = "gears"

var (
	reNumber = regexp.MustCompile(`[0-9]+`)
	reSymbol = regexp.MustCompile(`[^0-9.]`)
)

// gearSymbol marks a gear candidate.
const gearSymbol = "*"

// Number is a run of digits on one row, spanning columns Start..End inclusive.
type Number struct {
	Value int
	Row   int
	Start int
	End   int
}

// Touches reports whether the cell (row, col) is in the 8-neighbourhood of n.
func (n Number) Touches(row, col int) bool {
	return row >= n.Row-1 && row <= n.Row+1 &&
		col >= n.Start-1 && col <= n.End+1
}

// Symbol is any character that is neither a digit nor '.'.
type Symbol struct {
	Text string
	Row  int
	Col  int
}

// Schematic holds everything located in the grid.
type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

// ParseSchematic locates numbers and symbols row by row.
func ParseSchematic(lines []string) (*Schematic, error) {
	s := &Schematic{}
	for row, line := range lines {
		for _, loc := range reNumber.FindAllStringIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			v, err := strconv.Atoi(text)
			if err != nil {
				err = domain.NewLineError(puzzleName, line, "bad number", fmt.Errorf("%w: %v", domain.ErrInvalidNumber, err))
				return nil, domain.AtLine(err, row+1)
			}
			s.Numbers = append(s.Numbers, Number{Value: v, Row: row, Start: loc[0], End: loc[1] - 1})
		}
		for _, loc := range reSymbol.FindAllStringIndex(line, -1) {
			s.Symbols = append(s.Symbols, Symbol{Text: line[loc[0]:loc[1]], Row: row, Col: loc[0]})
		}
	}
	return s, nil
}

// PartNumberSum adds every number touched by at least one symbol.
func (s *Schematic) PartNumberSum() int {
	sum := 0
	for _, n := range s.Numbers {
		for _, sym := range s.Symbols {
			if n.Touches(sym.Row, sym.Col) {
				sum += n.Value
				break
			}
		}
	}
	return sum
}

// GearRatioSum adds, for every '*' touching exactly two numbers, their product.
func (s *Schematic) GearRatioSum() int {
	sum := 0
	for _, sym := range s.Symbols {
		if sym.Text != gearSymbol {
			continue
		}
		var adjacent []int
		for _, n := range s.Numbers {
			if n.Touches(sym.Row, sym.Col) {
				adjacent = append(adjacent, n.Value)
			}
		}
		if len(adjacent) == 2 {
			sum += adjacent[0] * adjacent[1]
		}
	}
	return sum
}

// Solver is the day 3 puzzle.
type Solver struct{}

// NewSolver creates a day 3 solver.
func NewSolver() *Solver { return &Solver{} }

// Day implements puzzle.Solver.
func (*Solver) Day() int { return 3 }

// Name implements puzzle.Solver.
func (*Solver) Name() string { return puzzleName }

// Part1 sums the part numbers.
func (*Solver) Part1(lines []string) (string, error) {
	s, err := ParseSchematic(lines)
	if err != nil {
		return "", err
	}
	return puzzle.FormatInt(s.PartNumberSum()), nil
}

// Part2 sums the gear ratios.
func (*Solver) Part2(lines []string) (string, error) {
	s, err := ParseSchematic(lines)
	if err != nil {
		return "", err
	}
	return puzzle.FormatInt(s.GearRatioSum()), nil
}

var _ puzzle.Solver = (*Solver)(nil)
