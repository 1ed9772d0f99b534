// Package cubes solves the day 2 puzzle: games in which coloured cubes are
// drawn from a bag in several rounds.
package cubes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/puzzles/internal/domain"
	"github.com/phrazzld/puzzles/internal/puzzle"
)

const puzzleName = "cubes"

var (
	reGame    = regexp.MustCompile(`^\s*Game\s*([0-9]+)\s*$`)
	reCubeSet = regexp.MustCompile(`^\s*([0-9]+)\s*(red|green|blue)\s*$`)
)

// Round is the number of cubes of each colour shown in one draw.
type Round struct {
	Red   int
	Green int
	Blue  int
}

// Fits reports whether r could have been drawn from bag.
func (r Round) Fits(bag Round) bool {
	return r.Red <= bag.Red && r.Green <= bag.Green && r.Blue <= bag.Blue
}

// Max returns the per-colour maximum of r and o.
func (r Round) Max(o Round) Round {
	return Round{
		Red:   max(r.Red, o.Red),
		Green: max(r.Green, o.Green),
		Blue:  max(r.Blue, o.Blue),
	}
}

// Power is the product of the three colour counts.
func (r Round) Power() int {
	return r.Red * r.Green * r.Blue
}

// DefaultBag is the bag content part 1 asks about.
var DefaultBag = Round{Red: 12, Green: 13, Blue: 14}

// Game is one input line: an ID and the rounds drawn.
type Game struct {
	ID     int
	Rounds []Round
}

// Possible reports whether every round of g fits bag.
func (g Game) Possible(bag Round) bool {
	for _, r := range g.Rounds {
		if !r.Fits(bag) {
			return false
		}
	}
	return true
}

// MinimumBag returns the smallest bag every round of g fits.
func (g Game) MinimumBag() Round {
	var bag Round
	for _, r := range g.Rounds {
		bag = bag.Max(r)
	}
	return bag
}

// ParseGame parses "Game <n>: <count> <colour>, ...; ...".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, domain.NewLineError(puzzleName, line, "missing ':'", domain.ErrMalformedLine)
	}

	m := reGame.FindStringSubmatch(head)
	if m == nil {
		return Game{}, domain.NewLineError(puzzleName, line, "expected 'Game <n>' before ':'", domain.ErrMalformedLine)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, domain.NewLineError(puzzleName, line, "bad game number", fmt.Errorf("%w: %v", domain.ErrInvalidNumber, err))
	}

	game := Game{ID: id}
	for _, roundText := range strings.Split(body, ";") {
		round, err := parseRound(roundText)
		if err != nil {
			return Game{}, domain.NewLineError(puzzleName, line, "bad round", err)
		}
		game.Rounds = append(game.Rounds, round)
	}
	return game, nil
}

func parseRound(s string) (Round, error) {
	var r Round
	for _, set := range strings.Split(s, ",") {
		m := reCubeSet.FindStringSubmatch(set)
		if m == nil {
			return Round{}, fmt.Errorf("%w: cube set %q", domain.ErrMalformedLine, strings.TrimSpace(set))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Round{}, fmt.Errorf("%w: %v", domain.ErrInvalidNumber, err)
		}
		switch m[2] {
		case "red":
			r.Red = n
		case "green":
			r.Green = n
		case "blue":
			r.Blue = n
		}
	}
	return r, nil
}

// ParseGames parses every line, stopping at the first bad one.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, domain.AtLine(err, i+1)
		}
		games = append(games, g)
	}
	return games, nil
}

// Solver is the day 2 puzzle.
type Solver struct {
	bag Round
}

// NewSolver creates a day 2 solver checking games against bag.
func NewSolver(bag Round) *Solver {
	return &Solver{bag: bag}
}

// Day implements puzzle.Solver.
func (s *Solver) Day() int { return 2 }

// Name implements puzzle.Solver.
func (s *Solver) Name() string { return puzzleName }

// Part1 sums the IDs of games possible with the configured bag.
func (s *Solver) Part1(lines []string) (string, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(s.bag) {
			sum += g.ID
		}
	}
	return puzzle.FormatInt(sum), nil
}

// Part2 sums the power of each game's minimum bag.
func (s *Solver) Part2(lines []string) (string, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimumBag().Power()
	}
	return puzzle.FormatInt(sum), nil
}

var _ puzzle.Solver = (*Solver)(nil)
