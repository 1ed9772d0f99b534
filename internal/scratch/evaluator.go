package scratch

import "github.com/phrazzld/puzzles/internal/domain"

// Evaluator counts matches per card and remembers each result by card ID.
// An Evaluator belongs to a single computation and is not safe for
// concurrent use.
type Evaluator struct {
	cache map[int]int
}

// NewEvaluator creates an Evaluator with an empty cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[int]int)}
}

// Matches returns how many of the card's owned numbers are in its winning set.
// A repeated owned number counts once per occurrence.
func (e *Evaluator) Matches(card *domain.Card) int {
	if n, ok := e.cache[card.ID]; ok {
		return n
	}

	n := 0
	for _, num := range card.Owned {
		if card.IsWinning(num) {
			n++
		}
	}
	e.cache[card.ID] = n
	return n
}

// Len returns the number of cards whose match count has been computed.
func (e *Evaluator) Len() int {
	return len(e.cache)
}
