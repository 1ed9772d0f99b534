package scratch

import (
	"errors"
	"fmt"
	"math"

	"github.com/phrazzld/puzzles/internal/domain"
)

// Common errors
var (
	ErrInvalidDeck = errors.New("invalid deck")
)

// Service defines the scratch-card aggregate operations
type Service interface {
	// TotalPoints sums the score of every card in the deck
	TotalPoints(deck domain.Deck) (uint64, error)

	// TotalInstances counts every card instance once all won copies have
	// themselves been scratched
	TotalInstances(deck domain.Deck) (int, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scratch-card service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scratch-card service with custom parameters.
// A nil params uses the defaults.
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// TotalPoints implements the Service interface. The sum saturates at
// math.MaxUint64.
func (s *defaultService) TotalPoints(deck domain.Deck) (uint64, error) {
	if err := deck.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}

	eval := NewEvaluator()
	var total uint64
	for i := range deck {
		p := Points(eval.Matches(&deck[i]))
		if total > math.MaxUint64-p {
			return math.MaxUint64, nil
		}
		total += p
	}
	return total, nil
}

// TotalInstances implements the Service interface
func (s *defaultService) TotalInstances(deck domain.Deck) (int, error) {
	if err := deck.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}

	eval := NewEvaluator()
	matches := func(id int) int {
		return eval.Matches(&deck[id])
	}

	switch s.params.Strategy {
	case StrategyMultiplier:
		return cascadeMultiplier(len(deck), matches), nil
	case StrategyWorklist:
		return cascadeWorklist(len(deck), matches), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.params.Strategy)
	}
}
