package scratch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when a cascade strategy name is not recognised.
var ErrUnknownStrategy = errors.New("unknown cascade strategy")

// Strategy selects how the cascade instance total is computed.
type Strategy string

// Available cascade strategies
const (
	// StrategyWorklist expands every won copy as its own unit of work.
	// Memory grows with the answer.
	StrategyWorklist Strategy = "worklist"

	// StrategyMultiplier carries a copy count per card forward instead of
	// materialising copies. Memory is bounded by the deck size.
	StrategyMultiplier Strategy = "multiplier"
)

// ParseStrategy converts a configuration value to a Strategy (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategyWorklist, StrategyMultiplier:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Params defines the configurable parts of the scratch-card engine
type Params struct {
	Strategy Strategy
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		Strategy: StrategyWorklist,
	}
}

// NewParams creates a Params from a strategy name, falling back to the
// default strategy when name is empty.
func NewParams(strategy string) (*Params, error) {
	params := NewDefaultParams()
	if strategy == "" {
		return params, nil
	}

	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	params.Strategy = s
	return params, nil
}
