package domain

import (
	"errors"
	"fmt"
)

// Card-specific validation errors
var (
	// ErrCardNumberInvalid is returned when a declared card number is below 1.
	ErrCardNumberInvalid = fmt.Errorf("%w: card number must be at least 1", ErrMalformedLine)

	// ErrCardWinningEmpty is returned when a card is built without a winning set.
	ErrCardWinningEmpty = errors.New("card winning numbers cannot be nil")
)

// Card represents one scratch card. Cards are immutable after parsing; match
// counts are cached by the evaluator, not on the card.
type Card struct {
	// ID is the zero-based position in the deck (declared number minus one).
	ID int `json:"id"`

	// Winning is the set of winning numbers. Duplicates collapse.
	Winning map[int]struct{} `json:"-"`

	// Owned is the sequence of numbers on the card. Each occurrence is checked
	// against Winning, so a repeated owned number can match more than once.
	Owned []int `json:"owned"`
}

// NewCard creates a Card from its declared 1-based number and the parsed number lists.
// Returns an error if validation fails.
func NewCard(number int, winning, owned []int) (*Card, error) {
	set := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		set[n] = struct{}{}
	}

	card := &Card{
		ID:      number - 1,
		Winning: set,
		Owned:   owned,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Number returns the 1-based card number as printed on the input line.
func (c *Card) Number() int {
	return c.ID + 1
}

// IsWinning reports whether n is in the card's winning set.
func (c *Card) IsWinning(n int) bool {
	_, ok := c.Winning[n]
	return ok
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID < 0 {
		return ErrCardNumberInvalid
	}

	if c.Winning == nil {
		return ErrCardWinningEmpty
	}

	return nil
}

// Deck is the ordered sequence of cards, indexed by Card.ID.
type Deck []Card

// Validate checks that every card's ID equals its index, which lets the
// cascade code use IDs as direct slice indexes.
func (d Deck) Validate() error {
	for i := range d {
		if err := d[i].Validate(); err != nil {
			return err
		}
		if d[i].ID != i {
			return fmt.Errorf("%w: card %d at position %d", ErrNonSequentialCard, d[i].Number(), i+1)
		}
	}
	return nil
}
