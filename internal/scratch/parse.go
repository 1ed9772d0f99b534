package scratch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/phrazzld/puzzles/internal/domain"
)

const puzzleName = "scratch"

var (
	reHeader = regexp.MustCompile(`^\s*Card\s*(\S+)\s*$`)
	reDigits = regexp.MustCompile(`^[0-9]+$`)
)

// ParseCard converts one "Card <n>: <winning> | <owned>" line into a Card.
// Numbers may be separated by any amount of whitespace.
func ParseCard(line string) (*domain.Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return nil, domain.NewLineError(puzzleName, line, "missing ':'", domain.ErrMalformedLine)
	}

	m := reHeader.FindStringSubmatch(head)
	if m == nil {
		return nil, domain.NewLineError(puzzleName, line, "expected 'Card <n>' before ':'", domain.ErrMalformedLine)
	}
	number, err := parseNumber(m[1])
	if err != nil {
		return nil, domain.NewLineError(puzzleName, line, "bad card number", err)
	}

	winningText, ownedText, ok := strings.Cut(body, "|")
	if !ok {
		return nil, domain.NewLineError(puzzleName, line, "missing '|'", domain.ErrMalformedLine)
	}
	if strings.Contains(ownedText, "|") {
		return nil, domain.NewLineError(puzzleName, line, "more than one '|'", domain.ErrMalformedLine)
	}

	winning, err := parseNumbers(winningText)
	if err != nil {
		return nil, domain.NewLineError(puzzleName, line, "bad winning number", err)
	}
	owned, err := parseNumbers(ownedText)
	if err != nil {
		return nil, domain.NewLineError(puzzleName, line, "bad owned number", err)
	}

	card, err := domain.NewCard(number, winning, owned)
	if err != nil {
		return nil, domain.NewLineError(puzzleName, line, "invalid card", err)
	}
	return card, nil
}

// ParseDeck parses every line into a Deck. It stops at the first bad line and
// requires card numbers to run 1..len(lines) in order.
func ParseDeck(lines []string) (domain.Deck, error) {
	deck := make(domain.Deck, 0, len(lines))
	for i, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			return nil, domain.AtLine(err, i+1)
		}
		deck = append(deck, *card)
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// parseNumber accepts unsigned decimal tokens only.
func parseNumber(tok string) (int, error) {
	if !reDigits.MatchString(tok) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, tok)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", domain.ErrInvalidNumber, tok, err)
	}
	return n, nil
}
