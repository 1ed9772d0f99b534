package domain

import (
	"errors"
	"fmt"
)

// Common parse errors used by every puzzle parser.
var (
	// ErrMalformedLine is returned when an input line does not have the shape
	// a parser expects. Puzzle input is static, so this is never retried.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidNumber is returned when a token in a numeric position fails to
	// parse. It wraps ErrMalformedLine so callers can check either.
	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ErrMalformedLine)

	// ErrNonSequentialCard is returned when card numbers in a deck are not
	// exactly 1..n in input order.
	ErrNonSequentialCard = errors.New("card numbers must be sequential starting at 1")
)

// IsParseError reports whether err came from rejecting puzzle input.
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformedLine) ||
		errors.Is(err, ErrNonSequentialCard)
}

// LineError carries the position and text of a rejected input line.
type LineError struct {
	Puzzle  string // The puzzle that rejected the line (e.g., "scratch")
	Line    int    // 1-based line number, 0 when unknown
	Text    string // The offending line
	Message string // What was wrong with it
	Err     error  // Sentinel or underlying error
}

// Error implements the error interface for LineError.
func (e *LineError) Error() string {
	where := e.Puzzle
	if e.Line > 0 {
		where = fmt.Sprintf("%s line %d", e.Puzzle, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (%q)", where, e.Message, e.Err, e.Text)
	}
	return fmt.Sprintf("%s: %s (%q)", where, e.Message, e.Text)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError creates a LineError with no line number; callers that know the
// position set it with AtLine.
func NewLineError(puzzle, text, message string, err error) *LineError {
	return &LineError{
		Puzzle:  puzzle,
		Text:    text,
		Message: message,
		Err:     err,
	}
}

// AtLine stamps a 1-based line number onto err if it is a LineError without one.
// Other errors are returned unchanged.
func AtLine(err error, line int) error {
	var le *LineError
	if errors.As(err, &le) && le.Line == 0 {
		le.Line = line
	}
	return err
}
