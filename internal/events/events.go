package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SolvedEvent records the answer to one part of one puzzle.
type SolvedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Day    int    `json:"day"`
	Part   int    `json:"part"`
	Puzzle string `json:"puzzle"`
	Answer string `json:"answer"`

	// Elapsed is the time spent solving, excluding input loading
	Elapsed time.Duration `json:"elapsed"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewSolvedEvent creates a new SolvedEvent stamped with a fresh ID and the current time.
func NewSolvedEvent(day, part int, name, answer string, elapsed time.Duration) *SolvedEvent {
	return &SolvedEvent{
		ID:        uuid.New(),
		Day:       day,
		Part:      part,
		Puzzle:    name,
		Answer:    answer,
		Elapsed:   elapsed,
		CreatedAt: time.Now(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SolvedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the runner to publish results without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SolvedEvent) error
}
