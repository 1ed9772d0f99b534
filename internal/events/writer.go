package events

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// WriterHandler prints every answer as one line:
//
//	Day 04 part 2 (scratch) = 30
type WriterHandler struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterHandler creates a handler writing to out.
func NewWriterHandler(out io.Writer) *WriterHandler {
	return &WriterHandler{out: out}
}

// HandleEvent implements EventHandler.
func (h *WriterHandler) HandleEvent(_ context.Context, event *SolvedEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintf(h.out, "Day %02d part %d (%s) = %s\n",
		event.Day, event.Part, event.Puzzle, event.Answer)
	if err != nil {
		return fmt.Errorf("failed to write answer: %w", err)
	}
	return nil
}

var _ EventHandler = (*WriterHandler)(nil)
