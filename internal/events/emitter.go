package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ctx context.Context, event *SolvedEvent) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *SolvedEvent) error {
	return f(ctx, event)
}

// InMemoryEventEmitter hands every answer to the registered handlers, in
// registration order, on the caller's goroutine.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		logger: logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a handler that receives every later answer.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered answer handler",
		"handler", fmt.Sprintf("%T", handler),
		"handler_count", len(e.handlers))
}

// EmitEvent publishes an answer. A failing handler does not stop the others;
// the first failure is returned, naming the handler and the puzzle part.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *SolvedEvent) error {
	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	log := e.logger.With(
		"event_id", event.ID,
		"day", event.Day,
		"part", event.Part,
		"puzzle", event.Puzzle)

	if len(handlers) == 0 {
		log.Warn("answer dropped, no handlers registered", "answer", event.Answer)
		return nil
	}

	log.Debug("publishing answer", "answer", event.Answer, "handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		err := handler.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		log.Error("answer handler failed",
			"error", err,
			"handler", fmt.Sprintf("%T", handler),
			"handler_index", i)
		if firstErr == nil {
			firstErr = fmt.Errorf("handler %T failed for day %d part %d (%s): %w",
				handler, event.Day, event.Part, event.Puzzle, err)
		}
	}

	return firstErr
}

var _ EventEmitter = (*InMemoryEventEmitter)(nil)
