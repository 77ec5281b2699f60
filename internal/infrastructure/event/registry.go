package event

import (
	"sync"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// HandlerRegistry tracks which handlers are interested in which event
// types. A handler registered with no types receives every event.
type HandlerRegistry struct {
	mu        sync.RWMutex
	byType    map[string][]shared.EventHandler
	allEvents []shared.EventHandler
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		byType: make(map[string][]shared.EventHandler),
	}
}

// Register registers a handler for the given event types
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		r.allEvents = append(r.allEvents, handler)
		return
	}
	for _, eventType := range eventTypes {
		r.byType[eventType] = append(r.byType[eventType], handler)
	}
}

// Unregister removes a handler from all subscriptions
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.allEvents = removeHandler(r.allEvents, handler)
	for eventType, handlers := range r.byType {
		r.byType[eventType] = removeHandler(handlers, handler)
	}
}

// GetHandlers returns the handlers interested in the given event type
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := make([]shared.EventHandler, 0, len(r.byType[eventType])+len(r.allEvents))
	handlers = append(handlers, r.byType[eventType]...)
	handlers = append(handlers, r.allEvents...)
	return handlers
}

func removeHandler(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := handlers[:0]
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}
