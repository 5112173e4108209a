package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher fans domain events out to in-process subscribers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(handler EventHandler, types ...EventType)
}

type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a synchronous dispatcher.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish runs every handler subscribed to the event's type in subscription
// order. A failing handler does not stop the rest; failures come back joined.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	var errs []error
	for i, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler #%d: %w", event.Type, i, err))
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers handler for each of types; with no types it listens to
// every known event.
func (d *inMemoryDispatcher) Subscribe(handler EventHandler, types ...EventType) {
	if len(types) == 0 {
		types = AllTypes()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], handler)
	}
}
