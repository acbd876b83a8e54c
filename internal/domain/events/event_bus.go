package events

import (
	"fmt"
	"sort"
	"sync"
)

// EventBus is an in-process Bus. Listeners run synchronously on the
// emitting goroutine, lowest priority first.
type EventBus struct {
	listeners map[EventType][]Listener
	mu        sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for an event type
func (eb *EventBus) Subscribe(eventType EventType, listener Listener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.listeners[eventType] = append(eb.listeners[eventType], listener)
}

// SubscribeAll adds a listener for every event type
func (eb *EventBus) SubscribeAll(listener Listener) {
	for _, eventType := range AllEventTypes() {
		eb.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener for an event type
func (eb *EventBus) Unsubscribe(eventType EventType, listener Listener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	listeners := eb.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			eb.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}

// Emit delivers event to its listeners. Delivery stops at the first error
// or when a listener cancels the event.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return fmt.Errorf("cannot emit nil event")
	}

	listeners := eb.snapshot(event.Type)
	if len(listeners) == 0 {
		return nil
	}

	// Equal priorities keep subscription order
	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("error handling event %s: %w", event.Type, err)
		}
		if event.Cancelled {
			break
		}
	}

	return nil
}

func (eb *EventBus) snapshot(eventType EventType) []Listener {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	current := eb.listeners[eventType]
	if len(current) == 0 {
		return nil
	}

	listeners := make([]Listener, len(current))
	copy(listeners, current)
	return listeners
}

// Clear removes all listeners
func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.listeners = make(map[EventType][]Listener)
}

// ListenerCount returns the number of listeners for an event type
func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.listeners[eventType])
}
