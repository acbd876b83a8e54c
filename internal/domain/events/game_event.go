package events

import "github.com/KirkDiggler/duel-engine/internal/domain/hero"

// GameEvent is something that happened during a turn
type GameEvent struct {
	Type      EventType
	Actor     *hero.Hero
	Target    *hero.Hero
	Spell     string
	Amount    int
	Context   map[string]any
	Cancelled bool // listeners later in the chain are skipped
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType EventType, actor *hero.Hero) *GameEvent {
	return &GameEvent{
		Type:    eventType,
		Actor:   actor,
		Context: make(map[string]any),
	}
}

// WithTarget sets the target for the event
func (e *GameEvent) WithTarget(target *hero.Hero) *GameEvent {
	e.Target = target
	return e
}

// WithSpell records the spell involved
func (e *GameEvent) WithSpell(spell string) *GameEvent {
	e.Spell = spell
	return e
}

// WithAmount records the headline number (damage, healing, magnitude)
func (e *GameEvent) WithAmount(amount int) *GameEvent {
	e.Amount = amount
	return e
}

// WithContext adds context data to the event
func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops delivery to the remaining listeners
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

// IsCancelled returns whether the event has been cancelled
func (e *GameEvent) IsCancelled() bool {
	return e.Cancelled
}

// GetIntContext retrieves an int value from the context
func (e *GameEvent) GetIntContext(key string) (int, bool) {
	val, exists := e.Context[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// GetBoolContext retrieves a bool value from the context
func (e *GameEvent) GetBoolContext(key string) (value, exists bool) {
	val, exists := e.Context[key]
	if !exists {
		return false, false
	}
	boolVal, ok := val.(bool)
	return boolVal, ok
}

// GetStringContext retrieves a string value from the context
func (e *GameEvent) GetStringContext(key string) (string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}
