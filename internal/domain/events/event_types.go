package events

// EventType represents the type of duel event
type EventType int

const (
	// SpellCast fires after a spell resolved with an effect
	SpellCast EventType = iota
	// SpellNoEffect fires when a turn was consumed without an effect
	SpellNoEffect
	// DamageDealt fires for direct and periodic damage
	DamageDealt
	// HealingDone fires for heals and leech
	HealingDone
	// EffectApplied fires when a timed effect lands on a hero
	EffectApplied
	// EffectExpired fires when a timed effect wears off
	EffectExpired
	// CombatEnded fires once, on the turn a hero is defeated
	CombatEnded
)

var eventTypeNames = [...]string{
	"SpellCast",
	"SpellNoEffect",
	"DamageDealt",
	"HealingDone",
	"EffectApplied",
	"EffectExpired",
	"CombatEnded",
}

// String returns the string representation of the event type
func (e EventType) String() string {
	if e < SpellCast || int(e) >= len(eventTypeNames) {
		return "Unknown"
	}
	return eventTypeNames[e]
}

// AllEventTypes lists every event type, for subscribing one listener to all of them
func AllEventTypes() []EventType {
	types := make([]EventType, len(eventTypeNames))
	for i := range eventTypeNames {
		types[i] = EventType(i)
	}
	return types
}
