package events

// Context keys for event data
const (
	ContextReason    = "reason"    // string: why a turn had no effect
	ContextRaw       = "raw"       // int: damage before reduction
	ContextMitigated = "mitigated" // int: damage removed by reduction
	ContextAbsorbed  = "absorbed"  // int: damage soaked by shields
	ContextOverkill  = "overkill"  // int: damage past zero health
	ContextPeriodic  = "periodic"  // bool: damage came from a damage over time effect
	ContextSource    = "source"    // string: "heal", "leech" or "backlash"

	ContextEffectKind = "effect_kind" // shared.EffectKind
	ContextEffectTag  = "effect_tag"  // string
	ContextTurns      = "turns"       // int: duration of an applied effect

	ContextOutcome = "outcome" // string: final combat state
	ContextRound   = "round"   // int: duel round, when a duel drives the engine
)
