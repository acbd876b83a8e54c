package shared

// EffectKind represents what a timed effect modifies
type EffectKind string

const (
	// EffectDamageReductionDelta adds Magnitude (possibly negative) to damage reduction
	EffectDamageReductionDelta EffectKind = "damage_reduction_delta"
	// EffectDamageReductionSet pins damage reduction to Magnitude while active
	EffectDamageReductionSet EffectKind = "damage_reduction_set"
	// EffectSpellPowerBonus adds Magnitude to spell power
	EffectSpellPowerBonus EffectKind = "spell_power_bonus"
	// EffectAbsorb soaks up to Magnitude incoming damage; Magnitude shrinks as it absorbs
	EffectAbsorb EffectKind = "absorb"
	// EffectDamageOverTime deals Magnitude damage on every tick
	EffectDamageOverTime EffectKind = "damage_over_time"
	// EffectIncapacitate prevents casting; any damage breaks it
	EffectIncapacitate EffectKind = "incapacitate"
)

// ActiveEffect represents a timed effect on a hero
type ActiveEffect struct {
	ID             string     `json:"id"`
	Kind           EffectKind `json:"kind"`
	Tag            string     `json:"tag"`    // e.g. "flame_shock"; what target-effect checks look for
	Source         string     `json:"source"` // spell that created it
	SourceID       string     `json:"source_id"`
	Magnitude      int        `json:"magnitude"`
	TurnsRemaining int        `json:"turns_remaining"`
}

// TickDuration decrements the duration and returns true if expired
func (e *ActiveEffect) TickDuration() bool {
	if e.TurnsRemaining <= 0 {
		return true
	}

	e.TurnsRemaining--
	return e.TurnsRemaining <= 0
}

// IsExpired checks if the effect should be removed
func (e *ActiveEffect) IsExpired() bool {
	if e.TurnsRemaining <= 0 {
		return true
	}
	// A shield with nothing left is spent even if turns remain
	return e.Kind == EffectAbsorb && e.Magnitude <= 0
}

// Absorb soaks damage into the shield and returns what passes through
func (e *ActiveEffect) Absorb(damage int) (remaining, absorbed int) {
	if e.Kind != EffectAbsorb || damage <= 0 || e.Magnitude <= 0 {
		return damage, 0
	}

	if damage <= e.Magnitude {
		e.Magnitude -= damage
		return 0, damage
	}

	absorbed = e.Magnitude
	e.Magnitude = 0
	return damage - absorbed, absorbed
}
