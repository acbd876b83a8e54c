package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// Recipient says which side a payload's timed effect lands on
type Recipient int

const (
	RecipientSelf Recipient = iota
	RecipientTarget
)

func (r Recipient) String() string {
	if r == RecipientTarget {
		return "target"
	}
	return "self"
}

// ReductionMode says how DamageReduction combines with the recipient's current value
type ReductionMode int

const (
	ReductionDelta ReductionMode = iota
	ReductionSet
)

// Payload is everything a cast produced. Zero fields are inactive.
// A nil *Payload means the cast had no effect at all.
type Payload struct {
	Spell string `json:"spell"`

	SpellCost          int `json:"spell_cost,omitempty"`
	SpellDamage        int `json:"spell_damage,omitempty"`
	InitialSpellDamage int `json:"initial_spell_damage,omitempty"`
	DamageOverTime     int `json:"damage_over_time,omitempty"`
	HealthLeech        int `json:"health_leech,omitempty"`
	Heal               int `json:"heal,omitempty"`
	Absorb             int `json:"absorb,omitempty"`
	Cooldown           int `json:"cooldown,omitempty"`
	TurnsActive        int `json:"turns_active,omitempty"`

	DamageReduction int           `json:"damage_reduction,omitempty"`
	ReductionMode   ReductionMode `json:"reduction_mode,omitempty"`
	SpellPowerBonus int           `json:"spell_power_bonus,omitempty"`
	Incapacitate    bool          `json:"incapacitate,omitempty"`

	Backlash  int  `json:"backlash,omitempty"` // taken by the caster if the target survives
	Executed  bool `json:"executed,omitempty"`
	Amplified bool `json:"amplified,omitempty"`

	AppliesTo Recipient `json:"applies_to"`
	EffectTag string    `json:"effect_tag,omitempty"`
}

// TimedEffects converts the payload's lasting parts into effects for the recipient.
// Ids are left for the caller to assign.
func (p *Payload) TimedEffects() []*shared.ActiveEffect {
	if p == nil || p.TurnsActive <= 0 {
		return nil
	}

	tag := p.EffectTag
	if tag == "" {
		tag = Normalize(p.Spell)
	}
	timed := func(kind shared.EffectKind, magnitude int) *shared.ActiveEffect {
		return &shared.ActiveEffect{
			Kind:           kind,
			Tag:            tag,
			Source:         p.Spell,
			Magnitude:      magnitude,
			TurnsRemaining: p.TurnsActive,
		}
	}

	var effects []*shared.ActiveEffect
	switch {
	case p.ReductionMode == ReductionSet:
		effects = append(effects, timed(shared.EffectDamageReductionSet, p.DamageReduction))
	case p.DamageReduction != 0:
		effects = append(effects, timed(shared.EffectDamageReductionDelta, p.DamageReduction))
	}
	if p.SpellPowerBonus > 0 {
		effects = append(effects, timed(shared.EffectSpellPowerBonus, p.SpellPowerBonus))
	}
	if p.Absorb > 0 {
		effects = append(effects, timed(shared.EffectAbsorb, p.Absorb))
	}
	if p.DamageOverTime > 0 {
		effects = append(effects, timed(shared.EffectDamageOverTime, p.DamageOverTime))
	}
	if p.Incapacitate {
		effects = append(effects, timed(shared.EffectIncapacitate, 0))
	}

	return effects
}
