package hero

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// DamageReport describes how a single hit landed
type DamageReport struct {
	Absorbed int // soaked by shields
	Lost     int // health actually removed
	Overkill int // damage past zero health
}

// TakeDamage routes damage through absorb shields and into health.
// Any damage breaks incapacitation.
func (h *Hero) TakeDamage(amount int) DamageReport {
	var report DamageReport
	if amount <= 0 {
		return report
	}

	remaining := amount
	for _, effect := range h.effects {
		if remaining == 0 {
			break
		}
		if effect.Kind != shared.EffectAbsorb || effect.IsExpired() {
			continue
		}
		var absorbed int
		remaining, absorbed = effect.Absorb(remaining)
		report.Absorbed += absorbed
	}

	report.Lost = h.Health.Damage(remaining)
	report.Overkill = remaining - report.Lost

	for _, effect := range h.effects {
		if effect.Kind == shared.EffectIncapacitate {
			effect.TurnsRemaining = 0
		}
	}

	return report
}

// AddEffect registers a timed effect and refreshes derived stats
func (h *Hero) AddEffect(effect *shared.ActiveEffect) {
	if effect == nil || effect.TurnsRemaining <= 0 {
		return
	}
	h.effects = append(h.effects, effect)
	h.recompute()
}

// Effects returns the live timed effects in the order they were applied
func (h *Hero) Effects() []*shared.ActiveEffect {
	live := make([]*shared.ActiveEffect, 0, len(h.effects))
	for _, effect := range h.effects {
		if !effect.IsExpired() {
			live = append(live, effect)
		}
	}
	return live
}

// EffectTags lists the distinct tags of live effects, first applied first
func (h *Hero) EffectTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, effect := range h.Effects() {
		if effect.Tag == "" || seen[effect.Tag] {
			continue
		}
		seen[effect.Tag] = true
		tags = append(tags, effect.Tag)
	}
	return tags
}

// HasEffect reports whether a live effect of kind is present
func (h *Hero) HasEffect(kind shared.EffectKind) bool {
	for _, effect := range h.effects {
		if effect.Kind == kind && !effect.IsExpired() {
			return true
		}
	}
	return false
}

// IsIncapacitated reports whether the hero is unable to cast
func (h *Hero) IsIncapacitated() bool {
	return h.HasEffect(shared.EffectIncapacitate)
}

// StartCooldown blocks spell for the given number of the hero's own turns
func (h *Hero) StartCooldown(spell string, turns int) {
	if turns <= 0 {
		return
	}
	h.cooldowns[spell] = turns
}

// CooldownRemaining returns how many of the hero's own turns spell stays blocked
func (h *Hero) CooldownRemaining(spell string) int {
	return h.cooldowns[spell]
}

// recompute rebuilds reduction and spell power from baseline plus live effects.
// An override wins over every delta; the highest override applies.
func (h *Hero) recompute() {
	reduction := h.baseDamageReduction
	override := -1
	spellPower := h.baseSpellPower

	for _, effect := range h.effects {
		if effect.IsExpired() {
			continue
		}
		switch effect.Kind {
		case shared.EffectDamageReductionDelta:
			reduction += effect.Magnitude
		case shared.EffectDamageReductionSet:
			if effect.Magnitude > override {
				override = effect.Magnitude
			}
		case shared.EffectSpellPowerBonus:
			spellPower += effect.Magnitude
		}
	}

	if override >= 0 {
		reduction = override
	}
	h.damageReduction = clampReduction(reduction)
	h.spellPower = nonNegative(spellPower)
}
