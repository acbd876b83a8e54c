package hero

import (
	"slices"

	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// TickReport is what one pass of the turn clock did to a hero
type TickReport struct {
	PeriodicDamage DamageReport
	Expired        []*shared.ActiveEffect
	ReadySpells    []string // only filled on the hero's own turn
}

// Tick advances every effect duration by one. Damage over time lands first
// and is absorbable but not mitigated. Expired effects are dropped and
// derived stats fall back to baseline. Cooldowns are left alone; they only
// move on the hero's own turns, see TickCooldowns.
func (h *Hero) Tick() TickReport {
	var report TickReport

	for _, effect := range h.effects {
		if effect.Kind != shared.EffectDamageOverTime || effect.IsExpired() {
			continue
		}
		hit := h.TakeDamage(effect.Magnitude)
		report.PeriodicDamage.Absorbed += hit.Absorbed
		report.PeriodicDamage.Lost += hit.Lost
		report.PeriodicDamage.Overkill += hit.Overkill
	}

	live := h.effects[:0]
	for _, effect := range h.effects {
		if effect.IsExpired() || effect.TickDuration() {
			report.Expired = append(report.Expired, effect)
			continue
		}
		live = append(live, effect)
	}
	// clear the tail so dropped effects can be collected
	for i := len(live); i < len(h.effects); i++ {
		h.effects[i] = nil
	}
	h.effects = live

	h.recompute()
	return report
}

// TickCooldowns counts every cooldown down by one and returns the spells
// that became ready, sorted
func (h *Hero) TickCooldowns() []string {
	var ready []string
	for spell, remaining := range h.cooldowns {
		if remaining <= 1 {
			delete(h.cooldowns, spell)
			ready = append(ready, spell)
			continue
		}
		h.cooldowns[spell] = remaining - 1
	}
	slices.Sort(ready)
	return ready
}
