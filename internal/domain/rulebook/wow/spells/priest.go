package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

const (
	executeBelowPercent = 20
	executePct          = 250
	backlashPct         = 5
)

func shadowPriestSpells() []*Spell {
	return []*Spell{
		newSpell("Mind Blast", 3, strike{costPct: 4, stat: SpellPower, damagePct: 73, generates: 8}.cast),
		newSpell("Shadow Word: Death", 3, shadowWordDeath),
		newSpell("Devouring Plague", 4, devouringPlague),
		newSpell("Flash Heal", 0, flashHeal),
		newSpell("Power Word: Shield", 5, powerWordShield),
	}
}

// shadowWordDeath executes wounded targets. If the target lives through it
// the caster pays for it in health.
func shadowWordDeath(caster *hero.Hero, target Target) *Payload {
	cost, ok := payPool(caster, 1)
	if !ok {
		return nil
	}

	payload := &Payload{
		SpellCost:   cost,
		SpellDamage: shared.Scale(caster.SpellPower(), 85),
		Backlash:    shared.Scale(caster.Health.Max, backlashPct),
	}
	if target.HealthPercent < executeBelowPercent {
		payload.SpellDamage = shared.Scale(payload.SpellDamage, executePct)
		payload.Executed = true
	}
	caster.Resource.Add(5)

	return payload
}

// devouringPlague leeches and lingers. Both chain off the opening hit.
func devouringPlague(caster *hero.Hero, _ Target) *Payload {
	payload := dot{costPct: 10, stat: SpellPower, initialPct: 155, periodPct: 13, turns: 3, tag: "devouring_plague"}.cast(caster, Target{})
	if payload == nil {
		return nil
	}
	payload.HealthLeech = shared.Scale(payload.InitialSpellDamage, 30)
	caster.Resource.Add(10)

	return payload
}

// flashHeal also burns off insanity
func flashHeal(caster *hero.Hero, target Target) *Payload {
	payload := mend{costPct: 10, healPct: 203}.cast(caster, target)
	if payload == nil {
		return nil
	}
	if remover, ok := caster.Resource.(resource.Remover); ok {
		remover.Remove(20)
	}
	return payload
}

func powerWordShield(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 10)
	if !ok {
		return nil
	}
	return &Payload{
		SpellCost:   cost,
		Absorb:      shared.Scale(caster.SpellPower(), 336),
		TurnsActive: 3,
		AppliesTo:   RecipientSelf,
	}
}
