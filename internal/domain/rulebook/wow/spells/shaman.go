package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

const flameShockTag = "flame_shock"

func shamanSpells() []*Spell {
	return []*Spell{
		newSpell("Lightning Bolt", 0, strike{costPct: 2, stat: SpellPower, damagePct: 90, generates: 1}.cast),
		newSpell("Flame Shock", 2, dot{costPct: 2, stat: SpellPower, initialPct: 40, periodPct: 50, turns: 4, tag: flameShockTag}.cast),
		newSpell("Lava Burst", 2, lavaBurst),
		newSpell("Primordial Wave", 6, dot{costPct: 3, stat: SpellPower, initialPct: 65, periodPct: 25, turns: 3, tag: flameShockTag}.cast),
	}
}

func enhancementSpells() []*Spell {
	return []*Spell{
		newSpell("Stormstrike", 2, strike{costPct: 2, stat: AttackPower, damagePct: 150, generates: 1}.cast),
		newSpell("Lava Lash", 1, strike{costPct: 1, stat: AttackPower, damagePct: 110, generates: 1}.cast),
		newSpell("Tempest", 4, strike{costPct: 3, stat: SpellPower, damagePct: 180}.cast),
		newSpell("Feral Spirit", 8, feralSpirit),
	}
}

func elementalSpells() []*Spell {
	return []*Spell{
		newSpell("Earth Shock", 3, strike{costPct: 1, stat: SpellPower, damagePct: 200}.cast),
	}
}

// lavaBurst crits against a target burning with flame shock. The check
// only reads the tag; the flame shock stays on the target.
func lavaBurst(caster *hero.Hero, target Target) *Payload {
	cost, ok := payPool(caster, 3)
	if !ok {
		return nil
	}

	payload := &Payload{
		SpellCost:   cost,
		SpellDamage: shared.Scale(caster.SpellPower(), 120),
	}
	if target.HasTag(flameShockTag) {
		payload.SpellDamage *= 2
		payload.Amplified = true
	}

	return payload
}

// feralSpirit summons wolves that only deal periodic damage
func feralSpirit(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 4)
	if !ok {
		return nil
	}
	return &Payload{
		SpellCost:      cost,
		DamageOverTime: shared.Scale(caster.AttackPower, 60),
		TurnsActive:    3,
		AppliesTo:      RecipientTarget,
		EffectTag:      "feral_spirit",
	}
}
