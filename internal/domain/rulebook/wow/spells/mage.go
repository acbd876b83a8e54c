package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

func fireMageSpells() []*Spell {
	return []*Spell{
		newSpell("Fireball", 0, fireball),
		newSpell("Fire Blast", 2, fireBlast),
		newSpell("Flamestrike", 5, dot{costPct: 1, stat: SpellPower, initialPct: 57, periodPct: 40, turns: 3, tag: "flamestrike"}.cast),
		newSpell("Polymorph", 5, polymorph),
		newSpell("Arcane Intellect", 4, arcaneIntellect),
	}
}

// fireball builds a fire stack per cast. Reaching the cap doubles the hit
// and spends every stack.
func fireball(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 2)
	if !ok {
		return nil
	}

	payload := &Payload{
		SpellCost:   cost,
		SpellDamage: shared.Scale(caster.SpellPower(), 155),
	}

	caster.Resource.Add(1)
	if maxStacks := caster.Resource.Max(); maxStacks > 0 && caster.Resource.Current() >= maxStacks {
		payload.SpellDamage *= 2
		payload.Amplified = true
		caster.Resource.Reset()
	}

	return payload
}

// fireBlast scorches the target's defenses
func fireBlast(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 1)
	if !ok {
		return nil
	}
	return &Payload{
		SpellCost:       cost,
		SpellDamage:     shared.Scale(caster.SpellPower(), 82),
		DamageReduction: -15,
		TurnsActive:     3,
		AppliesTo:       RecipientTarget,
	}
}

func polymorph(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 1)
	if !ok {
		return nil
	}
	return &Payload{
		SpellCost:    cost,
		Incapacitate: true,
		TurnsActive:  2,
		AppliesTo:    RecipientTarget,
		EffectTag:    "polymorph",
	}
}

// arcaneIntellect raises spell power by a tenth of the base value
func arcaneIntellect(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 4)
	if !ok {
		return nil
	}
	return &Payload{
		SpellCost:       cost,
		SpellPowerBonus: shared.Scale(caster.BaseSpellPower(), 10),
		TurnsActive:     4,
		AppliesTo:       RecipientSelf,
	}
}
