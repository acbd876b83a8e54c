package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

func monkSpells() []*Spell {
	return []*Spell{
		newSpell("Tiger Palm", 0, strike{costPct: 12, stat: AttackPower, damagePct: 28, generates: 2}.cast),
		newSpell("Spinning Crane Kick", 2, strike{costPct: 13, stat: AttackPower, damagePct: 40}.cast),
		newSpell("Vivify", 0, mend{costPct: 10, healPct: 258}.cast),
	}
}

func windwalkerSpells() []*Spell {
	return []*Spell{
		newSpell("Rising Sun Kick", 1, finisher{stacks: 2, stat: AttackPower, damagePct: 28}.cast),
		newSpell("Fists of Fury", 2, finisher{stacks: 3, stat: AttackPower, damagePct: 138}.cast),
		newSpell("Whirling Dragon Punch", 5, strike{stat: AttackPower, damagePct: 230}.cast),
	}
}

func brewmasterSpells() []*Spell {
	return []*Spell{
		newSpell("Rushing Jade Wind", 1, finisher{stacks: 1, stat: AttackPower, damagePct: 14}.cast),
		newSpell("Chi Burst", 7, strike{stat: AttackPower, damagePct: 280}.cast),
		newSpell("Keg Smash", 3, kegSmash),
		newSpell("Blackout Kick", 1, finisher{stacks: 3, stat: AttackPower, damagePct: 85}.cast),
		newSpell("Breath of Fire", 5, strike{stat: AttackPower, damagePct: 54}.cast),
	}
}

// kegSmash hits, braces the brewmaster for a turn and builds chi
func kegSmash(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, 20)
	if !ok {
		return nil
	}

	payload := &Payload{
		SpellCost:       cost,
		SpellDamage:     shared.Scale(caster.AttackPower, 100),
		DamageReduction: 30,
		TurnsActive:     1,
		AppliesTo:       RecipientSelf,
	}
	caster.Resource.Add(2)

	return payload
}
