package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

func furySpells() []*Spell {
	return []*Spell{
		newSpell("Bloodthirst", 1, strike{stat: AttackPower, damagePct: 90, generates: 15}.cast),
		newSpell("Raging Blow", 0, strike{stat: AttackPower, damagePct: 75, generates: 12}.cast),
		newSpell("Rampage", 0, finisher{stacks: 80, stat: AttackPower, damagePct: 300}.cast),
		newSpell("Bloodbath", 2, bloodbath),
		newSpell("Bladestorm", 6, strike{stat: AttackPower, damagePct: 160, generates: 20}.cast),
	}
}

func protectionWarriorSpells() []*Spell {
	return []*Spell{
		newSpell("Charge", 3, strike{stat: AttackPower, damagePct: 40, generates: 20}.cast),
		newSpell("Shield Slam", 1, strike{stat: AttackPower, damagePct: 110, generates: 15}.cast),
		newSpell("Shield Block", 2, guard{stacks: 30, reduction: 40, turns: 1}.cast),
		newSpell("Ignore Pain", 3, guard{stacks: 40, reduction: 30, turns: 3}.cast),
		newSpell("Champion's Spear", 5, strike{stat: AttackPower, damagePct: 150, generates: 10}.cast),
		newSpell("Shield Charge", 4, strike{stat: AttackPower, damagePct: 130, generates: 15}.cast),
	}
}

// bloodbath builds rage and then checks it in the same cast: with 40 rage
// to spend it hits hard and leeches, otherwise it lands a weak hit.
func bloodbath(caster *hero.Hero, _ Target) *Payload {
	caster.Resource.Add(10)

	if !caster.Resource.Spend(40) {
		return &Payload{SpellDamage: shared.Scale(caster.AttackPower, 60)}
	}

	damage := shared.Scale(caster.AttackPower, 180)
	return &Payload{
		SpellDamage: damage,
		HealthLeech: shared.Scale(damage, 20),
		Amplified:   true,
	}
}
