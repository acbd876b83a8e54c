package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// Holy power finishers all cost the same
const holyPowerCost = 3

func paladinSpells() []*Spell {
	return []*Spell{
		newSpell("Crusader Strike", 0, strike{costPct: 3, stat: AttackPower, damagePct: 60, generates: 1}.cast),
		newSpell("Judgement", 2, strike{costPct: 3, stat: AttackPower, damagePct: 90, generates: 1}.cast),
		newSpell("Word of Glory", 0, wordOfGlory),
		newSpell("Divine Protection", 3, guard{costPct: 3, reduction: 20, turns: 2}.cast),
		newSpell("Divine Shield", 9, guard{costPct: 5, reduction: hero.MaxDamageReduction, mode: ReductionSet, turns: 2}.cast),
	}
}

func retributionSpells() []*Spell {
	return []*Spell{
		newSpell("Blade of Justice", 0, strike{costPct: 3, stat: AttackPower, damagePct: 135, generates: 1}.cast),
		newSpell("Final Verdict", 0, finisher{stacks: holyPowerCost, stat: AttackPower, damagePct: 220}.cast),
		newSpell("Wake of Ashes", 5, strike{costPct: 5, stat: AttackPower, damagePct: 170, generates: 3}.cast),
	}
}

func protectionPaladinSpells() []*Spell {
	return []*Spell{
		newSpell("Avenger's Shield", 3, strike{costPct: 5, stat: AttackPower, damagePct: 120, generates: 1}.cast),
		newSpell("Shield of the Righteous", 0, shieldOfTheRighteous),
	}
}

// wordOfGlory heals only when the full holy power cost is paid
func wordOfGlory(caster *hero.Hero, _ Target) *Payload {
	if !caster.Resource.Spend(holyPowerCost) {
		return nil
	}
	return &Payload{Heal: shared.Scale(caster.SpellPower(), 400)}
}

func shieldOfTheRighteous(caster *hero.Hero, _ Target) *Payload {
	if !caster.Resource.Spend(holyPowerCost) {
		return nil
	}
	return &Payload{
		SpellDamage:     shared.Scale(caster.AttackPower, 140),
		DamageReduction: 15,
		TurnsActive:     2,
		AppliesTo:       RecipientSelf,
	}
}
