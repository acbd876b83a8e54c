package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// CastFunc resolves one cast. It may spend or generate the caster's
// resources but never touches the target. Returning nil means no effect.
type CastFunc func(caster *hero.Hero, target Target) *Payload

// Spell is a named entry in a spell book
type Spell struct {
	Key      string
	Name     string
	Cooldown int
	cast     CastFunc
}

func newSpell(name string, cooldown int, cast CastFunc) *Spell {
	return &Spell{
		Key:      Normalize(name),
		Name:     name,
		Cooldown: cooldown,
		cast:     cast,
	}
}

// Cast runs the spell for caster against target
func (s *Spell) Cast(caster *hero.Hero, target Target) *Payload {
	payload := s.cast(caster, target)
	if payload == nil {
		return nil
	}
	payload.Spell = s.Name
	payload.Cooldown = s.Cooldown
	return payload
}

// Stat is the hero attribute a formula scales from
type Stat int

const (
	AttackPower Stat = iota
	SpellPower
)

func (s Stat) of(h *hero.Hero) int {
	if s == SpellPower {
		return h.SpellPower()
	}
	return h.AttackPower
}

// payPool charges pct of the caster's max pool. It reports false only when
// a gated pool cannot cover the cost.
func payPool(caster *hero.Hero, pct int) (int, bool) {
	cost := caster.Pool.Cost(pct)
	if !caster.Pool.Spend(cost) {
		return cost, false
	}
	return cost, true
}

// strike is a plain damage spell: pay the pool, deal damage, build stacks
type strike struct {
	costPct   int
	stat      Stat
	damagePct int
	generates int
}

func (s strike) cast(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, s.costPct)
	if !ok {
		return nil
	}

	payload := &Payload{
		SpellCost:   cost,
		SpellDamage: shared.Scale(s.stat.of(caster), s.damagePct),
	}
	caster.Resource.Add(s.generates)

	return payload
}

// finisher spends class stacks and deals damage only if the spend succeeds
type finisher struct {
	stacks    int
	stat      Stat
	damagePct int
}

func (f finisher) cast(caster *hero.Hero, _ Target) *Payload {
	if !caster.Resource.Spend(f.stacks) {
		return nil
	}
	return &Payload{SpellDamage: shared.Scale(f.stat.of(caster), f.damagePct)}
}

// guard raises the caster's damage reduction for a few turns
type guard struct {
	costPct   int
	stacks    int
	reduction int
	mode      ReductionMode
	turns     int
}

func (g guard) cast(caster *hero.Hero, _ Target) *Payload {
	if g.stacks > 0 && caster.Resource.Current() < g.stacks {
		return nil
	}
	cost, ok := payPool(caster, g.costPct)
	if !ok {
		return nil
	}
	caster.Resource.Spend(g.stacks)

	return &Payload{
		SpellCost:       cost,
		DamageReduction: g.reduction,
		ReductionMode:   g.mode,
		TurnsActive:     g.turns,
		AppliesTo:       RecipientSelf,
	}
}

// dot opens with a hit and leaves a tagged damage over time effect on the target.
// The periodic amount chains off the opening hit, not the raw stat.
type dot struct {
	costPct    int
	stat       Stat
	initialPct int
	periodPct  int
	turns      int
	tag        string
}

func (d dot) cast(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, d.costPct)
	if !ok {
		return nil
	}

	initial := shared.Scale(d.stat.of(caster), d.initialPct)
	return &Payload{
		SpellCost:          cost,
		InitialSpellDamage: initial,
		SpellDamage:        initial,
		DamageOverTime:     shared.Scale(initial, d.periodPct),
		TurnsActive:        d.turns,
		AppliesTo:          RecipientTarget,
		EffectTag:          d.tag,
	}
}

// mend heals the caster
type mend struct {
	costPct int
	healPct int
}

func (m mend) cast(caster *hero.Hero, _ Target) *Payload {
	cost, ok := payPool(caster, m.costPct)
	if !ok {
		return nil
	}
	return &Payload{SpellCost: cost, Heal: shared.Scale(caster.SpellPower(), m.healPct)}
}
