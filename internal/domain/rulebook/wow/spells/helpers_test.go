package spells_test

import (
	"testing"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	"github.com/stretchr/testify/require"
)

var (
	retribution       = shared.Loadout{Class: shared.ClassPaladin, Spec: shared.SpecRetribution}
	protectionPaladin = shared.Loadout{Class: shared.ClassPaladin, Spec: shared.SpecProtectionPaladin}
	fury              = shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecFury}
	protectionWarrior = shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecProtectionWarrior}
	fireMage          = shared.Loadout{Class: shared.ClassMage, Spec: shared.SpecFire}
	shadowPriest      = shared.Loadout{Class: shared.ClassPriest, Spec: shared.SpecShadow}
	enhancement       = shared.Loadout{Class: shared.ClassShaman, Spec: shared.SpecEnhancement}
	elemental         = shared.Loadout{Class: shared.ClassShaman, Spec: shared.SpecElemental}
	windwalker        = shared.Loadout{Class: shared.ClassMonk, Spec: shared.SpecWindwalker}
	brewmaster        = shared.Loadout{Class: shared.ClassMonk, Spec: shared.SpecBrewmaster}
)

type heroStats struct {
	health, pool, spellPower, attackPower int
	kind                                  resource.Kind
	policy                                resource.Policy
}

var rosterStats = map[shared.Loadout]heroStats{
	retribution:       {health: 800, pool: 300, spellPower: 30, attackPower: 75, kind: resource.KindHolyPower},
	protectionPaladin: {health: 1200, pool: 300, spellPower: 30, attackPower: 45, kind: resource.KindHolyPower},
	fury:              {health: 1000, pool: 300, attackPower: 70, kind: resource.KindRage},
	protectionWarrior: {health: 1500, pool: 200, attackPower: 50, kind: resource.KindRage},
	fireMage:          {health: 700, pool: 900, spellPower: 110, attackPower: 10, kind: resource.KindFireStacks},
	shadowPriest:      {health: 750, pool: 900, spellPower: 90, attackPower: 10, kind: resource.KindInsanity},
	enhancement:       {health: 850, pool: 300, spellPower: 60, attackPower: 35, kind: resource.KindMaelstrom},
	elemental:         {health: 750, pool: 700, spellPower: 100, attackPower: 10, kind: resource.KindMaelstrom},
	windwalker:        {health: 800, pool: 300, spellPower: 30, attackPower: 65, kind: resource.KindChi},
	brewmaster:        {health: 1100, pool: 200, spellPower: 30, attackPower: 45, kind: resource.KindChi},
}

func newHero(t *testing.T, loadout shared.Loadout) *hero.Hero {
	t.Helper()
	return newHeroWithPolicy(t, loadout, resource.PolicyUngated)
}

func newHeroWithPolicy(t *testing.T, loadout shared.Loadout, policy resource.Policy) *hero.Hero {
	t.Helper()
	stats, ok := rosterStats[loadout]
	require.True(t, ok, "no test stats for %s", loadout)

	return hero.New(&hero.Config{
		ID:          loadout.String(),
		Loadout:     loadout,
		MaxHealth:   stats.health,
		MaxPool:     stats.pool,
		AttackPower: stats.attackPower,
		SpellPower:  stats.spellPower,
		Resource:    resource.New(stats.kind, 0),
		ManaPolicy:  policy,
	})
}

func cast(t *testing.T, catalog *spells.Catalog, caster *hero.Hero, name string, target spells.Target) *spells.Payload {
	t.Helper()
	spell, err := catalog.Lookup(caster.Loadout, name)
	require.NoError(t, err)
	return spell.Cast(caster, target)
}

var healthyTarget = spells.Target{HealthPercent: 100}
