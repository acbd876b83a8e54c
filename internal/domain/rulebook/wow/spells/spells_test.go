package spells_test

import (
	"testing"

	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBladeOfJustice_BuildsHolyPower(t *testing.T) {
	catalog := spells.NewCatalog()
	paladin := newHero(t, retribution)

	payload := cast(t, catalog, paladin, "Blade of Justice", healthyTarget)

	require.NotNil(t, payload)
	assert.Equal(t, 102, payload.SpellDamage)
	assert.Equal(t, 9, payload.SpellCost)
	assert.Equal(t, 291, paladin.Pool.Current())
	assert.Equal(t, 1, paladin.Resource.Current())
}

func TestFireball_StackCapDoublesAndResets(t *testing.T) {
	catalog := spells.NewCatalog()
	mage := newHero(t, fireMage)

	for i := 1; i <= 7; i++ {
		payload := cast(t, catalog, mage, "Fireball", healthyTarget)
		require.NotNil(t, payload)
		assert.Equal(t, 171, payload.SpellDamage, "cast %d", i)
		assert.False(t, payload.Amplified)
		assert.Equal(t, i, mage.Resource.Current())
	}

	payload := cast(t, catalog, mage, "Fireball", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 342, payload.SpellDamage)
	assert.True(t, payload.Amplified)
	assert.Equal(t, 0, mage.Resource.Current())

	payload = cast(t, catalog, mage, "Fireball", healthyTarget)
	assert.Equal(t, 171, payload.SpellDamage)
	assert.Equal(t, 1, mage.Resource.Current())
}

func TestCrusaderStrike_EmptyPool(t *testing.T) {
	catalog := spells.NewCatalog()

	t.Run("ungated pool still pays and hits", func(t *testing.T) {
		paladin := newHero(t, protectionPaladin)
		paladin.Pool.Set(0)

		payload := cast(t, catalog, paladin, "Crusader Strike", healthyTarget)
		require.NotNil(t, payload)
		assert.Equal(t, 27, payload.SpellDamage)
		assert.Equal(t, -9, paladin.Pool.Current())
		assert.Equal(t, 1, paladin.Resource.Current())
	})

	t.Run("gated pool refuses without side effects", func(t *testing.T) {
		paladin := newHeroWithPolicy(t, protectionPaladin, resource.PolicyGated)
		paladin.Pool.Set(0)

		payload := cast(t, catalog, paladin, "Crusader Strike", healthyTarget)
		assert.Nil(t, payload)
		assert.Equal(t, 0, paladin.Pool.Current())
		assert.Equal(t, 0, paladin.Resource.Current())
	})

	t.Run("holy power finisher has no effect", func(t *testing.T) {
		paladin := newHero(t, protectionPaladin)
		paladin.Pool.Set(0)

		assert.Nil(t, cast(t, catalog, paladin, "Shield of the Righteous", healthyTarget))
	})
}

func TestFinishers_RejectedSpendIsIdempotent(t *testing.T) {
	catalog := spells.NewCatalog()

	tests := []struct {
		name    string
		loadout shared.Loadout
		spell   string
		build   int
	}{
		{name: "final verdict", loadout: retribution, spell: "Final Verdict", build: 2},
		{name: "shield of the righteous", loadout: protectionPaladin, spell: "Shield of the Righteous", build: 2},
		{name: "word of glory", loadout: protectionPaladin, spell: "Word of Glory", build: 0},
		{name: "rampage", loadout: fury, spell: "Rampage", build: 79},
		{name: "fists of fury", loadout: windwalker, spell: "Fists of Fury", build: 2},
		{name: "blackout kick", loadout: brewmaster, spell: "Blackout Kick", build: 1},
		{name: "shield block", loadout: protectionWarrior, spell: "Shield Block", build: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caster := newHero(t, tt.loadout)
			caster.Resource.Add(tt.build)
			pool := caster.Pool.Current()

			for i := 0; i < 5; i++ {
				assert.Nil(t, cast(t, catalog, caster, tt.spell, healthyTarget))
				assert.Equal(t, tt.build, caster.Resource.Current())
				assert.Equal(t, pool, caster.Pool.Current())
			}
		})
	}
}

func TestFinalVerdict_SpendsHolyPower(t *testing.T) {
	catalog := spells.NewCatalog()
	paladin := newHero(t, retribution)
	paladin.Resource.Add(4)

	payload := cast(t, catalog, paladin, "Final Verdict", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 165, payload.SpellDamage)
	assert.Equal(t, 1, paladin.Resource.Current())
}

func TestWordOfGlory(t *testing.T) {
	catalog := spells.NewCatalog()
	paladin := newHero(t, protectionPaladin)
	paladin.Resource.Add(3)

	payload := cast(t, catalog, paladin, "Word of Glory", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 120, payload.Heal)
	assert.Zero(t, payload.SpellDamage)
	assert.Equal(t, 0, paladin.Resource.Current())
}

func TestDivineShield_OverridesReduction(t *testing.T) {
	catalog := spells.NewCatalog()
	paladin := newHero(t, retribution)

	payload := cast(t, catalog, paladin, "Divine Shield", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, spells.ReductionSet, payload.ReductionMode)
	assert.Equal(t, 100, payload.DamageReduction)
	assert.Equal(t, 2, payload.TurnsActive)
	assert.Equal(t, 9, payload.Cooldown)
	assert.Equal(t, spells.RecipientSelf, payload.AppliesTo)
	assert.Zero(t, payload.SpellDamage)

	effects := payload.TimedEffects()
	require.Len(t, effects, 1)
	assert.Equal(t, shared.EffectDamageReductionSet, effects[0].Kind)
	assert.Equal(t, "divine_shield", effects[0].Tag)
}

func TestBloodbath(t *testing.T) {
	catalog := spells.NewCatalog()

	t.Run("not enough rage lands the weak hit", func(t *testing.T) {
		warrior := newHero(t, fury)

		payload := cast(t, catalog, warrior, "Bloodbath", healthyTarget)
		require.NotNil(t, payload)
		assert.Equal(t, 42, payload.SpellDamage)
		assert.Zero(t, payload.HealthLeech)
		assert.Equal(t, 10, warrior.Resource.Current())
	})

	t.Run("generated rage can complete the spend", func(t *testing.T) {
		warrior := newHero(t, fury)
		warrior.Resource.Add(30)

		payload := cast(t, catalog, warrior, "Bloodbath", healthyTarget)
		require.NotNil(t, payload)
		assert.Equal(t, 126, payload.SpellDamage)
		assert.Equal(t, 26, payload.HealthLeech)
		assert.Equal(t, 0, warrior.Resource.Current())
	})
}

func TestRampage(t *testing.T) {
	catalog := spells.NewCatalog()
	warrior := newHero(t, fury)

	for i := 0; i < 6; i++ {
		require.NotNil(t, cast(t, catalog, warrior, "Raging Blow", healthyTarget))
	}
	assert.Equal(t, 72, warrior.Resource.Current())
	require.NotNil(t, cast(t, catalog, warrior, "Bloodthirst", healthyTarget))
	assert.Equal(t, 87, warrior.Resource.Current())

	payload := cast(t, catalog, warrior, "Rampage", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 210, payload.SpellDamage)
	assert.Equal(t, 7, warrior.Resource.Current())
}

func TestLavaBurst_FlameShockIsAPureRead(t *testing.T) {
	catalog := spells.NewCatalog()
	shaman := newHero(t, elemental)
	target := spells.Target{HealthPercent: 90, Tags: []string{"flame_shock"}}

	payload := cast(t, catalog, shaman, "Lava Burst", target)
	require.NotNil(t, payload)
	assert.Equal(t, 240, payload.SpellDamage)
	assert.True(t, payload.Amplified)
	assert.Equal(t, []string{"flame_shock"}, target.Tags)

	payload = cast(t, catalog, shaman, "Lava Burst", target)
	assert.Equal(t, 240, payload.SpellDamage, "the tag is still there for the next cast")

	payload = cast(t, catalog, shaman, "Lava Burst", healthyTarget)
	assert.Equal(t, 120, payload.SpellDamage)
	assert.False(t, payload.Amplified)
}

func TestDamageOverTime_ChainsOffInitialHit(t *testing.T) {
	catalog := spells.NewCatalog()

	tests := []struct {
		name            string
		loadout         shared.Loadout
		spell           string
		expectedInitial int
		expectedPeriod  int
		expectedLeech   int
		expectedTurns   int
		expectedTag     string
	}{
		{name: "flamestrike", loadout: fireMage, spell: "Flamestrike", expectedInitial: 63, expectedPeriod: 26, expectedTurns: 3, expectedTag: "flamestrike"},
		{name: "flame shock", loadout: elemental, spell: "Flame Shock", expectedInitial: 40, expectedPeriod: 20, expectedTurns: 4, expectedTag: "flame_shock"},
		{name: "primordial wave", loadout: enhancement, spell: "Primordial Wave", expectedInitial: 39, expectedPeriod: 10, expectedTurns: 3, expectedTag: "flame_shock"},
		{name: "devouring plague", loadout: shadowPriest, spell: "Devouring Plague", expectedInitial: 140, expectedPeriod: 19, expectedLeech: 42, expectedTurns: 3, expectedTag: "devouring_plague"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := cast(t, catalog, newHero(t, tt.loadout), tt.spell, healthyTarget)
			require.NotNil(t, payload)

			assert.Equal(t, tt.expectedInitial, payload.InitialSpellDamage)
			assert.Equal(t, tt.expectedInitial, payload.SpellDamage)
			assert.Equal(t, tt.expectedPeriod, payload.DamageOverTime)
			assert.Equal(t, tt.expectedLeech, payload.HealthLeech)
			assert.Equal(t, tt.expectedTurns, payload.TurnsActive)
			assert.Equal(t, spells.RecipientTarget, payload.AppliesTo)

			effects := payload.TimedEffects()
			require.Len(t, effects, 1)
			assert.Equal(t, shared.EffectDamageOverTime, effects[0].Kind)
			assert.Equal(t, tt.expectedTag, effects[0].Tag)
			assert.Equal(t, tt.expectedPeriod, effects[0].Magnitude)
		})
	}
}

func TestShadowWordDeath(t *testing.T) {
	catalog := spells.NewCatalog()

	t.Run("healthy target", func(t *testing.T) {
		priest := newHero(t, shadowPriest)
		payload := cast(t, catalog, priest, "Shadow Word: Death", spells.Target{HealthPercent: 20})
		require.NotNil(t, payload)
		assert.Equal(t, 77, payload.SpellDamage)
		assert.False(t, payload.Executed)
		assert.Equal(t, 38, payload.Backlash)
		assert.Equal(t, 5, priest.Resource.Current())
	})

	t.Run("execute below twenty percent", func(t *testing.T) {
		priest := newHero(t, shadowPriest)
		payload := cast(t, catalog, priest, "shadow word death", spells.Target{HealthPercent: 19})
		require.NotNil(t, payload)
		assert.Equal(t, 193, payload.SpellDamage)
		assert.True(t, payload.Executed)
	})
}

func TestFlashHeal_RemovesInsanity(t *testing.T) {
	catalog := spells.NewCatalog()
	priest := newHero(t, shadowPriest)

	require.NotNil(t, cast(t, catalog, priest, "Mind Blast", healthyTarget))
	assert.Equal(t, 8, priest.Resource.Current())

	payload := cast(t, catalog, priest, "Flash Heal", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 183, payload.Heal)
	assert.Equal(t, 0, priest.Resource.Current())
}

func TestPowerWordShield(t *testing.T) {
	catalog := spells.NewCatalog()
	payload := cast(t, catalog, newHero(t, shadowPriest), "Power Word: Shield", healthyTarget)

	require.NotNil(t, payload)
	assert.Equal(t, 303, payload.Absorb)
	assert.Equal(t, 90, payload.SpellCost)

	effects := payload.TimedEffects()
	require.Len(t, effects, 1)
	assert.Equal(t, shared.EffectAbsorb, effects[0].Kind)
	assert.Equal(t, 303, effects[0].Magnitude)
}

func TestFireBlast_DebuffsTheTarget(t *testing.T) {
	catalog := spells.NewCatalog()
	mage := newHero(t, fireMage)

	payload := cast(t, catalog, mage, "Fire Blast", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 91, payload.SpellDamage)
	assert.Equal(t, -15, payload.DamageReduction)
	assert.Equal(t, spells.RecipientTarget, payload.AppliesTo)
	assert.Equal(t, 0, mage.DamageReduction(), "the caster keeps its own reduction")
}

func TestArcaneIntellect(t *testing.T) {
	catalog := spells.NewCatalog()
	payload := cast(t, catalog, newHero(t, fireMage), "Arcane Intellect", healthyTarget)

	require.NotNil(t, payload)
	assert.Equal(t, 11, payload.SpellPowerBonus)
	assert.Equal(t, 4, payload.TurnsActive)
	assert.Equal(t, 36, payload.SpellCost)
}

func TestPolymorph(t *testing.T) {
	catalog := spells.NewCatalog()
	payload := cast(t, catalog, newHero(t, fireMage), "Polymorph", healthyTarget)

	require.NotNil(t, payload)
	effects := payload.TimedEffects()
	require.Len(t, effects, 1)
	assert.Equal(t, shared.EffectIncapacitate, effects[0].Kind)
	assert.Equal(t, "polymorph", effects[0].Tag)
	assert.Equal(t, 2, effects[0].TurnsRemaining)
}

func TestMonk(t *testing.T) {
	catalog := spells.NewCatalog()
	monk := newHero(t, brewmaster)

	payload := cast(t, catalog, monk, "Tiger Palm", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 13, payload.SpellDamage)
	assert.Equal(t, 24, payload.SpellCost)
	assert.Equal(t, 2, monk.Resource.Current())

	payload = cast(t, catalog, monk, "Keg Smash", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 45, payload.SpellDamage)
	assert.Equal(t, 30, payload.DamageReduction)
	assert.Equal(t, 4, monk.Resource.Current())

	payload = cast(t, catalog, monk, "Blackout Kick", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 39, payload.SpellDamage)
	assert.Equal(t, 1, monk.Resource.Current())

	payload = cast(t, catalog, monk, "Vivify", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, 78, payload.Heal)
}

func TestMonkCosts_FollowPoolSize(t *testing.T) {
	catalog := spells.NewCatalog()

	tests := []struct {
		loadout shared.Loadout
		spell   string
		cost    int
	}{
		{loadout: windwalker, spell: "Spinning Crane Kick", cost: 39},
		{loadout: brewmaster, spell: "Spinning Crane Kick", cost: 26},
		{loadout: windwalker, spell: "Vivify", cost: 30},
		{loadout: brewmaster, spell: "Vivify", cost: 20},
	}

	for _, tt := range tests {
		t.Run(tt.loadout.String()+" "+tt.spell, func(t *testing.T) {
			monk := newHero(t, tt.loadout)
			before := monk.Pool.Current()

			payload := cast(t, catalog, monk, tt.spell, healthyTarget)
			require.NotNil(t, payload)
			assert.Equal(t, tt.cost, before-monk.Pool.Current())
		})
	}
}

func TestFeralSpirit_OnlyPeriodicDamage(t *testing.T) {
	catalog := spells.NewCatalog()
	payload := cast(t, catalog, newHero(t, enhancement), "Feral Spirit", healthyTarget)

	require.NotNil(t, payload)
	assert.Zero(t, payload.SpellDamage)
	assert.Equal(t, 21, payload.DamageOverTime)
	assert.Equal(t, "feral_spirit", payload.EffectTag)
}

func TestTimedEffects_NoneForPlainHits(t *testing.T) {
	catalog := spells.NewCatalog()
	payload := cast(t, catalog, newHero(t, elemental), "Earth Shock", healthyTarget)

	require.NotNil(t, payload)
	assert.Equal(t, 200, payload.SpellDamage)
	assert.Empty(t, payload.TimedEffects())

	var nothing *spells.Payload
	assert.Empty(t, nothing.TimedEffects())
}
