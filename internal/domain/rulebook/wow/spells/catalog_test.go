package spells_test

import (
	"testing"

	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Avenger's Shield", expected: "avengers_shield"},
		{input: "avengers-shield", expected: "avengers_shield"},
		{input: "Shadow Word: Death", expected: "shadow_word_death"},
		{input: "  FIREBALL ", expected: "fireball"},
		{input: "champion’s spear", expected: "champions_spear"},
		{input: "lava_burst", expected: "lava_burst"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, spells.Normalize(tt.input))
		})
	}
}

func TestCatalog_Books(t *testing.T) {
	catalog := spells.NewCatalog()

	expected := map[shared.Loadout]int{
		retribution:       8,
		protectionPaladin: 7,
		fury:              5,
		protectionWarrior: 6,
		fireMage:          5,
		shadowPriest:      5,
		enhancement:       8,
		elemental:         5,
		windwalker:        6,
		brewmaster:        8,
	}

	assert.Len(t, catalog.Loadouts(), len(expected))
	for loadout, count := range expected {
		book, err := catalog.Book(loadout)
		require.NoError(t, err, loadout.String())
		assert.Len(t, book.Spells(), count, loadout.String())
	}
}

func TestCatalog_UnknownSpell(t *testing.T) {
	catalog := spells.NewCatalog()

	_, err := catalog.Lookup(retribution, "Fireball")
	require.Error(t, err)
	assert.True(t, duelerr.IsUnknownSpell(err))
	assert.Equal(t, "Fireball", duelerr.GetMeta(err)["spell"])
}

func TestCatalog_SharedSpellsStayWithinClass(t *testing.T) {
	catalog := spells.NewCatalog()

	_, err := catalog.Lookup(protectionPaladin, "Crusader Strike")
	assert.NoError(t, err)

	_, err = catalog.Lookup(protectionPaladin, "Final Verdict")
	assert.True(t, duelerr.IsUnknownSpell(err), "retribution finisher is not in the protection book")

	_, err = catalog.Lookup(elemental, "Stormstrike")
	assert.True(t, duelerr.IsUnknownSpell(err))
}

func TestCatalog_UnknownLoadout(t *testing.T) {
	catalog := spells.NewCatalog()

	_, err := catalog.Book(shared.Loadout{Class: shared.ClassMage, Spec: "Frost"})
	assert.True(t, duelerr.IsNotFound(err))
}

func TestSpell_CarriesNameAndCooldown(t *testing.T) {
	catalog := spells.NewCatalog()
	paladin := newHero(t, retribution)

	payload := cast(t, catalog, paladin, "judgement", healthyTarget)
	require.NotNil(t, payload)
	assert.Equal(t, "Judgement", payload.Spell)
	assert.Equal(t, 2, payload.Cooldown)
}
