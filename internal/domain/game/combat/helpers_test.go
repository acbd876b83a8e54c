package combat_test

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

var (
	retribution  = shared.Loadout{Class: shared.ClassPaladin, Spec: shared.SpecRetribution}
	fury         = shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecFury}
	protWarrior  = shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecProtectionWarrior}
	fireMage     = shared.Loadout{Class: shared.ClassMage, Spec: shared.SpecFire}
	shadowPriest = shared.Loadout{Class: shared.ClassPriest, Spec: shared.SpecShadow}
	elemental    = shared.Loadout{Class: shared.ClassShaman, Spec: shared.SpecElemental}
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRetribution(name string) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: retribution,
		MaxHealth: 800, MaxPool: 300, SpellPower: 30, AttackPower: 75,
		Resource: resource.New(resource.KindHolyPower, 0),
	})
}

func newFury(name string) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: fury,
		MaxHealth: 1000, MaxPool: 300, AttackPower: 70,
		Resource: resource.New(resource.KindRage, 0),
	})
}

func newFireMage(name string) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: fireMage,
		MaxHealth: 700, MaxPool: 900, SpellPower: 110, AttackPower: 10,
		Resource: resource.New(resource.KindFireStacks, 0),
	})
}

func newShadowPriest(name string) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: shadowPriest,
		MaxHealth: 750, MaxPool: 900, SpellPower: 90, AttackPower: 10,
		Resource: resource.New(resource.KindInsanity, 0),
	})
}

func newElemental(name string) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: elemental,
		MaxHealth: 750, MaxPool: 700, SpellPower: 100, AttackPower: 10,
		Resource: resource.New(resource.KindMaelstrom, 0),
	})
}

// newDummy is a protection warrior with the given health and reduction
func newDummy(name string, health, reduction int) *hero.Hero {
	return hero.New(&hero.Config{
		ID: name, Name: name, Loadout: protWarrior,
		MaxHealth: health, MaxPool: 200, AttackPower: 50, DamageReduction: reduction,
		Resource: resource.New(resource.KindRage, 0),
	})
}
