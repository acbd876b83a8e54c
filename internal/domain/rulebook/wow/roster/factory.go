package roster

import (
	"strings"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	"github.com/KirkDiggler/duel-engine/internal/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Factory builds heroes from a roster table
type Factory struct {
	table      *Table
	uuid       uuid.Generator
	manaPolicy resource.Policy
}

// FactoryConfig holds dependencies for the factory
type FactoryConfig struct {
	Table         *Table
	UUIDGenerator uuid.Generator
	ManaPolicy    resource.Policy
}

// NewFactory creates a factory. A nil table panics since nothing can be built without one.
func NewFactory(cfg *FactoryConfig) *Factory {
	if cfg.Table == nil {
		panic("roster table is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &Factory{
		table:      cfg.Table,
		uuid:       gen,
		manaPolicy: cfg.ManaPolicy,
	}
}

// Table returns the roster the factory builds from
func (f *Factory) Table() *Table {
	return f.table
}

// Create builds a hero for class and a role or spec name. An empty name
// falls back to the loadout, e.g. "Fire Mage".
func (f *Factory) Create(class, roleOrSpec, name string) (*hero.Hero, error) {
	classEntry, specEntry, err := f.table.Resolve(class, roleOrSpec)
	if err != nil {
		return nil, err
	}

	loadout := shared.Loadout{Class: classEntry.Name, Spec: specEntry.Name}
	if name = strings.TrimSpace(name); name != "" {
		name = cases.Title(language.English).String(name)
	} else {
		name = loadout.String()
	}

	return hero.New(&hero.Config{
		ID:              f.uuid.New(),
		Name:            name,
		Loadout:         loadout,
		MaxHealth:       specEntry.Health,
		MaxPool:         specEntry.Pool,
		AttackPower:     specEntry.AttackPower,
		SpellPower:      specEntry.SpellPower,
		DamageReduction: specEntry.DamageReduction,
		Resource:        resource.New(classEntry.Resource, classEntry.ResourceMax),
		ManaPolicy:      f.manaPolicy,
	}), nil
}
