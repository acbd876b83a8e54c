package spells

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
)

// Book holds the spells one class and spec can cast, keyed by normalized name
type Book struct {
	Loadout shared.Loadout
	byKey   map[string]*Spell
	ordered []*Spell
}

func newBook(loadout shared.Loadout, lists ...[]*Spell) *Book {
	book := &Book{
		Loadout: loadout,
		byKey:   make(map[string]*Spell),
	}
	for _, list := range lists {
		for _, spell := range list {
			book.byKey[spell.Key] = spell
			book.ordered = append(book.ordered, spell)
		}
	}
	return book
}

// Lookup finds a spell by any spelling of its name
func (b *Book) Lookup(name string) (*Spell, error) {
	spell, ok := b.byKey[Normalize(name)]
	if !ok {
		return nil, duelerr.UnknownSpell(string(b.Loadout.Class), string(b.Loadout.Spec), name)
	}
	return spell, nil
}

// Spells lists the book in menu order, class spells before spec spells
func (b *Book) Spells() []*Spell {
	out := make([]*Spell, len(b.ordered))
	copy(out, b.ordered)
	return out
}

// Catalog maps every playable loadout to its spell book
type Catalog struct {
	books    map[shared.Loadout]*Book
	loadouts []shared.Loadout
}

// NewCatalog builds every book. Books are immutable once built, so one
// catalog can be shared across duels.
func NewCatalog() *Catalog {
	c := &Catalog{books: make(map[shared.Loadout]*Book)}

	c.add(shared.Loadout{Class: shared.ClassPaladin, Spec: shared.SpecRetribution}, paladinSpells(), retributionSpells())
	c.add(shared.Loadout{Class: shared.ClassPaladin, Spec: shared.SpecProtectionPaladin}, paladinSpells(), protectionPaladinSpells())
	c.add(shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecFury}, furySpells())
	c.add(shared.Loadout{Class: shared.ClassWarrior, Spec: shared.SpecProtectionWarrior}, protectionWarriorSpells())
	c.add(shared.Loadout{Class: shared.ClassMage, Spec: shared.SpecFire}, fireMageSpells())
	c.add(shared.Loadout{Class: shared.ClassPriest, Spec: shared.SpecShadow}, shadowPriestSpells())
	c.add(shared.Loadout{Class: shared.ClassShaman, Spec: shared.SpecEnhancement}, shamanSpells(), enhancementSpells())
	c.add(shared.Loadout{Class: shared.ClassShaman, Spec: shared.SpecElemental}, shamanSpells(), elementalSpells())
	c.add(shared.Loadout{Class: shared.ClassMonk, Spec: shared.SpecWindwalker}, monkSpells(), windwalkerSpells())
	c.add(shared.Loadout{Class: shared.ClassMonk, Spec: shared.SpecBrewmaster}, monkSpells(), brewmasterSpells())

	return c
}

func (c *Catalog) add(loadout shared.Loadout, lists ...[]*Spell) {
	c.books[loadout] = newBook(loadout, lists...)
	c.loadouts = append(c.loadouts, loadout)
}

// Book returns the spell book for loadout
func (c *Catalog) Book(loadout shared.Loadout) (*Book, error) {
	book, ok := c.books[loadout]
	if !ok {
		return nil, duelerr.NotFoundf("no spell book for %s", loadout)
	}
	return book, nil
}

// Lookup resolves a spell name for loadout
func (c *Catalog) Lookup(loadout shared.Loadout, name string) (*Spell, error) {
	book, err := c.Book(loadout)
	if err != nil {
		return nil, err
	}
	return book.Lookup(name)
}

// Loadouts lists every loadout with a book
func (c *Catalog) Loadouts() []shared.Loadout {
	out := make([]shared.Loadout, len(c.loadouts))
	copy(out, c.loadouts)
	return out
}
