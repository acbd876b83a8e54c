package shared

// Class is a hero archetype
type Class string

const (
	ClassPaladin Class = "Paladin"
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassPriest  Class = "Priest"
	ClassShaman  Class = "Shaman"
	ClassMonk    Class = "Monk"
)

// Classes lists every playable class in menu order
var Classes = []Class{ClassWarrior, ClassMage, ClassPaladin, ClassShaman, ClassMonk, ClassPriest}

// Spec is the specialization a class plays (Retribution, Brewmaster, ...)
type Spec string

const (
	SpecRetribution       Spec = "Retribution"
	SpecProtectionPaladin Spec = "Protection"
	SpecFury              Spec = "Fury"
	SpecProtectionWarrior Spec = "Protection"
	SpecFire              Spec = "Fire"
	SpecShadow            Spec = "Shadow"
	SpecEnhancement       Spec = "Enhancement"
	SpecElemental         Spec = "Elemental"
	SpecWindwalker        Spec = "Windwalker"
	SpecBrewmaster        Spec = "Brewmaster"
)

// Role is the combat role a player picks before the spec is resolved
type Role string

const (
	RoleTank   Role = "Tank"
	RoleDamage Role = "Damage"
)

// Loadout identifies a class and spec pair
type Loadout struct {
	Class Class `json:"class" yaml:"class"`
	Spec  Spec  `json:"spec" yaml:"spec"`
}

func (l Loadout) String() string {
	return string(l.Spec) + " " + string(l.Class)
}
