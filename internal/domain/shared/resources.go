package shared

// HPResource tracks a hero's health. Current stays within [0, Max].
type HPResource struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
}

// NewHPResource returns a full health pool
func NewHPResource(maxHP int) HPResource {
	if maxHP < 1 {
		maxHP = 1
	}
	return HPResource{Current: maxHP, Max: maxHP}
}

// Damage subtracts amount and returns the health actually lost.
// Anything past zero is overkill and is dropped.
func (hp *HPResource) Damage(amount int) int {
	if amount <= 0 || hp.Current <= 0 {
		return 0
	}

	if amount > hp.Current {
		lost := hp.Current
		hp.Current = 0
		return lost
	}

	hp.Current -= amount
	return amount
}

// Heal restores hit points up to max and returns the amount actually healed.
// Overheal is discarded.
func (hp *HPResource) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	oldHP := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - oldHP
}

// IsAlive reports whether health is above zero
func (hp *HPResource) IsAlive() bool {
	return hp.Current > 0
}

// Percent returns current health as a whole percentage of max, rounded down
func (hp *HPResource) Percent() int {
	if hp.Max <= 0 || hp.Current <= 0 {
		return 0
	}
	return hp.Current * 100 / hp.Max
}
