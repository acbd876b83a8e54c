package hero

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/resource"
	"github.com/KirkDiggler/duel-engine/internal/domain/shared"
)

// MaxDamageReduction caps damage reduction from every source
const MaxDamageReduction = 100

// Hero is one combatant's attributes and resources for a single duel
type Hero struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Loadout shared.Loadout `json:"loadout"`

	Health      shared.HPResource   `json:"health"`
	Pool        *resource.Pool      `json:"-"`
	Resource    resource.Controller `json:"-"`
	AttackPower int                 `json:"attack_power"`

	spellPower          int
	baseSpellPower      int
	damageReduction     int
	baseDamageReduction int

	effects   []*shared.ActiveEffect
	cooldowns map[string]int
}

// Config carries the resolved attributes a hero starts with
type Config struct {
	ID              string
	Name            string
	Loadout         shared.Loadout
	MaxHealth       int
	MaxPool         int
	AttackPower     int
	SpellPower      int
	DamageReduction int
	Resource        resource.Controller
	ManaPolicy      resource.Policy
}

// New builds a hero at full health and full pool
func New(cfg *Config) *Hero {
	ctrl := cfg.Resource
	if ctrl == nil {
		ctrl = resource.New(resource.KindNone, 0)
	}

	h := &Hero{
		ID:                  cfg.ID,
		Name:                cfg.Name,
		Loadout:             cfg.Loadout,
		Health:              shared.NewHPResource(cfg.MaxHealth),
		Pool:                resource.NewPool(cfg.MaxPool, cfg.ManaPolicy),
		Resource:            ctrl,
		AttackPower:         nonNegative(cfg.AttackPower),
		baseSpellPower:      nonNegative(cfg.SpellPower),
		baseDamageReduction: clampReduction(cfg.DamageReduction),
		cooldowns:           make(map[string]int),
	}
	h.spellPower = h.baseSpellPower
	h.damageReduction = h.baseDamageReduction

	return h
}

// DisplayName falls back to the loadout when no name was given
func (h *Hero) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.Loadout.String()
}

// IsAlive reports whether the hero can still fight
func (h *Hero) IsAlive() bool {
	return h.Health.IsAlive()
}

// HealthPercent is current health as a whole percentage of max
func (h *Hero) HealthPercent() int {
	return h.Health.Percent()
}

// Heal restores health clamped to max and returns the amount healed
func (h *Hero) Heal(amount int) int {
	if !h.IsAlive() {
		return 0
	}
	return h.Health.Heal(amount)
}

// SpellPower includes active bonuses
func (h *Hero) SpellPower() int {
	return h.spellPower
}

// BaseSpellPower is the value from the roster
func (h *Hero) BaseSpellPower() int {
	return h.baseSpellPower
}

// DamageReduction is subtracted from each incoming hit
func (h *Hero) DamageReduction() int {
	return h.damageReduction
}

// BaseDamageReduction is what reduction returns to once effects expire
func (h *Hero) BaseDamageReduction() int {
	return h.baseDamageReduction
}

// ApplyDamageReductionDelta shifts reduction by delta within [0, MaxDamageReduction].
// The change is not remembered: the next Tick or AddEffect rebuilds reduction
// from the base value and live timed effects. Use a timed effect for anything
// that must last.
func (h *Hero) ApplyDamageReductionDelta(delta int) {
	h.damageReduction = clampReduction(h.damageReduction + delta)
}

// SetDamageReduction pins reduction to value within [0, MaxDamageReduction].
// Like ApplyDamageReductionDelta it only holds until the next Tick or AddEffect.
func (h *Hero) SetDamageReduction(value int) {
	h.damageReduction = clampReduction(value)
}

func clampReduction(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxDamageReduction {
		return MaxDamageReduction
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
