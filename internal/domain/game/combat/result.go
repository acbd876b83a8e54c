package combat

import (
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
)

// State is where a combat stands after a turn
type State int

const (
	StateOngoing State = iota
	StateAttackerWins
	StateDefenderWins
)

func (s State) String() string {
	switch s {
	case StateAttackerWins:
		return "attacker_wins"
	case StateDefenderWins:
		return "defender_wins"
	default:
		return "ongoing"
	}
}

// Reason explains a turn that had no effect
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonInsufficientResource Reason = "insufficient_resource"
	ReasonOnCooldown           Reason = "on_cooldown"
	ReasonIncapacitated        Reason = "incapacitated"
)

// AttackResult is the outcome of one turn
type AttackResult struct {
	Spell  string          `json:"spell"`
	Effect *spells.Payload `json:"effect"` // nil when the turn had no effect
	Reason Reason          `json:"reason,omitempty"`

	RawDamage     int `json:"raw_damage"`
	Mitigated     int `json:"mitigated"` // removed by damage reduction
	Absorbed      int `json:"absorbed"`
	DamageDealt   int `json:"damage_dealt"`
	Overkill      int `json:"overkill"`
	Healed        int `json:"healed"`
	BacklashTaken int `json:"backlash_taken"`

	AttackerTick hero.TickReport `json:"-"`
	DefenderTick hero.TickReport `json:"-"`

	AttackerHealthAfter int   `json:"attacker_health_after"`
	DefenderHealthAfter int   `json:"defender_health_after"`
	State               State `json:"state"`
}

// NoEffect reports whether the turn was consumed without the spell resolving
func (r *AttackResult) NoEffect() bool {
	return r.Effect == nil
}

// IsOver reports whether the turn ended the combat
func (r *AttackResult) IsOver() bool {
	return r.State != StateOngoing
}
