package combat

import (
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
)

// DuelStatus represents the current state of a duel
type DuelStatus string

const (
	DuelStatusActive    DuelStatus = "active"    // Turns are being taken
	DuelStatusCompleted DuelStatus = "completed" // One side was defeated
	DuelStatusStalemate DuelStatus = "stalemate" // Turn limit reached with both standing
)

// maxCombatLog bounds the log kept on a duel
const maxCombatLog = 20

// Duel alternates turns between two heroes, challenger first.
// Act and the accessor methods are safe to call from different goroutines;
// read the exported fields directly only once no turn can be in flight.
type Duel struct {
	mu sync.RWMutex

	ID         string     `json:"id"`
	Challenger *hero.Hero `json:"challenger"`
	Opponent   *hero.Hero `json:"opponent"`
	Status     DuelStatus `json:"status"`
	Round      int        `json:"round"`       // Starts at 1; both sides act once per round
	Turn       int        `json:"turn"`        // 0 = challenger, 1 = opponent
	TurnsTaken int        `json:"turns_taken"` // Total turns across both sides
	MaxTurns   int        `json:"max_turns"`   // 0 means unlimited
	WinnerID   string     `json:"winner_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	EndedAt    *time.Time `json:"ended_at"`
	CombatLog  []string   `json:"combat_log"`
}

// NewDuel creates an active duel with the challenger to act
func NewDuel(id string, challenger, opponent *hero.Hero, maxTurns int) *Duel {
	return &Duel{
		ID:         id,
		Challenger: challenger,
		Opponent:   opponent,
		Status:     DuelStatusActive,
		Round:      1,
		MaxTurns:   maxTurns,
		CreatedAt:  time.Now(),
		CombatLog:  []string{},
	}
}

// Attacker returns the hero whose turn it is
func (d *Duel) Attacker() *hero.Hero {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attacker()
}

// Defender returns the hero waiting for their turn
func (d *Duel) Defender() *hero.Hero {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.defender()
}

func (d *Duel) attacker() *hero.Hero {
	if d.Turn == 0 {
		return d.Challenger
	}
	return d.Opponent
}

func (d *Duel) defender() *hero.Hero {
	if d.Turn == 0 {
		return d.Opponent
	}
	return d.Challenger
}

// IsActive reports whether turns can still be taken
func (d *Duel) IsActive() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Status == DuelStatusActive
}

// Winner returns the winning hero, or nil if there is none yet
func (d *Duel) Winner() *hero.Hero {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch d.WinnerID {
	case "":
		return nil
	case d.Challenger.ID:
		return d.Challenger
	default:
		return d.Opponent
	}
}

// Act resolves the current attacker's turn and passes play to the other side.
// The defender's live effect tags are handed to the spell as target effects.
func (d *Duel) Act(engine *Engine, spell string) (*AttackResult, error) {
	if engine == nil {
		return nil, duelerr.InvalidArgument("engine is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.Status {
	case DuelStatusCompleted:
		loser := d.Challenger
		if d.WinnerID == d.Challenger.ID {
			loser = d.Opponent
		}
		return nil, duelerr.CombatOver(loser.DisplayName())
	case DuelStatusStalemate:
		return nil, duelerr.Newf(duelerr.CodeCombatOver, "duel %s ended in a stalemate after %d turns", d.ID, d.TurnsTaken)
	}

	attacker, defender := d.attacker(), d.defender()
	result, err := engine.ResolveAttack(attacker, defender, spell, defender.EffectTags())
	if err != nil {
		return nil, err
	}

	d.addCombatLogEntry(Describe(attacker, defender, result))
	d.TurnsTaken++

	switch result.State {
	case StateAttackerWins:
		d.end(DuelStatusCompleted, attacker.ID)
	case StateDefenderWins:
		d.end(DuelStatusCompleted, defender.ID)
	default:
		if d.MaxTurns > 0 && d.TurnsTaken >= d.MaxTurns {
			d.end(DuelStatusStalemate, "")
			break
		}
		d.nextTurn()
	}

	return result, nil
}

func (d *Duel) nextTurn() {
	d.Turn++
	if d.Turn > 1 {
		d.Turn = 0
		d.Round++
	}
}

func (d *Duel) end(status DuelStatus, winnerID string) {
	now := time.Now()
	d.Status = status
	d.WinnerID = winnerID
	d.EndedAt = &now
}

// AddCombatLogEntry adds an entry to the combat log
func (d *Duel) AddCombatLogEntry(entry string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.addCombatLogEntry(entry)
}

func (d *Duel) addCombatLogEntry(entry string) {
	if d.CombatLog == nil {
		d.CombatLog = []string{}
	}
	logEntry := fmt.Sprintf("Round %d: %s", d.Round, entry)
	d.CombatLog = append(d.CombatLog, logEntry)

	// Keep only the most recent entries
	if len(d.CombatLog) > maxCombatLog {
		d.CombatLog = d.CombatLog[len(d.CombatLog)-maxCombatLog:]
	}
}
