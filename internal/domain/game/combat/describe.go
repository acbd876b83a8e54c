package combat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
)

// Describe renders one turn as a single human readable line
func Describe(attacker, defender *hero.Hero, result *AttackResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	if result.NoEffect() {
		fmt.Fprintf(&b, "%s's %s has no effect (%s)", attacker.DisplayName(), result.Spell,
			strings.ReplaceAll(string(result.Reason), "_", " "))
	} else {
		fmt.Fprintf(&b, "%s casts %s", attacker.DisplayName(), result.Spell)
		if result.RawDamage > 0 {
			fmt.Fprintf(&b, " on %s for %d damage", defender.DisplayName(), result.DamageDealt)
			var notes []string
			if result.Mitigated > 0 {
				notes = append(notes, fmt.Sprintf("%d mitigated", result.Mitigated))
			}
			if result.Absorbed > 0 {
				notes = append(notes, fmt.Sprintf("%d absorbed", result.Absorbed))
			}
			if result.Effect.Executed {
				notes = append(notes, "execute")
			}
			if result.Effect.Amplified {
				notes = append(notes, "amplified")
			}
			if len(notes) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(notes, ", "))
			}
		}
		if result.Healed > 0 {
			fmt.Fprintf(&b, ", healing for %d", result.Healed)
		}
		if result.BacklashTaken > 0 {
			fmt.Fprintf(&b, ", taking %d backlash", result.BacklashTaken)
		}
	}

	tickLine(&b, attacker, result.AttackerTick)
	tickLine(&b, defender, result.DefenderTick)

	switch result.State {
	case StateAttackerWins:
		fmt.Fprintf(&b, ". %s is defeated", defender.DisplayName())
	case StateDefenderWins:
		fmt.Fprintf(&b, ". %s is defeated", attacker.DisplayName())
	}

	return b.String()
}

func tickLine(b *strings.Builder, h *hero.Hero, report hero.TickReport) {
	if report.PeriodicDamage.Lost > 0 {
		fmt.Fprintf(b, "; %s suffers %d periodic damage", h.DisplayName(), report.PeriodicDamage.Lost)
	}
	for _, expired := range report.Expired {
		fmt.Fprintf(b, "; %s fades from %s", expired.Source, h.DisplayName())
	}
}
