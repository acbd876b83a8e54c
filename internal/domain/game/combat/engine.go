package combat

import (
	"log/slog"

	"github.com/KirkDiggler/duel-engine/internal/domain/events"
	"github.com/KirkDiggler/duel-engine/internal/domain/hero"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/spells"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"github.com/KirkDiggler/duel-engine/internal/uuid"
)

// Engine resolves turns between two heroes. It keeps no per-combat state,
// so the caller decides who attacks on each call.
type Engine struct {
	catalog *spells.Catalog
	bus     events.Bus
	uuid    uuid.Generator
	logger  *slog.Logger
}

// EngineConfig holds dependencies for the engine
type EngineConfig struct {
	Catalog       *spells.Catalog
	EventBus      events.Bus // optional
	UUIDGenerator uuid.Generator
	Logger        *slog.Logger
}

// NewEngine creates an engine, filling in defaults for anything left nil
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	e := &Engine{
		catalog: cfg.Catalog,
		bus:     cfg.EventBus,
		uuid:    cfg.UUIDGenerator,
		logger:  cfg.Logger,
	}
	if e.catalog == nil {
		e.catalog = spells.NewCatalog()
	}
	if e.uuid == nil {
		e.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Catalog returns the spell catalog turns are resolved against
func (e *Engine) Catalog() *spells.Catalog {
	return e.catalog
}

// Mitigate subtracts reduction from damage, never going below zero
func Mitigate(damage, reduction int) int {
	if reduction < 0 {
		reduction = 0
	}
	return max(0, damage-reduction)
}

// ResolveAttack runs one turn: attacker casts spellName at defender.
// targetEffects are the tags the caller sees on the defender.
//
// A turn whose spell cannot resolve (not enough resource, on cooldown,
// incapacitated caster) still consumes the turn and ticks both heroes.
// Cooldowns only count down for the attacker, so a cooldown of N blocks
// the caster's next N turns however the turns alternate.
// Unknown spells and finished combats are errors and change nothing.
func (e *Engine) ResolveAttack(attacker, defender *hero.Hero, spellName string, targetEffects []string) (*AttackResult, error) {
	if attacker == nil || defender == nil {
		return nil, duelerr.InvalidArgument("attacker and defender are required")
	}
	if !defender.IsAlive() {
		return nil, duelerr.CombatOver(defender.DisplayName())
	}
	if !attacker.IsAlive() {
		return nil, duelerr.CombatOver(attacker.DisplayName())
	}

	spell, err := e.catalog.Lookup(attacker.Loadout, spellName)
	if err != nil {
		return nil, err
	}

	result := &AttackResult{Spell: spell.Name}

	switch {
	case attacker.IsIncapacitated():
		result.Reason = ReasonIncapacitated
	case attacker.CooldownRemaining(spell.Key) > 0:
		result.Reason = ReasonOnCooldown
	default:
		target := spells.Target{HealthPercent: defender.HealthPercent(), Tags: targetEffects}
		result.Effect = spell.Cast(attacker, target)
		if result.Effect == nil {
			result.Reason = ReasonInsufficientResource
		}
	}

	if result.NoEffect() {
		e.emit(events.NewGameEvent(events.SpellNoEffect, attacker).
			WithTarget(defender).
			WithSpell(spell.Name).
			WithContext(events.ContextReason, string(result.Reason)))
	} else {
		e.emit(events.NewGameEvent(events.SpellCast, attacker).
			WithTarget(defender).
			WithSpell(spell.Name).
			WithAmount(result.Effect.SpellCost))
		e.applyDirect(attacker, defender, result)
	}

	result.AttackerTick = e.tick(attacker)
	result.AttackerTick.ReadySpells = attacker.TickCooldowns()
	result.DefenderTick = e.tick(defender)

	if !result.NoEffect() {
		e.register(attacker, defender, spell, result.Effect)
	}

	result.AttackerHealthAfter = attacker.Health.Current
	result.DefenderHealthAfter = defender.Health.Current
	result.State = winner(attacker, defender)

	e.logger.Debug("turn resolved",
		"attacker", attacker.DisplayName(),
		"defender", defender.DisplayName(),
		"spell", spell.Name,
		"no_effect", result.NoEffect(),
		"reason", string(result.Reason),
		"damage", result.DamageDealt,
		"healed", result.Healed,
		"attacker_health", result.AttackerHealthAfter,
		"defender_health", result.DefenderHealthAfter,
	)

	if result.IsOver() {
		e.logger.Info("combat ended",
			"outcome", result.State.String(),
			"attacker", attacker.DisplayName(),
			"defender", defender.DisplayName(),
		)
		e.emit(events.NewGameEvent(events.CombatEnded, attacker).
			WithTarget(defender).
			WithSpell(spell.Name).
			WithContext(events.ContextOutcome, result.State.String()))
	}

	return result, nil
}

// applyDirect lands the immediate part of a payload: the hit, then healing,
// then backlash if the defender is still standing
func (e *Engine) applyDirect(attacker, defender *hero.Hero, result *AttackResult) {
	payload := result.Effect

	if payload.SpellDamage > 0 {
		result.RawDamage = payload.SpellDamage
		landed := Mitigate(payload.SpellDamage, defender.DamageReduction())
		result.Mitigated = payload.SpellDamage - landed

		hit := defender.TakeDamage(landed)
		result.Absorbed = hit.Absorbed
		result.DamageDealt = hit.Lost
		result.Overkill = hit.Overkill

		e.emit(events.NewGameEvent(events.DamageDealt, attacker).
			WithTarget(defender).
			WithSpell(payload.Spell).
			WithAmount(hit.Lost).
			WithContext(events.ContextRaw, result.RawDamage).
			WithContext(events.ContextMitigated, result.Mitigated).
			WithContext(events.ContextAbsorbed, hit.Absorbed).
			WithContext(events.ContextOverkill, hit.Overkill))
	}

	if payload.HealthLeech > 0 {
		healed := attacker.Heal(payload.HealthLeech)
		result.Healed += healed
		e.emitHealing(attacker, payload.Spell, healed, "leech")
	}
	if payload.Heal > 0 {
		healed := attacker.Heal(payload.Heal)
		result.Healed += healed
		e.emitHealing(attacker, payload.Spell, healed, "heal")
	}

	if payload.Backlash > 0 && defender.IsAlive() {
		hit := attacker.TakeDamage(payload.Backlash)
		result.BacklashTaken = hit.Lost

		e.emit(events.NewGameEvent(events.DamageDealt, attacker).
			WithTarget(attacker).
			WithSpell(payload.Spell).
			WithAmount(hit.Lost).
			WithContext(events.ContextSource, "backlash").
			WithContext(events.ContextAbsorbed, hit.Absorbed))
	}
}

// tick advances one hero's clock and reports what happened
func (e *Engine) tick(h *hero.Hero) hero.TickReport {
	report := h.Tick()

	if periodic := report.PeriodicDamage; periodic.Lost > 0 || periodic.Absorbed > 0 {
		e.emit(events.NewGameEvent(events.DamageDealt, nil).
			WithTarget(h).
			WithAmount(periodic.Lost).
			WithContext(events.ContextPeriodic, true).
			WithContext(events.ContextAbsorbed, periodic.Absorbed).
			WithContext(events.ContextOverkill, periodic.Overkill))
	}

	for _, expired := range report.Expired {
		e.emit(events.NewGameEvent(events.EffectExpired, nil).
			WithTarget(h).
			WithSpell(expired.Source).
			WithContext(events.ContextEffectKind, string(expired.Kind)).
			WithContext(events.ContextEffectTag, expired.Tag))
	}

	return report
}

// register starts the payload's timed effects and the spell's cooldown.
// They are added after the tick so they first count down on the owner's next turn.
func (e *Engine) register(attacker, defender *hero.Hero, spell *spells.Spell, payload *spells.Payload) {
	recipient := attacker
	if payload.AppliesTo == spells.RecipientTarget {
		recipient = defender
	}

	for _, effect := range payload.TimedEffects() {
		effect.ID = e.uuid.New()
		effect.SourceID = attacker.ID
		recipient.AddEffect(effect)

		e.emit(events.NewGameEvent(events.EffectApplied, attacker).
			WithTarget(recipient).
			WithSpell(spell.Name).
			WithAmount(effect.Magnitude).
			WithContext(events.ContextEffectKind, string(effect.Kind)).
			WithContext(events.ContextEffectTag, effect.Tag).
			WithContext(events.ContextTurns, effect.TurnsRemaining))
	}

	attacker.StartCooldown(spell.Key, payload.Cooldown)
}

func (e *Engine) emitHealing(h *hero.Hero, spell string, amount int, source string) {
	e.emit(events.NewGameEvent(events.HealingDone, h).
		WithTarget(h).
		WithSpell(spell).
		WithAmount(amount).
		WithContext(events.ContextSource, source))
}

// emit publishes to the bus if there is one. Listener failures are logged;
// the turn has already happened.
func (e *Engine) emit(event *events.GameEvent) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Emit(event); err != nil {
		e.logger.Warn("event listener failed", "event", event.Type.String(), "error", err)
	}
}

// winner applies the win check. Only the defender can fall to the attack
// itself, so it is checked first.
func winner(attacker, defender *hero.Hero) State {
	switch {
	case !defender.IsAlive():
		return StateAttackerWins
	case !attacker.IsAlive():
		return StateDefenderWins
	default:
		return StateOngoing
	}
}
