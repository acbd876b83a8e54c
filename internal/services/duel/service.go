package duel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/duel-engine/internal/domain/game/combat"
	"github.com/KirkDiggler/duel-engine/internal/domain/rulebook/wow/roster"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
	"github.com/KirkDiggler/duel-engine/internal/repositories/duels"
	"github.com/KirkDiggler/duel-engine/internal/uuid"
)

// Service defines the duel service interface
type Service interface {
	// Start builds both heroes and opens a duel with the challenger to act
	Start(ctx context.Context, input *StartInput) (*combat.Duel, error)

	// Act resolves the current attacker's turn
	Act(ctx context.Context, input *ActInput) (*ActOutput, error)

	// Get retrieves a live duel by ID
	Get(ctx context.Context, duelID string) (*combat.Duel, error)

	// ListActive returns every live duel
	ListActive(ctx context.Context) ([]*combat.Duel, error)
}

// HeroInput picks a hero from the roster
type HeroInput struct {
	Class string `yaml:"class"`
	Role  string `yaml:"role"` // role or spec name
	Name  string `yaml:"name"`
}

// StartInput contains data for starting a duel
type StartInput struct {
	Challenger HeroInput
	Opponent   HeroInput
}

// ActInput names the spell the current attacker casts
type ActInput struct {
	DuelID string
	Spell  string
}

// ActOutput is the duel after the turn along with what the turn did
type ActOutput struct {
	Duel   *combat.Duel
	Result *combat.AttackResult
}

type service struct {
	repository duels.Repository
	factory    *roster.Factory
	engine     *combat.Engine
	uuid       uuid.Generator
	maxTurns   int
	logger     *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    duels.Repository
	Factory       *roster.Factory
	Engine        *combat.Engine
	UUIDGenerator uuid.Generator
	MaxTurns      int // 0 means unlimited
	Logger        *slog.Logger
}

// NewService creates a new duel service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Factory == nil {
		panic("factory is required")
	}

	svc := &service{
		repository: cfg.Repository,
		factory:    cfg.Factory,
		engine:     cfg.Engine,
		uuid:       cfg.UUIDGenerator,
		maxTurns:   cfg.MaxTurns,
		logger:     cfg.Logger,
		locks:      make(map[string]*sync.Mutex),
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.engine == nil {
		svc.engine = combat.NewEngine(&combat.EngineConfig{Logger: svc.logger})
	}

	return svc
}

// Start builds both heroes and opens a duel with the challenger to act
func (s *service) Start(ctx context.Context, input *StartInput) (*combat.Duel, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input cannot be nil")
	}

	challenger, err := s.factory.Create(input.Challenger.Class, input.Challenger.Role, input.Challenger.Name)
	if err != nil {
		return nil, duelerr.Wrap(err, "failed to create challenger")
	}
	opponent, err := s.factory.Create(input.Opponent.Class, input.Opponent.Role, input.Opponent.Name)
	if err != nil {
		return nil, duelerr.Wrap(err, "failed to create opponent")
	}

	duel := combat.NewDuel(s.uuid.New(), challenger, opponent, s.maxTurns)
	if err := s.repository.Create(ctx, duel); err != nil {
		return nil, duelerr.Wrap(err, "failed to store duel")
	}

	s.logger.Info("duel started",
		"duel_id", duel.ID,
		"challenger", challenger.DisplayName(),
		"challenger_loadout", challenger.Loadout.String(),
		"opponent", opponent.DisplayName(),
		"opponent_loadout", opponent.Loadout.String(),
	)

	return duel, nil
}

// Act resolves the current attacker's turn. A duel that ends on this turn
// is removed from the repository; the output still carries it.
func (s *service) Act(ctx context.Context, input *ActInput) (*ActOutput, error) {
	if input == nil {
		return nil, duelerr.InvalidArgument("input cannot be nil")
	}
	if input.DuelID == "" {
		return nil, duelerr.InvalidArgument("duel id is required")
	}

	lock := s.lockFor(input.DuelID)
	lock.Lock()
	defer lock.Unlock()

	duel, err := s.repository.Get(ctx, input.DuelID)
	if err != nil {
		if duelerr.IsNotFound(err) {
			s.releaseLock(input.DuelID)
		}
		return nil, err
	}

	result, err := duel.Act(s.engine, input.Spell)
	if err != nil {
		return nil, duelerr.Wrapf(err, "duel %s", duel.ID)
	}

	if duel.IsActive() {
		if err := s.repository.Update(ctx, duel); err != nil {
			return nil, duelerr.Wrap(err, "failed to update duel")
		}
		return &ActOutput{Duel: duel, Result: result}, nil
	}

	s.logger.Info("duel finished",
		"duel_id", duel.ID,
		"status", string(duel.Status),
		"winner_id", duel.WinnerID,
		"turns", duel.TurnsTaken,
	)
	if err := s.repository.Delete(ctx, duel.ID); err != nil {
		return nil, duelerr.Wrap(err, "failed to remove finished duel")
	}
	s.releaseLock(duel.ID)

	return &ActOutput{Duel: duel, Result: result}, nil
}

// Get retrieves a live duel by ID
func (s *service) Get(ctx context.Context, duelID string) (*combat.Duel, error) {
	if duelID == "" {
		return nil, duelerr.InvalidArgument("duel id is required")
	}
	return s.repository.Get(ctx, duelID)
}

// ListActive returns every live duel
func (s *service) ListActive(ctx context.Context) ([]*combat.Duel, error) {
	return s.repository.ListActive(ctx)
}

// lockFor serializes turns on one duel while letting different duels run in parallel
func (s *service) lockFor(duelID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[duelID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[duelID] = lock
	}
	return lock
}

func (s *service) releaseLock(duelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, duelID)
}
