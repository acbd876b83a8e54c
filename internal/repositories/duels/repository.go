package duels

//go:generate mockgen -destination=mock/mock_repository.go -package=mockduelrepo -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/duel-engine/internal/domain/game/combat"
)

// Repository defines the interface for duel storage operations
type Repository interface {
	// Create stores a new duel
	Create(ctx context.Context, duel *combat.Duel) error

	// Get retrieves a duel by ID
	Get(ctx context.Context, id string) (*combat.Duel, error)

	// Update modifies an existing duel
	Update(ctx context.Context, duel *combat.Duel) error

	// Delete removes a duel
	Delete(ctx context.Context, id string) error

	// ListActive returns every duel still taking turns, oldest first
	ListActive(ctx context.Context) ([]*combat.Duel, error)
}
