package duels

import (
	"context"
	"sync"

	"github.com/KirkDiggler/duel-engine/internal/domain/game/combat"
	duelerr "github.com/KirkDiggler/duel-engine/internal/errors"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	duels map[string]*combat.Duel
	order []string // creation order
}

// NewInMemoryRepository creates a new in-memory duel repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		duels: make(map[string]*combat.Duel),
	}
}

// Create stores a new duel
func (r *inMemoryRepository) Create(_ context.Context, duel *combat.Duel) error {
	if duel == nil || duel.ID == "" {
		return duelerr.InvalidArgument("duel with an id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.duels[duel.ID]; exists {
		return duelerr.InvalidArgumentf("duel with ID %s already exists", duel.ID)
	}

	r.duels[duel.ID] = duel
	r.order = append(r.order, duel.ID)

	return nil
}

// Get retrieves a duel by ID
func (r *inMemoryRepository) Get(_ context.Context, id string) (*combat.Duel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	duel, exists := r.duels[id]
	if !exists {
		return nil, duelerr.NotFoundf("duel not found: %s", id).WithMeta("duel_id", id)
	}

	return duel, nil
}

// Update modifies an existing duel
func (r *inMemoryRepository) Update(_ context.Context, duel *combat.Duel) error {
	if duel == nil {
		return duelerr.InvalidArgument("duel is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.duels[duel.ID]; !exists {
		return duelerr.NotFoundf("duel not found: %s", duel.ID).WithMeta("duel_id", duel.ID)
	}

	r.duels[duel.ID] = duel
	return nil
}

// Delete removes a duel
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.duels[id]; !exists {
		return duelerr.NotFoundf("duel not found: %s", id).WithMeta("duel_id", id)
	}

	delete(r.duels, id)
	for i, did := range r.order {
		if did == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// ListActive returns every duel still taking turns, oldest first
func (r *inMemoryRepository) ListActive(_ context.Context) ([]*combat.Duel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]*combat.Duel, 0, len(r.order))
	for _, id := range r.order {
		if duel := r.duels[id]; duel.IsActive() {
			active = append(active, duel)
		}
	}

	return active, nil
}
