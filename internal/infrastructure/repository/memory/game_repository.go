package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openrefs/refsched/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	items  map[string]game.Game
	orders []string
}

func NewGameRepository(games []game.Game) *GameRepository {
	items := make(map[string]game.Game, len(games))
	orders := make([]string, 0, len(games))

	for _, g := range games {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &GameRepository{items: items, orders: orders}
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gameID]
	if !ok {
		return game.Game{}, false, nil
	}
	return g, true, nil
}

func (r *GameRepository) ListByLocationAndDate(_ context.Context, locationID string, date time.Time) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, id := range r.orders {
		g := r.items[id]
		if g.LocationID != locationID {
			continue
		}
		if !game.SameDate(g.StartsAt, date) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *GameRepository) ListByStatus(_ context.Context, status string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, id := range r.orders {
		g := r.items[id]
		if g.Status != status {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// Put inserts or replaces a game. Used by seeds and tests.
func (r *GameRepository) Put(g game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[g.ID]; !exists {
		r.orders = append(r.orders, g.ID)
	}
	r.items[g.ID] = g
}
