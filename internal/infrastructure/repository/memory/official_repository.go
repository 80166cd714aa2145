package memory

import (
	"context"
	"sync"

	"github.com/openrefs/refsched/internal/domain/official"
)

type OfficialRepository struct {
	mu     sync.RWMutex
	items  map[string]official.Official
	orders []string
}

func NewOfficialRepository(officials []official.Official) *OfficialRepository {
	items := make(map[string]official.Official, len(officials))
	orders := make([]string, 0, len(officials))

	for _, o := range officials {
		items[o.ID] = o
		orders = append(orders, o.ID)
	}

	return &OfficialRepository{items: items, orders: orders}
}

func (r *OfficialRepository) GetByID(_ context.Context, officialID string) (official.Official, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[officialID]
	if !ok {
		return official.Official{}, false, nil
	}
	return o, true, nil
}

func (r *OfficialRepository) ListEligible(_ context.Context) ([]official.Official, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]official.Official, 0, len(r.orders))
	for _, id := range r.orders {
		o := r.items[id]
		if !o.Assignable() {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
