package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openrefs/refsched/internal/domain/assignment"
)

// AssignmentRepository keeps one row per (game, official) pair, matching
// the unique pair constraint the postgres backend puts on the table.
// Upserting an existing pair reactivates the row in place.
type AssignmentRepository struct {
	mu    sync.RWMutex
	items map[string]assignment.Assignment
	order []string
}

func NewAssignmentRepository(assignments []assignment.Assignment) *AssignmentRepository {
	repo := &AssignmentRepository{items: make(map[string]assignment.Assignment, len(assignments))}
	for _, item := range assignments {
		key := pairKey(item.GameID, item.OfficialID)
		if _, exists := repo.items[key]; !exists {
			repo.order = append(repo.order, key)
		}
		repo.items[key] = item
	}
	return repo
}

func pairKey(gameID, officialID string) string {
	return gameID + "\x00" + officialID
}

func (r *AssignmentRepository) GetActive(_ context.Context, gameID, officialID string) (assignment.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[pairKey(gameID, officialID)]
	if !ok || !item.IsActive {
		return assignment.Assignment{}, false, nil
	}
	return item, true, nil
}

func (r *AssignmentRepository) ListActiveByGame(_ context.Context, gameID string) ([]assignment.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assignment.Assignment, 0)
	for _, key := range r.order {
		item := r.items[key]
		if item.GameID != gameID || !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *AssignmentRepository) ListActiveByOfficial(_ context.Context, officialID string) ([]assignment.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assignment.Assignment, 0)
	for _, key := range r.order {
		item := r.items[key]
		if item.OfficialID != officialID || !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *AssignmentRepository) CountActiveByGame(ctx context.Context, gameID string) (int, error) {
	items, err := r.ListActiveByGame(ctx, gameID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (r *AssignmentRepository) CountActiveByOfficialSince(_ context.Context, officialID string, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, key := range r.order {
		item := r.items[key]
		if item.OfficialID != officialID || !item.IsActive {
			continue
		}
		if item.AssignedAt.Before(since) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *AssignmentRepository) Upsert(_ context.Context, item assignment.Assignment) (assignment.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.GameID, item.OfficialID)
	existing, exists := r.items[key]
	if exists {
		// Reactivate the historical row rather than creating a duplicate.
		existing.Position = item.Position
		existing.Type = item.Type
		existing.Status = item.Status
		existing.IsActive = true
		existing.AssignedAt = item.AssignedAt
		existing.ResponseAt = nil
		r.items[key] = existing
		return existing, nil
	}

	r.items[key] = item
	r.order = append(r.order, key)
	return item, nil
}

func (r *AssignmentRepository) Deactivate(_ context.Context, gameID, officialID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(gameID, officialID)
	item, ok := r.items[key]
	if !ok {
		return nil
	}
	item.IsActive = false
	r.items[key] = item
	return nil
}
