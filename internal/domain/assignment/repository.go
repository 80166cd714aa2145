package assignment

import (
	"context"
	"time"
)

// Repository exposes assignment reads plus the single write this service
// performs: an upsert that reactivates a soft-deleted (game, official) row
// instead of inserting a duplicate.
type Repository interface {
	GetActive(ctx context.Context, gameID, officialID string) (Assignment, bool, error)
	ListActiveByGame(ctx context.Context, gameID string) ([]Assignment, error)
	ListActiveByOfficial(ctx context.Context, officialID string) ([]Assignment, error)
	CountActiveByGame(ctx context.Context, gameID string) (int, error)
	CountActiveByOfficialSince(ctx context.Context, officialID string, since time.Time) (int, error)
	Upsert(ctx context.Context, item Assignment) (Assignment, error)
	Deactivate(ctx context.Context, gameID, officialID string) error
}
