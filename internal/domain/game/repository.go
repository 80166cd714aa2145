package game

import (
	"context"
	"time"
)

// Repository exposes game read operations.
type Repository interface {
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]Game, error)
	ListByStatus(ctx context.Context, status string) ([]Game, error)
}
