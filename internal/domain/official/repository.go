package official

import "context"

// Repository exposes official read operations.
type Repository interface {
	GetByID(ctx context.Context, officialID string) (Official, bool, error)
	ListEligible(ctx context.Context) ([]Official, error)
}
