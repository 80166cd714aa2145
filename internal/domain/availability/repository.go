package availability

import (
	"context"
	"time"
)

// Repository exposes unavailability reads. Records are created and
// soft-deleted elsewhere; this service only consumes them.
type Repository interface {
	ListActiveCovering(ctx context.Context, officialID string, date time.Time) ([]Record, error)
}
