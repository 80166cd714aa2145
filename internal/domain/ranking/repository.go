package ranking

import "context"

// Repository exposes ranking reads keyed by (official, league).
type Repository interface {
	GetActive(ctx context.Context, officialID, leagueID string) (Record, bool, error)
}
