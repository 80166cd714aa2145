package postgres

import (
	"time"

	"github.com/openrefs/refsched/internal/domain/game"
)

type gameTableModel struct {
	ID               int64     `db:"id"`
	PublicID         string    `db:"public_id"`
	LeaguePublicID   string    `db:"league_public_id"`
	LocationPublicID string    `db:"location_public_id"`
	FieldName        string    `db:"field_name"`
	HomeTeam         string    `db:"home_team"`
	AwayTeam         string    `db:"away_team"`
	StartsAt         time.Time `db:"starts_at"`
	DurationMinutes  int       `db:"duration_minutes"`
	Status           string    `db:"status"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:              row.PublicID,
		LeagueID:        row.LeaguePublicID,
		LocationID:      row.LocationPublicID,
		FieldName:       row.FieldName,
		HomeTeam:        row.HomeTeam,
		AwayTeam:        row.AwayTeam,
		StartsAt:        row.StartsAt,
		DurationMinutes: row.DurationMinutes,
		Status:          row.Status,
		IsActive:        row.IsActive,
	}
}
