package postgres

import (
	"time"

	"github.com/openrefs/refsched/internal/domain/ranking"
)

type rankingTableModel struct {
	ID               int64      `db:"id"`
	PublicID         string     `db:"public_id"`
	OfficialPublicID string     `db:"official_public_id"`
	LeaguePublicID   string     `db:"league_public_id"`
	Ranking          int        `db:"ranking"`
	GamesWorked      int        `db:"games_worked"`
	YearsExperience  int        `db:"years_experience"`
	LastAssignmentAt *time.Time `db:"last_assignment_at"`
	IsActive         bool       `db:"is_active"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func rankingFromRow(row rankingTableModel) ranking.Record {
	return ranking.Record{
		ID:               row.PublicID,
		OfficialID:       row.OfficialPublicID,
		LeagueID:         row.LeaguePublicID,
		Ranking:          row.Ranking,
		GamesWorked:      row.GamesWorked,
		YearsExperience:  row.YearsExperience,
		LastAssignmentAt: row.LastAssignmentAt,
		IsActive:         row.IsActive,
	}
}
