package postgres

import (
	"time"

	"github.com/openrefs/refsched/internal/domain/assignment"
)

type assignmentTableModel struct {
	ID               int64      `db:"id"`
	PublicID         string     `db:"public_id"`
	GamePublicID     string     `db:"game_public_id"`
	OfficialPublicID string     `db:"official_public_id"`
	Position         string     `db:"position"`
	Type             string     `db:"type"`
	Status           string     `db:"status"`
	IsActive         bool       `db:"is_active"`
	AssignedAt       time.Time  `db:"assigned_at"`
	ResponseAt       *time.Time `db:"response_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func assignmentFromRow(row assignmentTableModel) assignment.Assignment {
	return assignment.Assignment{
		ID:         row.PublicID,
		GameID:     row.GamePublicID,
		OfficialID: row.OfficialPublicID,
		Position:   row.Position,
		Type:       row.Type,
		Status:     row.Status,
		IsActive:   row.IsActive,
		AssignedAt: row.AssignedAt,
		ResponseAt: row.ResponseAt,
	}
}
