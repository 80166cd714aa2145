package postgres

import (
	"database/sql"
	"time"

	"github.com/openrefs/refsched/internal/domain/availability"
)

type availabilityTableModel struct {
	ID               int64         `db:"id"`
	PublicID         string        `db:"public_id"`
	OfficialPublicID string        `db:"official_public_id"`
	Type             string        `db:"type"`
	StartDate        time.Time     `db:"start_date"`
	EndDate          time.Time     `db:"end_date"`
	StartMinute      sql.NullInt64 `db:"start_minute"`
	EndMinute        sql.NullInt64 `db:"end_minute"`
	Reason           string        `db:"reason"`
	IsActive         bool          `db:"is_active"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func availabilityFromRow(row availabilityTableModel) availability.Record {
	return availability.Record{
		ID:         row.PublicID,
		OfficialID: row.OfficialPublicID,
		Type:       row.Type,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		StartTime:  minuteOfDay(row.StartMinute),
		EndTime:    minuteOfDay(row.EndMinute),
		Reason:     row.Reason,
		IsActive:   row.IsActive,
	}
}

func minuteOfDay(value sql.NullInt64) availability.TimeOfDay {
	if !value.Valid {
		return availability.NoTime
	}
	return availability.TimeOfDay(value.Int64)
}
