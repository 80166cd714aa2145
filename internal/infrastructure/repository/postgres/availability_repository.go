package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/domain/game"
	qb "github.com/openrefs/refsched/internal/platform/querybuilder"
)

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListActiveCovering(ctx context.Context, officialID string, date time.Time) ([]availability.Record, error) {
	day := game.DateOf(date)

	query, args, err := qb.Select("*").From("availability_records").
		Where(
			qb.Eq("official_public_id", officialID),
			qb.Eq("is_active", true),
			qb.Lte("start_date", day),
			qb.Gte("end_date", day),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list availability query")
	}

	var rows []availabilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list availability records")
	}

	out := make([]availability.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, availabilityFromRow(row))
	}
	return out, nil
}
