package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/openrefs/refsched/internal/domain/game"
	qb "github.com/openrefs/refsched/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("public_id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, errors.Wrap(err, "build get game query")
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, errors.Wrap(err, "get game by id")
	}

	return gameFromRow(row), true, nil
}

func (r *GameRepository) ListByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]game.Game, error) {
	dayStart := game.DateOf(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("location_public_id", locationID),
			qb.Gte("starts_at", dayStart),
			qb.Expr("starts_at < $1", dayEnd),
		).
		OrderBy("starts_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list games by location query")
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list games by location and date")
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) ListByStatus(ctx context.Context, status string) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("status", status)).
		OrderBy("starts_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list games by status query")
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list games by status")
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}
