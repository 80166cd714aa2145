package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/openrefs/refsched/internal/domain/assignment"
	qb "github.com/openrefs/refsched/internal/platform/querybuilder"
)

type AssignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) GetActive(ctx context.Context, gameID, officialID string) (assignment.Assignment, bool, error) {
	query, args, err := qb.Select("*").From("assignments").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("official_public_id", officialID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return assignment.Assignment{}, false, errors.Wrap(err, "build get active assignment query")
	}

	var row assignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return assignment.Assignment{}, false, nil
		}
		return assignment.Assignment{}, false, errors.Wrap(err, "get active assignment")
	}

	return assignmentFromRow(row), true, nil
}

func (r *AssignmentRepository) ListActiveByGame(ctx context.Context, gameID string) ([]assignment.Assignment, error) {
	return r.listActive(ctx, qb.Eq("game_public_id", gameID))
}

func (r *AssignmentRepository) ListActiveByOfficial(ctx context.Context, officialID string) ([]assignment.Assignment, error) {
	return r.listActive(ctx, qb.Eq("official_public_id", officialID))
}

func (r *AssignmentRepository) listActive(ctx context.Context, scope qb.Condition) ([]assignment.Assignment, error) {
	query, args, err := qb.Select("*").From("assignments").
		Where(scope, qb.Eq("is_active", true)).
		OrderBy("assigned_at", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list active assignments query")
	}

	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list active assignments")
	}

	out := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentFromRow(row))
	}
	return out, nil
}

func (r *AssignmentRepository) CountActiveByGame(ctx context.Context, gameID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("assignments").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count assignments query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count active assignments by game")
	}
	return count, nil
}

func (r *AssignmentRepository) CountActiveByOfficialSince(ctx context.Context, officialID string, since time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("assignments").
		Where(
			qb.Eq("official_public_id", officialID),
			qb.Eq("is_active", true),
			qb.Gte("assigned_at", since),
		).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count recent assignments query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count recent assignments by official")
	}
	return count, nil
}

// Upsert inserts a new assignment or, when the (game, official) pair was
// assigned before, reactivates that row in place. The pair is unique for
// the table's lifetime, so re-assigning after a removal never duplicates.
func (r *AssignmentRepository) Upsert(ctx context.Context, item assignment.Assignment) (assignment.Assignment, error) {
	const query = `
INSERT INTO assignments
	(public_id, game_public_id, official_public_id, position, type, status, is_active, assigned_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, NOW(), NOW())
ON CONFLICT (game_public_id, official_public_id) DO UPDATE SET
	position = EXCLUDED.position,
	type = EXCLUDED.type,
	status = EXCLUDED.status,
	is_active = TRUE,
	assigned_at = EXCLUDED.assigned_at,
	response_at = NULL,
	updated_at = NOW()
RETURNING *`

	var row assignmentTableModel
	err := r.db.GetContext(ctx, &row, query,
		item.ID,
		item.GameID,
		item.OfficialID,
		item.Position,
		item.Type,
		item.Status,
		item.AssignedAt,
	)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "upsert assignment")
	}

	return assignmentFromRow(row), nil
}

func (r *AssignmentRepository) Deactivate(ctx context.Context, gameID, officialID string) error {
	query, args, err := qb.Update("assignments").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("game_public_id", gameID),
			qb.Eq("official_public_id", officialID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build deactivate assignment query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "deactivate assignment")
	}
	return nil
}
