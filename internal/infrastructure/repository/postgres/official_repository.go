package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/openrefs/refsched/internal/domain/official"
	qb "github.com/openrefs/refsched/internal/platform/querybuilder"
)

type OfficialRepository struct {
	db *sqlx.DB
}

func NewOfficialRepository(db *sqlx.DB) *OfficialRepository {
	return &OfficialRepository{db: db}
}

func (r *OfficialRepository) GetByID(ctx context.Context, officialID string) (official.Official, bool, error) {
	query, args, err := qb.Select("*").From("officials").
		Where(qb.Eq("public_id", officialID)).
		ToSQL()
	if err != nil {
		return official.Official{}, false, errors.Wrap(err, "build get official query")
	}

	var row officialTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return official.Official{}, false, nil
		}
		return official.Official{}, false, errors.Wrap(err, "get official by id")
	}

	return officialFromRow(row), true, nil
}

func (r *OfficialRepository) ListEligible(ctx context.Context) ([]official.Official, error) {
	roles := make([]any, 0, len(official.EligibleRoles))
	for role := range official.EligibleRoles {
		roles = append(roles, role)
	}

	query, args, err := qb.Select("*").From("officials").
		Where(
			qb.Eq("is_active", true),
			qb.In("role", roles),
		).
		OrderBy("full_name").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list eligible officials query")
	}

	var rows []officialTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list eligible officials")
	}

	out := make([]official.Official, 0, len(rows))
	for _, row := range rows {
		out = append(out, officialFromRow(row))
	}
	return out, nil
}

func officialFromRow(row officialTableModel) official.Official {
	return official.Official{
		ID:       row.PublicID,
		FullName: row.FullName,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
