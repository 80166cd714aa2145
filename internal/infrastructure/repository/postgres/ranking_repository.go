package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/openrefs/refsched/internal/domain/ranking"
	qb "github.com/openrefs/refsched/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) GetActive(ctx context.Context, officialID, leagueID string) (ranking.Record, bool, error) {
	query, args, err := qb.Select("*").From("official_rankings").
		Where(
			qb.Eq("official_public_id", officialID),
			qb.Eq("league_public_id", leagueID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return ranking.Record{}, false, errors.Wrap(err, "build get ranking query")
	}

	var row rankingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return ranking.Record{}, false, nil
		}
		return ranking.Record{}, false, errors.Wrap(err, "get active ranking")
	}

	return rankingFromRow(row), true, nil
}
