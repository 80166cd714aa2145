package usecase

import (
	"context"
	"time"

	"github.com/openrefs/refsched/internal/domain/ranking"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	"github.com/openrefs/refsched/internal/platform/logging"
)

// RankingService reads per-league official rankings. The policy default
// ranking for unranked officials is applied here and nowhere else.
type RankingService struct {
	rankingRepo ranking.Repository
	policy      scheduling.Policy
	logger      *logging.Logger
}

func NewRankingService(rankingRepo ranking.Repository, policy scheduling.Policy, logger *logging.Logger) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RankingService{rankingRepo: rankingRepo, policy: policy, logger: logger}
}

// Ranking returns the official's stored ranking in the league, or the
// policy default when no record exists or the store misbehaves.
func (s *RankingService) Ranking(ctx context.Context, officialID, leagueID string) int {
	record, ok := s.Record(ctx, officialID, leagueID)
	if !ok || !ranking.IsValidRanking(record.Ranking) {
		return s.policy.DefaultRanking
	}
	return record.Ranking
}

// Experience returns games worked and the last assignment time, zero
// values when the official has no record in the league.
func (s *RankingService) Experience(ctx context.Context, officialID, leagueID string) (int, *time.Time) {
	record, ok := s.Record(ctx, officialID, leagueID)
	if !ok {
		return 0, nil
	}
	return record.GamesWorked, record.LastAssignmentAt
}

func (s *RankingService) Record(ctx context.Context, officialID, leagueID string) (ranking.Record, bool) {
	record, ok, err := s.rankingRepo.GetActive(ctx, officialID, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "ranking lookup failed, using defaults",
			"official_id", officialID, "league_id", leagueID, "error", err)
		return ranking.Record{}, false
	}
	return record, ok
}
