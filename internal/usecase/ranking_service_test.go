package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openrefs/refsched/internal/domain/ranking"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	"github.com/openrefs/refsched/internal/infrastructure/repository/memory"
	"github.com/openrefs/refsched/internal/platform/logging"
)

func TestRankingService_DefaultForUnranked(t *testing.T) {
	service := NewRankingService(memory.NewRankingRepository(nil), scheduling.DefaultPolicy(), logging.NewNop())

	if got := service.Ranking(t.Context(), "off-alice", memory.LeagueIDMetroBasketball); got != ranking.DefaultRanking {
		t.Fatalf("ranking = %d, want default %d", got, ranking.DefaultRanking)
	}

	gamesWorked, last := service.Experience(t.Context(), "off-alice", memory.LeagueIDMetroBasketball)
	if gamesWorked != 0 || last != nil {
		t.Fatalf("experience = (%d, %v), want (0, nil)", gamesWorked, last)
	}
}

func TestRankingService_StoredRanking(t *testing.T) {
	lastWorked := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	service := NewRankingService(memory.NewRankingRepository([]ranking.Record{
		{ID: "rk-1", OfficialID: "off-alice", LeagueID: memory.LeagueIDMetroBasketball, Ranking: 5, GamesWorked: 42, LastAssignmentAt: &lastWorked, IsActive: true},
	}), scheduling.DefaultPolicy(), logging.NewNop())

	if got := service.Ranking(t.Context(), "off-alice", memory.LeagueIDMetroBasketball); got != 5 {
		t.Fatalf("ranking = %d, want 5", got)
	}

	gamesWorked, last := service.Experience(t.Context(), "off-alice", memory.LeagueIDMetroBasketball)
	if gamesWorked != 42 {
		t.Fatalf("games worked = %d, want 42", gamesWorked)
	}
	if last == nil || !last.Equal(lastWorked) {
		t.Fatalf("last assignment = %v, want %v", last, lastWorked)
	}

	// Same official, other league: record does not bleed across leagues.
	if got := service.Ranking(t.Context(), "off-alice", memory.LeagueIDCitySoccer); got != ranking.DefaultRanking {
		t.Fatalf("cross-league ranking = %d, want default %d", got, ranking.DefaultRanking)
	}
}

type failingRankingRepo struct{}

func (failingRankingRepo) GetActive(context.Context, string, string) (ranking.Record, bool, error) {
	return ranking.Record{}, false, errors.New("store down")
}

func TestRankingService_DefaultOnStoreError(t *testing.T) {
	service := NewRankingService(failingRankingRepo{}, scheduling.DefaultPolicy(), logging.NewNop())

	if got := service.Ranking(t.Context(), "off-alice", memory.LeagueIDMetroBasketball); got != ranking.DefaultRanking {
		t.Fatalf("ranking = %d, want default %d on store error", got, ranking.DefaultRanking)
	}
}
