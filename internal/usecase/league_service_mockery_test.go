package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/openrefs/refsched/internal/domain/league"
	leaguemock "github.com/openrefs/refsched/internal/mocks/domain/league"
)

func TestLeagueService_ListLeagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo)
	expected := []league.League{
		{ID: "metro-basketball-2026", Name: "Metro Basketball League", Sport: "basketball", IsActive: true},
		{ID: "city-soccer-2026", Name: "City Soccer League", Sport: "soccer", IsActive: true},
	}

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(expected, nil).
		Once()

	got, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected league id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestLeagueService_GetLeague_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)

	service := NewLeagueService(leagueRepo)
	leagueID := "missing-league"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.GetLeague(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
