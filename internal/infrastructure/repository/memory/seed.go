package memory

import (
	"time"

	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/domain/league"
	"github.com/openrefs/refsched/internal/domain/official"
	"github.com/openrefs/refsched/internal/domain/ranking"
)

const (
	LeagueIDMetroBasketball = "metro-basketball-2026"
	LeagueIDCitySoccer      = "city-soccer-2026"

	LocationIDRiversidePark = "loc-riverside-park"
	LocationIDCentralGym    = "loc-central-gym"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDMetroBasketball, Name: "Metro Basketball League", Sport: "basketball", IsActive: true},
		{ID: LeagueIDCitySoccer, Name: "City Soccer League", Sport: "soccer", IsActive: true},
	}
}

func SeedOfficials() []official.Official {
	return []official.Official{
		{ID: "off-alice", FullName: "Alice Tran", Email: "alice.tran@example.com", Role: official.RoleOfficial, IsActive: true},
		{ID: "off-bruno", FullName: "Bruno Costa", Email: "bruno.costa@example.com", Role: official.RoleOfficial, IsActive: true},
		{ID: "off-carla", FullName: "Carla Reyes", Email: "carla.reyes@example.com", Role: official.RoleOfficial, IsActive: true},
		{ID: "off-derek", FullName: "Derek Oyelaran", Email: "derek.oyelaran@example.com", Role: official.RoleAssigner, IsActive: true},
		{ID: "off-emiko", FullName: "Emiko Sato", Email: "emiko.sato@example.com", Role: official.RoleOfficial, IsActive: true},
		{ID: "off-frank", FullName: "Frank Miller", Email: "frank.miller@example.com", Role: official.RoleOfficial, IsActive: false},
		{ID: "off-admin", FullName: "Grace Admin", Email: "grace@example.com", Role: official.RoleAdministrator, IsActive: true},
	}
}

func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:         "gm-metro-001",
			LeagueID:   LeagueIDMetroBasketball,
			LocationID: LocationIDCentralGym,
			FieldName:  "Court A",
			HomeTeam:   "Downtown Hawks",
			AwayTeam:   "Harbor Wolves",
			StartsAt:   time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
			Status:     game.StatusReady,
			IsActive:   true,
		},
		{
			ID:         "gm-metro-002",
			LeagueID:   LeagueIDMetroBasketball,
			LocationID: LocationIDCentralGym,
			FieldName:  "Court B",
			HomeTeam:   "Northside Comets",
			AwayTeam:   "Eastgate Lions",
			StartsAt:   time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
			Status:     game.StatusReleased,
			IsActive:   true,
		},
		{
			ID:         "gm-metro-003",
			LeagueID:   LeagueIDMetroBasketball,
			LocationID: LocationIDCentralGym,
			FieldName:  "Court A",
			HomeTeam:   "Downtown Hawks",
			AwayTeam:   "Eastgate Lions",
			StartsAt:   time.Date(2026, 9, 19, 18, 0, 0, 0, time.UTC),
			Status:     game.StatusDraft,
			IsActive:   true,
		},
		{
			ID:         "gm-soccer-001",
			LeagueID:   LeagueIDCitySoccer,
			LocationID: LocationIDRiversidePark,
			FieldName:  "Field 1",
			HomeTeam:   "River FC",
			AwayTeam:   "Union SC",
			StartsAt:   time.Date(2026, 9, 13, 10, 0, 0, 0, time.UTC),
			Status:     game.StatusReleased,
			IsActive:   true,
		},
		{
			ID:         "gm-soccer-002",
			LeagueID:   LeagueIDCitySoccer,
			LocationID: LocationIDRiversidePark,
			FieldName:  "Field 2",
			HomeTeam:   "Old Town Rovers",
			AwayTeam:   "Union SC",
			StartsAt:   time.Date(2026, 9, 13, 13, 0, 0, 0, time.UTC),
			Status:     game.StatusCancelled,
			IsActive:   true,
		},
		{
			ID:         "gm-soccer-003",
			LeagueID:   LeagueIDCitySoccer,
			LocationID: LocationIDRiversidePark,
			FieldName:  "Field 1",
			HomeTeam:   "River FC",
			AwayTeam:   "Old Town Rovers",
			StartsAt:   time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
			Status:     game.StatusCompleted,
			IsActive:   true,
		},
	}
}

func SeedRankings() []ranking.Record {
	lastWorked := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	return []ranking.Record{
		{ID: "rk-001", OfficialID: "off-alice", LeagueID: LeagueIDMetroBasketball, Ranking: 5, GamesWorked: 42, YearsExperience: 6, IsActive: true},
		{ID: "rk-002", OfficialID: "off-bruno", LeagueID: LeagueIDMetroBasketball, Ranking: 4, GamesWorked: 18, YearsExperience: 3, IsActive: true},
		{ID: "rk-003", OfficialID: "off-carla", LeagueID: LeagueIDMetroBasketball, Ranking: 2, GamesWorked: 5, YearsExperience: 1, IsActive: true},
		{ID: "rk-004", OfficialID: "off-alice", LeagueID: LeagueIDCitySoccer, Ranking: 3, GamesWorked: 12, YearsExperience: 6, LastAssignmentAt: &lastWorked, IsActive: true},
		{ID: "rk-005", OfficialID: "off-emiko", LeagueID: LeagueIDCitySoccer, Ranking: 4, GamesWorked: 25, YearsExperience: 4, LastAssignmentAt: &lastWorked, IsActive: true},
	}
}

func SeedAvailability() []availability.Record {
	return []availability.Record{
		{
			ID:         "av-001",
			OfficialID: "off-carla",
			Type:       availability.TypeAllDay,
			StartDate:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Reason:     "Out of town",
			IsActive:   true,
		},
		{
			ID:         "av-002",
			OfficialID: "off-emiko",
			Type:       availability.TypeHours,
			StartDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			StartTime:  availability.At(8, 0),
			EndTime:    availability.At(12, 0),
			Reason:     "Morning shift at work",
			IsActive:   true,
		},
	}
}
