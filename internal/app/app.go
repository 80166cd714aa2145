package app

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/openrefs/refsched/internal/config"
	"github.com/openrefs/refsched/internal/domain/assignment"
	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/domain/league"
	"github.com/openrefs/refsched/internal/domain/official"
	"github.com/openrefs/refsched/internal/domain/ranking"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	"github.com/openrefs/refsched/internal/infrastructure/repository/memory"
	"github.com/openrefs/refsched/internal/infrastructure/repository/postgres"
	"github.com/openrefs/refsched/internal/interfaces/httpapi"
	idgen "github.com/openrefs/refsched/internal/platform/id"
	"github.com/openrefs/refsched/internal/platform/logging"
	"github.com/openrefs/refsched/internal/usecase"
)

type repositories struct {
	games        game.Repository
	officials    official.Repository
	leagues      league.Repository
	assignments  assignment.Repository
	availability availability.Repository
	rankings     ranking.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	policy := schedulingPolicy(cfg)

	availabilitySvc := usecase.NewAvailabilityService(repos.availability, logger)
	conflictSvc := usecase.NewConflictService(repos.games, repos.officials, repos.assignments, policy, logger)
	rankingSvc := usecase.NewRankingService(repos.rankings, policy, logger)
	assignmentSvc := usecase.NewAssignmentService(
		repos.games,
		repos.officials,
		repos.leagues,
		repos.assignments,
		availabilitySvc,
		conflictSvc,
		rankingSvc,
		scheduling.NewScorer(rand.NewSource(time.Now().UnixNano())),
		policy,
		idgen.NewRandomGenerator(),
		logger,
		cfg.AutoAssignMaxWorkers,
	)
	leagueSvc := usecase.NewLeagueService(repos.leagues)

	handler := httpapi.NewHandler(leagueSvc, conflictSvc, availabilitySvc, assignmentSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.UseMemoryStore() {
		logger.Info("storage backend", "driver", "memory")
		return repositories{
			games:        memory.NewGameRepository(memory.SeedGames()),
			officials:    memory.NewOfficialRepository(memory.SeedOfficials()),
			leagues:      memory.NewLeagueRepository(memory.SeedLeagues()),
			assignments:  memory.NewAssignmentRepository(nil),
			availability: memory.NewAvailabilityRepository(memory.SeedAvailability()),
			rankings:     memory.NewRankingRepository(memory.SeedRankings()),
		}, nil
	}

	db, err := sqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("storage backend", "driver", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		games:        postgres.NewGameRepository(db),
		officials:    postgres.NewOfficialRepository(db),
		leagues:      postgres.NewLeagueRepository(db),
		assignments:  postgres.NewAssignmentRepository(db),
		availability: postgres.NewAvailabilityRepository(db),
		rankings:     postgres.NewRankingRepository(db),
	}, nil
}

func schedulingPolicy(cfg config.Config) scheduling.Policy {
	policy := scheduling.DefaultPolicy()
	policy.ConflictBuffer = time.Duration(cfg.ConflictBufferMinutes) * time.Minute
	policy.OfficialsPerGame = cfg.OfficialsPerGame
	policy.DefaultDurationMinutes = cfg.DefaultGameDurationMinutes
	policy.RecentWindowDays = cfg.RecentWindowDays
	return policy
}
