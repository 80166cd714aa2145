package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/openrefs/refsched/internal/domain/assignment"
	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/domain/league"
	"github.com/openrefs/refsched/internal/domain/official"
	"github.com/openrefs/refsched/internal/domain/ranking"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	idgen "github.com/openrefs/refsched/internal/platform/id"
	"github.com/openrefs/refsched/internal/platform/logging"
)

// AssignmentMade describes one successful placement inside a result.
type AssignmentMade struct {
	OfficialName string `json:"official_name"`
	Position     string `json:"position"`
	Ranking      int    `json:"ranking"`
}

// AssignmentResult is the typed outcome of an auto-assignment run.
// Business failures (bad status, nobody available) land here as
// Success=false with a message, never as an error.
type AssignmentResult struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	AssignmentsMade []AssignmentMade `json:"assignments_made,omitempty"`
	Conflicts       []string         `json:"conflicts,omitempty"`
}

type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Reason    string   `json:"reason,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}

type PreviewCandidate struct {
	Rank              int     `json:"rank"`
	Name              string  `json:"name"`
	Score             float64 `json:"score"`
	LeagueRanking     string  `json:"league_ranking"`
	Experience        string  `json:"experience"`
	RecentAssignments string  `json:"recent_assignments"`
	WouldAssign       bool    `json:"would_assign"`
}

type AssignmentPreview struct {
	GameTitle      string             `json:"game_title"`
	AvailableCount int                `json:"available_count"`
	TopCandidates  []PreviewCandidate `json:"top_candidates"`
}

// BulkAssignResult summarizes one sweep over released games.
type BulkAssignResult struct {
	ProcessedCount int      `json:"processed_count"`
	SuccessCount   int      `json:"success_count"`
	ErrorCount     int      `json:"error_count"`
	SkippedCount   int      `json:"skipped_count"`
	WorkerCount    int      `json:"worker_count"`
	Messages       []string `json:"messages"`
}

type OfficialWorkload struct {
	OfficialID        string `json:"official_id"`
	Name              string `json:"name"`
	ActiveAssignments int    `json:"active_assignments"`
	RecentAssignments int    `json:"recent_assignments"`
}

type WorkloadReport struct {
	LeagueID   string             `json:"league_id"`
	LeagueName string             `json:"league_name"`
	WindowDays int                `json:"window_days"`
	Officials  []OfficialWorkload `json:"officials"`
}

// AssignmentService is the auto-assignment engine: it ranks the eligible,
// available, conflict-free officials for a game and writes assignments for
// the best of them.
type AssignmentService struct {
	gameRepo        game.Repository
	officialRepo    official.Repository
	leagueRepo      league.Repository
	assignmentRepo  assignment.Repository
	availabilitySvc *AvailabilityService
	conflictSvc     *ConflictService
	rankingSvc      *RankingService
	scorer          *scheduling.Scorer
	policy          scheduling.Policy
	idGen           idgen.Generator
	logger          *logging.Logger
	now             func() time.Time
	maxWorkers      int
}

func NewAssignmentService(
	gameRepo game.Repository,
	officialRepo official.Repository,
	leagueRepo league.Repository,
	assignmentRepo assignment.Repository,
	availabilitySvc *AvailabilityService,
	conflictSvc *ConflictService,
	rankingSvc *RankingService,
	scorer *scheduling.Scorer,
	policy scheduling.Policy,
	idGen idgen.Generator,
	logger *logging.Logger,
	maxWorkers int,
) *AssignmentService {
	if scorer == nil {
		scorer = scheduling.NewScorer(rand.NewSource(time.Now().UnixNano()))
	}
	if idGen == nil {
		idGen = idgen.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &AssignmentService{
		gameRepo:        gameRepo,
		officialRepo:    officialRepo,
		leagueRepo:      leagueRepo,
		assignmentRepo:  assignmentRepo,
		availabilitySvc: availabilitySvc,
		conflictSvc:     conflictSvc,
		rankingSvc:      rankingSvc,
		scorer:          scorer,
		policy:          policy,
		idGen:           idGen,
		logger:          logger,
		now:             time.Now,
		maxWorkers:      maxWorkers,
	}
}

// AutoAssign fills numOfficials slots on a draft or ready game. Positions
// are optional labels handed out in ranked order; extra slots get an empty
// position.
func (s *AssignmentService) AutoAssign(ctx context.Context, gameID string, numOfficials int, positions []string) AssignmentResult {
	ctx, span := startUsecaseSpan(ctx, "AssignmentService.AutoAssign")
	defer span.End()

	g, ok, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		s.logger.ErrorContext(ctx, "game lookup failed", "game_id", gameID, "error", err)
		return AssignmentResult{Message: "Game lookup failed"}
	}
	if !ok {
		return AssignmentResult{Message: "Game not found"}
	}
	if numOfficials <= 0 {
		return AssignmentResult{Message: "Number of officials must be positive"}
	}
	if !g.AcceptsAutoAssignment() {
		return AssignmentResult{Message: fmt.Sprintf("Game must be in %s or %s status", game.StatusDraft, game.StatusReady)}
	}

	return s.assignOfficials(ctx, g, numOfficials, positions)
}

// assignOfficials runs the candidate ranking and persistence steps without
// the status guard. The released-games sweep calls it directly.
func (s *AssignmentService) assignOfficials(ctx context.Context, g game.Game, numOfficials int, positions []string) AssignmentResult {
	candidates, err := s.rankCandidates(ctx, g)
	if err != nil {
		s.logger.ErrorContext(ctx, "candidate ranking failed", "game_id", g.ID, "error", err)
		return AssignmentResult{Message: "Could not load candidate officials"}
	}

	if len(candidates) < numOfficials {
		return AssignmentResult{
			Message: fmt.Sprintf("Not enough available officials. Need %d, found %d", numOfficials, len(candidates)),
		}
	}

	now := s.now().UTC()
	var made []AssignmentMade
	var conflicts []string

	for _, cand := range candidates {
		if len(made) == numOfficials {
			break
		}

		// The ranked list was built from a snapshot; re-check right
		// before writing so a concurrent assignment elsewhere surfaces
		// as a skip instead of a double booking.
		if late := s.conflictSvc.CheckConflicts(ctx, g, cand.official.ID); len(late) > 0 {
			conflicts = append(conflicts, scheduling.Messages(late)...)
			continue
		}

		position := ""
		if len(made) < len(positions) {
			position = positions[len(made)]
		}

		newID, err := s.idGen.NewID()
		if err != nil {
			s.logger.ErrorContext(ctx, "assignment id generation failed", "game_id", g.ID, "error", err)
			continue
		}

		item := assignment.Assignment{
			ID:         newID,
			GameID:     g.ID,
			OfficialID: cand.official.ID,
			Position:   position,
			Type:       assignment.TypeAuto,
			Status:     assignment.StatusAssigned,
			IsActive:   true,
			AssignedAt: now,
		}
		if _, err := s.assignmentRepo.Upsert(ctx, item); err != nil {
			s.logger.ErrorContext(ctx, "assignment write failed, skipping candidate",
				"game_id", g.ID, "official_id", cand.official.ID, "error", err)
			continue
		}

		made = append(made, AssignmentMade{
			OfficialName: cand.official.FullName,
			Position:     position,
			Ranking:      cand.ranking,
		})
	}

	if len(made) == 0 {
		return AssignmentResult{
			Message:   "No officials could be assigned due to conflicts",
			Conflicts: conflicts,
		}
	}

	return AssignmentResult{
		Success:         true,
		Message:         fmt.Sprintf("Successfully assigned %d officials", len(made)),
		AssignmentsMade: made,
		Conflicts:       conflicts,
	}
}

type scoredCandidate struct {
	official    official.Official
	ranking     int
	gamesWorked int
	score       float64
}

// rankCandidates returns the game's assignable officials, best first.
// Candidates already on the game, unavailable, or conflicted are dropped
// before scoring.
func (s *AssignmentService) rankCandidates(ctx context.Context, g game.Game) ([]scoredCandidate, error) {
	eligible, err := s.officialRepo.ListEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list eligible officials: %w", err)
	}

	assigned, err := s.assignmentRepo.ListActiveByGame(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("list active assignments for game=%s: %w", g.ID, err)
	}
	alreadyOn := make(map[string]struct{}, len(assigned))
	for _, item := range assigned {
		alreadyOn[item.OfficialID] = struct{}{}
	}

	gameDate := g.Date()
	candidates := make([]scoredCandidate, 0, len(eligible))

	for _, o := range eligible {
		if _, taken := alreadyOn[o.ID]; taken {
			continue
		}
		if !s.availabilitySvc.IsAvailable(ctx, o.ID, g.StartsAt) {
			continue
		}
		if len(s.conflictSvc.CheckConflicts(ctx, g, o.ID)) > 0 {
			continue
		}

		rank := s.rankingSvc.Ranking(ctx, o.ID, g.LeagueID)
		gamesWorked, last := s.rankingSvc.Experience(ctx, o.ID, g.LeagueID)

		// Staleness counts the days between the official's last assignment
		// and the game's own date, so the rest credit keeps growing for
		// games scheduled further out.
		daysSinceLast := s.policy.NoPriorAssignmentDays
		if last != nil {
			daysSinceLast = int(gameDate.Sub(game.DateOf(*last)).Hours() / 24)
			if daysSinceLast < 0 {
				daysSinceLast = 0
			}
		}

		candidates = append(candidates, scoredCandidate{
			official:    o,
			ranking:     rank,
			gamesWorked: gamesWorked,
			score:       s.scorer.Score(rank, gamesWorked, daysSinceLast),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	return candidates, nil
}

// AutoAssignAllReleased tops up every released game to the policy crew
// size. Games are processed independently; one game failing never stops
// the rest, and result messages keep the listing order of the games.
func (s *AssignmentService) AutoAssignAllReleased(ctx context.Context) (BulkAssignResult, error) {
	ctx, span := startUsecaseSpan(ctx, "AssignmentService.AutoAssignAllReleased")
	defer span.End()

	games, err := s.gameRepo.ListByStatus(ctx, game.StatusReleased)
	if err != nil {
		return BulkAssignResult{}, fmt.Errorf("list released games: %w", err)
	}

	result := BulkAssignResult{
		ProcessedCount: len(games),
		WorkerCount:    s.maxWorkers,
		Messages:       make([]string, 0, len(games)),
	}
	if len(games) == 0 {
		return result, nil
	}

	type sweepRow struct {
		status  string
		message string
	}
	rows := make([]sweepRow, len(games))

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return BulkAssignResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, g := range games {
		i, g := i, g
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			status, message := s.sweepReleasedGame(ctx, g)
			rows[i] = sweepRow{status: status, message: message}
		}); err != nil {
			workers.Done()
			return BulkAssignResult{}, fmt.Errorf("submit game to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, row := range rows {
		result.Messages = append(result.Messages, row.message)
		switch row.status {
		case sweepStatusSuccess:
			result.SuccessCount++
		case sweepStatusSkipped:
			result.SkippedCount++
		default:
			result.ErrorCount++
		}
	}

	return result, nil
}

const (
	sweepStatusSuccess = "success"
	sweepStatusFailed  = "failed"
	sweepStatusSkipped = "skipped"
)

func (s *AssignmentService) sweepReleasedGame(ctx context.Context, g game.Game) (string, string) {
	count, err := s.assignmentRepo.CountActiveByGame(ctx, g.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "assignment count failed", "game_id", g.ID, "error", err)
		return sweepStatusFailed, fmt.Sprintf("%s: could not count existing assignments", g.Title())
	}

	needed := s.policy.OfficialsPerGame - count
	if needed <= 0 {
		return sweepStatusSkipped, fmt.Sprintf("%s: already fully staffed", g.Title())
	}

	res := s.assignOfficials(ctx, g, needed, nil)
	if !res.Success {
		return sweepStatusFailed, fmt.Sprintf("%s: %s", g.Title(), res.Message)
	}
	return sweepStatusSuccess, fmt.Sprintf("%s: %s", g.Title(), res.Message)
}

// ValidateAssignment is a pure read: it reports whether manually placing
// the official on the game would be sound, without writing anything.
func (s *AssignmentService) ValidateAssignment(ctx context.Context, gameID, officialID string) ValidationResult {
	ctx, span := startUsecaseSpan(ctx, "AssignmentService.ValidateAssignment")
	defer span.End()

	g, gameFound, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		s.logger.ErrorContext(ctx, "game lookup failed", "game_id", gameID, "error", err)
		return ValidationResult{Reason: "Could not validate assignment"}
	}
	_, officialFound, err := s.officialRepo.GetByID(ctx, officialID)
	if err != nil {
		s.logger.ErrorContext(ctx, "official lookup failed", "official_id", officialID, "error", err)
		return ValidationResult{Reason: "Could not validate assignment"}
	}
	if !gameFound || !officialFound {
		return ValidationResult{Reason: "Game or official not found"}
	}

	_, exists, err := s.assignmentRepo.GetActive(ctx, gameID, officialID)
	if err != nil {
		s.logger.ErrorContext(ctx, "assignment lookup failed", "game_id", gameID, "official_id", officialID, "error", err)
		return ValidationResult{Reason: "Could not validate assignment"}
	}
	if exists {
		return ValidationResult{Reason: "Official already assigned to this game"}
	}

	if conflicts := s.conflictSvc.CheckConflicts(ctx, g, officialID); len(conflicts) > 0 {
		return ValidationResult{
			Reason:    "Assignment conflicts detected",
			Conflicts: scheduling.Messages(conflicts),
		}
	}

	return ValidationResult{Valid: true}
}

// Preview shows what AutoAssign would do: the ranked top candidates with
// the numbers behind their scores.
func (s *AssignmentService) Preview(ctx context.Context, gameID string) (AssignmentPreview, error) {
	ctx, span := startUsecaseSpan(ctx, "AssignmentService.Preview")
	defer span.End()

	g, ok, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return AssignmentPreview{}, fmt.Errorf("get game: %w", err)
	}
	if !ok {
		return AssignmentPreview{}, fmt.Errorf("%w: game %s", ErrNotFound, gameID)
	}

	candidates, err := s.rankCandidates(ctx, g)
	if err != nil {
		return AssignmentPreview{}, fmt.Errorf("rank candidates for game=%s: %w", gameID, err)
	}

	preview := AssignmentPreview{
		GameTitle:      g.Title(),
		AvailableCount: len(candidates),
	}

	top := s.policy.PreviewSize
	if top > len(candidates) {
		top = len(candidates)
	}
	since := s.now().UTC().AddDate(0, 0, -s.policy.RecentWindowDays)

	preview.TopCandidates = make([]PreviewCandidate, 0, top)
	for i := 0; i < top; i++ {
		cand := candidates[i]

		leagueRanking := "Not ranked"
		if record, found := s.rankingSvc.Record(ctx, cand.official.ID, g.LeagueID); found {
			leagueRanking = fmt.Sprintf("%d/%d", record.Ranking, ranking.MaxRanking)
		}

		recent, err := s.assignmentRepo.CountActiveByOfficialSince(ctx, cand.official.ID, since)
		if err != nil {
			s.logger.WarnContext(ctx, "recent assignment count failed",
				"official_id", cand.official.ID, "error", err)
			recent = 0
		}

		preview.TopCandidates = append(preview.TopCandidates, PreviewCandidate{
			Rank:              i + 1,
			Name:              cand.official.FullName,
			Score:             cand.score,
			LeagueRanking:     leagueRanking,
			Experience:        fmt.Sprintf("%d games", cand.gamesWorked),
			RecentAssignments: fmt.Sprintf("%d recent", recent),
			WouldAssign:       i < s.policy.OfficialsPerGame,
		})
	}

	return preview, nil
}

// WorkloadSummary reports active and recent assignment counts per official
// for one league, busiest first.
func (s *AssignmentService) WorkloadSummary(ctx context.Context, leagueID string, daysBack int) (WorkloadReport, error) {
	ctx, span := startUsecaseSpan(ctx, "AssignmentService.WorkloadSummary")
	defer span.End()

	l, ok, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return WorkloadReport{}, fmt.Errorf("get league: %w", err)
	}
	if !ok {
		return WorkloadReport{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	if daysBack <= 0 {
		daysBack = s.policy.RecentWindowDays
	}
	since := s.now().UTC().AddDate(0, 0, -daysBack)

	officials, err := s.officialRepo.ListEligible(ctx)
	if err != nil {
		return WorkloadReport{}, fmt.Errorf("list eligible officials: %w", err)
	}

	report := WorkloadReport{
		LeagueID:   l.ID,
		LeagueName: l.Name,
		WindowDays: daysBack,
		Officials:  make([]OfficialWorkload, 0, len(officials)),
	}

	for _, o := range officials {
		items, err := s.assignmentRepo.ListActiveByOfficial(ctx, o.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "workload lookup failed, skipping official",
				"official_id", o.ID, "error", err)
			continue
		}

		entry := OfficialWorkload{OfficialID: o.ID, Name: o.FullName}
		for _, item := range items {
			g, found, err := s.gameRepo.GetByID(ctx, item.GameID)
			if err != nil || !found || g.LeagueID != leagueID {
				continue
			}
			entry.ActiveAssignments++
			if !item.AssignedAt.Before(since) {
				entry.RecentAssignments++
			}
		}
		report.Officials = append(report.Officials, entry)
	}

	sort.SliceStable(report.Officials, func(i, j int) bool {
		if report.Officials[i].ActiveAssignments != report.Officials[j].ActiveAssignments {
			return report.Officials[i].ActiveAssignments > report.Officials[j].ActiveAssignments
		}
		return report.Officials[i].Name < report.Officials[j].Name
	})

	return report, nil
}
