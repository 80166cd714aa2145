package usecase

import (
	"context"
	"fmt"

	"github.com/openrefs/refsched/internal/domain/assignment"
	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/domain/official"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	"github.com/openrefs/refsched/internal/platform/logging"
)

const conflictTimeLayout = "3:04 PM"

// ConflictService detects venue and person double-bookings. Detection is
// advisory: any storage failure is logged and reported as "no conflicts"
// so that a flaky read never blocks scheduling work.
type ConflictService struct {
	gameRepo       game.Repository
	officialRepo   official.Repository
	assignmentRepo assignment.Repository
	policy         scheduling.Policy
	logger         *logging.Logger
}

func NewConflictService(
	gameRepo game.Repository,
	officialRepo official.Repository,
	assignmentRepo assignment.Repository,
	policy scheduling.Policy,
	logger *logging.Logger,
) *ConflictService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ConflictService{
		gameRepo:       gameRepo,
		officialRepo:   officialRepo,
		assignmentRepo: assignmentRepo,
		policy:         policy,
		logger:         logger,
	}
}

// CheckConflictsByGameID resolves the game first so HTTP callers get a
// proper not-found instead of a silently empty conflict list.
func (s *ConflictService) CheckConflictsByGameID(ctx context.Context, gameID, officialID string) ([]scheduling.Conflict, error) {
	ctx, span := startUsecaseSpan(ctx, "ConflictService.CheckConflictsByGameID")
	defer span.End()

	g, ok, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: game %s", ErrNotFound, gameID)
	}

	return s.CheckConflicts(ctx, g, officialID), nil
}

// CheckConflicts returns every scheduling conflict for placing officialID
// on the given game. An empty officialID checks the game's venue only.
func (s *ConflictService) CheckConflicts(ctx context.Context, g game.Game, officialID string) []scheduling.Conflict {
	ctx, span := startUsecaseSpan(ctx, "ConflictService.CheckConflicts")
	defer span.End()

	conflicts := s.locationConflicts(ctx, g)
	if officialID != "" {
		conflicts = append(conflicts, s.officialConflicts(ctx, g, officialID)...)
	}
	return conflicts
}

// locationConflicts finds other games on the same date and location whose
// occupied slot falls inside the subject's buffered window. The field
// filter only applies when both games name a field; a game without a field
// conflicts with everything at the location.
func (s *ConflictService) locationConflicts(ctx context.Context, g game.Game) []scheduling.Conflict {
	others, err := s.gameRepo.ListByLocationAndDate(ctx, g.LocationID, g.Date())
	if err != nil {
		s.logger.WarnContext(ctx, "location conflict lookup failed, treating as clear",
			"game_id", g.ID, "location_id", g.LocationID, "error", err)
		return nil
	}

	window := s.policy.Buffered(g)

	var conflicts []scheduling.Conflict
	for _, other := range others {
		if other.ID == g.ID || !other.BlocksSchedule() {
			continue
		}
		if g.FieldName != "" && other.FieldName != "" && other.FieldName != g.FieldName {
			continue
		}
		if !window.Overlaps(s.policy.Occupied(other)) {
			continue
		}

		kind := "Location"
		if g.FieldName != "" && other.FieldName == g.FieldName {
			kind = "Field"
		}
		conflicts = append(conflicts, scheduling.Conflict{
			Type:    scheduling.ConflictTypeLocation,
			Message: fmt.Sprintf("%s conflict with %s at %s", kind, other.Title(), other.StartsAt.Format(conflictTimeLayout)),
			GameID:  other.ID,
		})
	}
	return conflicts
}

// officialConflicts finds the official's other same-day assignments whose
// games sit too close to the subject. Both windows are buffered here, so
// two assignments need roughly twice the travel margin between them that a
// venue double-booking does.
func (s *ConflictService) officialConflicts(ctx context.Context, g game.Game, officialID string) []scheduling.Conflict {
	assignments, err := s.assignmentRepo.ListActiveByOfficial(ctx, officialID)
	if err != nil {
		s.logger.WarnContext(ctx, "official conflict lookup failed, treating as clear",
			"game_id", g.ID, "official_id", officialID, "error", err)
		return nil
	}

	name := s.officialName(ctx, officialID)
	window := s.policy.Buffered(g)

	var conflicts []scheduling.Conflict
	for _, item := range assignments {
		if item.GameID == g.ID {
			continue
		}

		other, ok, err := s.gameRepo.GetByID(ctx, item.GameID)
		if err != nil {
			s.logger.WarnContext(ctx, "assigned game lookup failed, skipping",
				"game_id", item.GameID, "official_id", officialID, "error", err)
			continue
		}
		if !ok || !other.BlocksSchedule() {
			continue
		}
		if !game.SameDate(other.StartsAt, g.StartsAt) {
			continue
		}
		if !window.Overlaps(s.policy.Buffered(other)) {
			continue
		}

		conflicts = append(conflicts, scheduling.Conflict{
			Type:         scheduling.ConflictTypeOfficial,
			Message:      fmt.Sprintf("%s is already assigned to %s at %s", name, other.Title(), other.StartsAt.Format(conflictTimeLayout)),
			GameID:       other.ID,
			AssignmentID: item.ID,
		})
	}
	return conflicts
}

func (s *ConflictService) officialName(ctx context.Context, officialID string) string {
	o, ok, err := s.officialRepo.GetByID(ctx, officialID)
	if err != nil || !ok || o.FullName == "" {
		return "Official"
	}
	return o.FullName
}
