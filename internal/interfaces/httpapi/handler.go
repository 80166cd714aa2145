package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/domain/league"
	"github.com/openrefs/refsched/internal/domain/scheduling"
	"github.com/openrefs/refsched/internal/platform/logging"
	"github.com/openrefs/refsched/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	leagueService       *usecase.LeagueService
	conflictService     *usecase.ConflictService
	availabilityService *usecase.AvailabilityService
	assignmentService   *usecase.AssignmentService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	conflictService *usecase.ConflictService,
	availabilityService *usecase.AvailabilityService,
	assignmentService *usecase.AssignmentService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:       leagueService,
		conflictService:     conflictService,
		availabilityService: availabilityService,
		assignmentService:   assignmentService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type leagueDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{ID: l.ID, Name: l.Name, Sport: l.Sport}
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type conflictDTO struct {
	Type         string `json:"type"`
	Message      string `json:"message"`
	GameID       string `json:"game_id,omitempty"`
	AssignmentID string `json:"assignment_id,omitempty"`
}

type conflictListDTO struct {
	GameID     string        `json:"game_id"`
	OfficialID string        `json:"official_id,omitempty"`
	Conflicts  []conflictDTO `json:"conflicts"`
}

func (h *Handler) GetGameConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameConflicts")
	defer span.End()

	gameID := r.PathValue("gameID")
	officialID := strings.TrimSpace(r.URL.Query().Get("official_id"))

	conflicts, err := h.conflictService.CheckConflictsByGameID(ctx, gameID, officialID)
	if err != nil {
		h.logger.WarnContext(ctx, "conflict check failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, conflictListDTO{
		GameID:     gameID,
		OfficialID: officialID,
		Conflicts:  conflictsToDTO(conflicts),
	})
}

func conflictsToDTO(conflicts []scheduling.Conflict) []conflictDTO {
	out := make([]conflictDTO, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, conflictDTO{
			Type:         c.Type,
			Message:      c.Message,
			GameID:       c.GameID,
			AssignmentID: c.AssignmentID,
		})
	}
	return out
}

type availabilityDTO struct {
	OfficialID string `json:"official_id"`
	Date       string `json:"date"`
	Time       string `json:"time,omitempty"`
	Available  bool   `json:"available"`
}

func (h *Handler) GetOfficialAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOfficialAvailability")
	defer span.End()

	officialID := r.PathValue("officialID")
	query := r.URL.Query()

	rawDate := strings.TrimSpace(query.Get("date"))
	if rawDate == "" {
		writeError(ctx, w, fmt.Errorf("%w: date query parameter is required", usecase.ErrInvalidInput))
		return
	}
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", usecase.ErrInvalidInput, rawDate))
		return
	}

	at := availability.NoTime
	rawTime := strings.TrimSpace(query.Get("time"))
	if rawTime != "" {
		parsed, err := time.Parse("15:04", rawTime)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid time %q, expected HH:MM", usecase.ErrInvalidInput, rawTime))
			return
		}
		at = availability.At(parsed.Hour(), parsed.Minute())
	}

	available := h.availabilityService.IsAvailableOn(ctx, officialID, date, at)

	writeSuccess(ctx, w, http.StatusOK, availabilityDTO{
		OfficialID: officialID,
		Date:       rawDate,
		Time:       at.String(),
		Available:  available,
	})
}

func (h *Handler) PreviewAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewAssignments")
	defer span.End()

	gameID := r.PathValue("gameID")
	preview, err := h.assignmentService.Preview(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "assignment preview failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preview)
}

type autoAssignRequest struct {
	NumOfficials int      `json:"num_officials" validate:"required,gt=0,lte=10"`
	Positions    []string `json:"positions" validate:"omitempty,dive,required"`
}

func (h *Handler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoAssign")
	defer span.End()

	var req autoAssignRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	gameID := r.PathValue("gameID")
	result := h.assignmentService.AutoAssign(ctx, gameID, req.NumOfficials, req.Positions)
	if !result.Success {
		h.logger.InfoContext(ctx, "auto assignment declined", "game_id", gameID, "reason", result.Message)
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type validateAssignmentRequest struct {
	OfficialID string `json:"official_id" validate:"required"`
}

func (h *Handler) ValidateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateAssignment")
	defer span.End()

	var req validateAssignmentRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.assignmentService.ValidateAssignment(ctx, r.PathValue("gameID"), req.OfficialID)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunAutoAssignReleasedJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoAssignReleasedJob")
	defer span.End()

	result, err := h.assignmentService.AutoAssignAllReleased(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "released games sweep failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "released games sweep finished",
		"processed", result.ProcessedCount,
		"succeeded", result.SuccessCount,
		"failed", result.ErrorCount,
		"skipped", result.SkippedCount,
	)

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetLeagueWorkload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueWorkload")
	defer span.End()

	leagueID := r.PathValue("leagueID")

	daysBack := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("days_back")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: invalid days_back %q", usecase.ErrInvalidInput, raw))
			return
		}
		daysBack = parsed
	}

	report, err := h.assignmentService.WorkloadSummary(ctx, leagueID, daysBack)
	if err != nil {
		h.logger.WarnContext(ctx, "workload summary failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
