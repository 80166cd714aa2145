package game

import "time"

const (
	StatusDraft     = "draft"
	StatusReady     = "ready"
	StatusReleased  = "released"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultDurationMinutes applies when a game has no usable duration.
const DefaultDurationMinutes = 120

// Game represents one scheduled match that needs officials.
type Game struct {
	ID              string
	LeagueID        string
	LocationID      string
	FieldName       string
	HomeTeam        string
	AwayTeam        string
	StartsAt        time.Time
	DurationMinutes int
	Status          string
	IsActive        bool
}

// Date returns the calendar date of the game, midnight in the game's
// own location.
func (g Game) Date() time.Time {
	return DateOf(g.StartsAt)
}

func (g Game) Title() string {
	if g.HomeTeam == "" && g.AwayTeam == "" {
		return "Game " + g.ID
	}
	return g.HomeTeam + " vs " + g.AwayTeam
}

// AcceptsManualAssignment reports whether officials may still be attached.
func (g Game) AcceptsManualAssignment() bool {
	if !g.IsActive {
		return false
	}
	switch g.Status {
	case StatusDraft, StatusReady, StatusReleased:
		return true
	default:
		return false
	}
}

// AcceptsAutoAssignment reports whether the auto-assignment flow may run
// for this game directly. The bulk released-games sweep bypasses this
// guard on purpose.
func (g Game) AcceptsAutoAssignment() bool {
	return g.IsActive && (g.Status == StatusDraft || g.Status == StatusReady)
}

// BlocksSchedule reports whether the game still occupies its slot for
// conflict purposes. Cancelled and completed games do not.
func (g Game) BlocksSchedule() bool {
	return g.IsActive && g.Status != StatusCancelled && g.Status != StatusCompleted
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusReady, StatusReleased, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// DateOf truncates a timestamp to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
