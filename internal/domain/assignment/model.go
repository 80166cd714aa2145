package assignment

import "time"

const (
	TypeManual = "manual"
	TypeAuto   = "auto"

	StatusAssigned = "assigned"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Assignment links one official to one game. Rows are soft-deleted by
// flipping IsActive; at most one active row may exist per (game, official)
// pair, and re-assigning a removed pair reactivates the old row.
type Assignment struct {
	ID         string
	GameID     string
	OfficialID string
	Position   string
	Type       string
	Status     string
	IsActive   bool
	AssignedAt time.Time
	ResponseAt *time.Time
}
