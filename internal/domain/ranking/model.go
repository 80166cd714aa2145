package ranking

import "time"

const (
	MinRanking = 1
	MaxRanking = 5

	// DefaultRanking applies when an official has no record for a league.
	// A missing record is a documented default, not an error.
	DefaultRanking = 3
)

// Record tracks one official's standing within one league.
type Record struct {
	ID               string
	OfficialID       string
	LeagueID         string
	Ranking          int
	GamesWorked      int
	YearsExperience  int
	LastAssignmentAt *time.Time
	IsActive         bool
}

func IsValidRanking(value int) bool {
	return value >= MinRanking && value <= MaxRanking
}
