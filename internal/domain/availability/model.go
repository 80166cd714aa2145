package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/openrefs/refsched/internal/domain/game"
)

const (
	TypeAllDay = "unavailable_all_day"
	TypeHours  = "unavailable_hours"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrMissingTimeRange = errors.New("hour records require start and end times")
)

// TimeOfDay is minutes since midnight. NoTime marks an absent value, used
// when a caller asks about a whole date rather than a specific moment.
type TimeOfDay int

const NoTime TimeOfDay = -1

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < 24*60
}

func (t TimeOfDay) String() string {
	if !t.Valid() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Record declares one unavailability window for an official: a full-day
// block over an inclusive date range, or an hour range within those dates.
type Record struct {
	ID         string
	OfficialID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	Reason     string
	IsActive   bool
}

func (r Record) Validate() error {
	if r.StartDate.After(r.EndDate) {
		return ErrInvalidDateRange
	}
	if r.Type == TypeHours {
		if !r.StartTime.Valid() || !r.EndTime.Valid() {
			return ErrMissingTimeRange
		}
		if r.StartTime >= r.EndTime {
			return ErrInvalidTimeRange
		}
	}
	return nil
}

// Covers reports whether the record's inclusive date range contains date.
func (r Record) Covers(date time.Time) bool {
	d := game.DateOf(date)
	return !d.Before(game.DateOf(r.StartDate)) && !d.After(game.DateOf(r.EndDate))
}

// Blocks reports whether the record makes the official unavailable at the
// given time of day. Hour records use inclusive bounds; a missing time
// only trips full-day records.
func (r Record) Blocks(t TimeOfDay) bool {
	switch r.Type {
	case TypeAllDay:
		return true
	case TypeHours:
		return t != NoTime && t >= r.StartTime && t <= r.EndTime
	default:
		return false
	}
}

// TimeRangeLabel renders the blocked window for conflict messages.
func (r Record) TimeRangeLabel() string {
	if r.Type == TypeHours && r.StartTime.Valid() && r.EndTime.Valid() {
		return r.StartTime.String() + " - " + r.EndTime.String()
	}
	return "All day"
}

// DayConflict is one human-readable unavailability hit on a single date.
type DayConflict struct {
	Date      time.Time
	Type      string
	Reason    string
	TimeRange string
}
