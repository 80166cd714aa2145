package usecase

import (
	"context"
	"time"

	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/platform/logging"
)

// AvailabilityService answers "can this official work at this time" from
// declared unavailability records. Officials are available unless a record
// says otherwise, and storage failures also lean toward available because
// these checks are advisory.
type AvailabilityService struct {
	availabilityRepo availability.Repository
	logger           *logging.Logger
}

func NewAvailabilityService(availabilityRepo availability.Repository, logger *logging.Logger) *AvailabilityService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AvailabilityService{availabilityRepo: availabilityRepo, logger: logger}
}

// IsAvailable checks a specific moment, typically a game's start time.
func (s *AvailabilityService) IsAvailable(ctx context.Context, officialID string, at time.Time) bool {
	return s.available(ctx, officialID, at, availability.TimeOfDayFrom(at))
}

// IsAvailableOn checks a date with an optional time of day. Pass
// availability.NoTime to ask about the date as a whole, in which case only
// full-day blocks count.
func (s *AvailabilityService) IsAvailableOn(ctx context.Context, officialID string, date time.Time, at availability.TimeOfDay) bool {
	return s.available(ctx, officialID, date, at)
}

func (s *AvailabilityService) available(ctx context.Context, officialID string, date time.Time, at availability.TimeOfDay) bool {
	ctx, span := startUsecaseSpan(ctx, "AvailabilityService.IsAvailable")
	defer span.End()

	records, err := s.availabilityRepo.ListActiveCovering(ctx, officialID, date)
	if err != nil {
		s.logger.WarnContext(ctx, "availability lookup failed, treating as available",
			"official_id", officialID, "error", err)
		return true
	}

	for _, record := range records {
		if record.Blocks(at) {
			return false
		}
	}
	return true
}

// ConflictsInRange reports, day by day, why the official cannot work
// between start and end. Each date is probed at the range's starting time
// of day.
func (s *AvailabilityService) ConflictsInRange(ctx context.Context, officialID string, start, end time.Time) []availability.DayConflict {
	ctx, span := startUsecaseSpan(ctx, "AvailabilityService.ConflictsInRange")
	defer span.End()

	at := availability.TimeOfDayFrom(start)
	last := game.DateOf(end)

	var out []availability.DayConflict
	for date := game.DateOf(start); !date.After(last); date = date.AddDate(0, 0, 1) {
		records, err := s.availabilityRepo.ListActiveCovering(ctx, officialID, date)
		if err != nil {
			s.logger.WarnContext(ctx, "availability range lookup failed, skipping date",
				"official_id", officialID, "date", date.Format("2006-01-02"), "error", err)
			continue
		}

		for _, record := range records {
			if !record.Blocks(at) {
				continue
			}
			out = append(out, availability.DayConflict{
				Date:      date,
				Type:      record.Type,
				Reason:    record.Reason,
				TimeRange: record.TimeRangeLabel(),
			})
		}
	}
	return out
}
