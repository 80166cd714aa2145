package usecase

import (
	"testing"
	"time"

	"github.com/openrefs/refsched/internal/domain/availability"
	"github.com/openrefs/refsched/internal/infrastructure/repository/memory"
	"github.com/openrefs/refsched/internal/platform/logging"
)

func newAvailabilityService(records []availability.Record) *AvailabilityService {
	return NewAvailabilityService(memory.NewAvailabilityRepository(records), logging.NewNop())
}

func TestAvailabilityService_AvailableByDefault(t *testing.T) {
	service := newAvailabilityService(nil)

	at := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	if !service.IsAvailable(t.Context(), "off-alice", at) {
		t.Fatal("official with no records should be available")
	}
}

func TestAvailabilityService_AllDayBlock(t *testing.T) {
	service := newAvailabilityService([]availability.Record{
		{
			ID:         "av-1",
			OfficialID: "off-alice",
			Type:       availability.TypeAllDay,
			StartDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			Reason:     "Out of town",
			IsActive:   true,
		},
	})

	if service.IsAvailable(t.Context(), "off-alice", time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)) {
		t.Fatal("blocked date should be unavailable")
	}
	if service.IsAvailable(t.Context(), "off-alice", time.Date(2026, 9, 13, 9, 0, 0, 0, time.UTC)) {
		t.Fatal("end date is inclusive, should be unavailable")
	}
	if !service.IsAvailable(t.Context(), "off-alice", time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)) {
		t.Fatal("day after the range should be available")
	}
}

func TestAvailabilityService_HourBlockInclusiveBounds(t *testing.T) {
	service := newAvailabilityService([]availability.Record{
		{
			ID:         "av-1",
			OfficialID: "off-emiko",
			Type:       availability.TypeHours,
			StartDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			StartTime:  availability.At(8, 0),
			EndTime:    availability.At(12, 0),
			IsActive:   true,
		},
	})

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		at        time.Duration
		available bool
	}{
		{at: 7*time.Hour + 59*time.Minute, available: true},
		{at: 8 * time.Hour, available: false},
		{at: 10 * time.Hour, available: false},
		{at: 12 * time.Hour, available: false},
		{at: 12*time.Hour + 1*time.Minute, available: true},
	}

	for _, tc := range cases {
		got := service.IsAvailable(t.Context(), "off-emiko", day.Add(tc.at))
		if got != tc.available {
			t.Errorf("at %v: available=%v, want %v", tc.at, got, tc.available)
		}
	}
}

func TestAvailabilityService_DateOnlyProbeIgnoresHourBlocks(t *testing.T) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	service := newAvailabilityService([]availability.Record{
		{
			ID:         "av-1",
			OfficialID: "off-emiko",
			Type:       availability.TypeHours,
			StartDate:  day,
			EndDate:    day,
			StartTime:  availability.At(8, 0),
			EndTime:    availability.At(12, 0),
			IsActive:   true,
		},
	})

	if !service.IsAvailableOn(t.Context(), "off-emiko", day, availability.NoTime) {
		t.Fatal("date-only probe should not trip hour blocks")
	}
}

func TestAvailabilityService_ConflictsInRange(t *testing.T) {
	service := newAvailabilityService([]availability.Record{
		{
			ID:         "av-1",
			OfficialID: "off-carla",
			Type:       availability.TypeAllDay,
			StartDate:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Reason:     "Out of town",
			IsActive:   true,
		},
	})

	start := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	conflicts := service.ConflictsInRange(t.Context(), "off-carla", start, end)
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 day conflicts, got %d: %v", len(conflicts), conflicts)
	}
	if !conflicts[0].Date.Equal(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first conflict date = %v", conflicts[0].Date)
	}
	if conflicts[0].Reason != "Out of town" || conflicts[0].TimeRange != "All day" {
		t.Errorf("unexpected conflict details: %+v", conflicts[0])
	}
}
