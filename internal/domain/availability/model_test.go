package availability

import (
	"errors"
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name      string
		record    Record
		targetErr error
	}{
		{
			name:   "valid all day",
			record: Record{Type: TypeAllDay, StartDate: date(1), EndDate: date(3)},
		},
		{
			name:   "valid hours",
			record: Record{Type: TypeHours, StartDate: date(1), EndDate: date(1), StartTime: At(9, 0), EndTime: At(17, 0)},
		},
		{
			name:      "reversed dates",
			record:    Record{Type: TypeAllDay, StartDate: date(3), EndDate: date(1)},
			targetErr: ErrInvalidDateRange,
		},
		{
			name:      "hours without times",
			record:    Record{Type: TypeHours, StartDate: date(1), EndDate: date(1), StartTime: NoTime, EndTime: NoTime},
			targetErr: ErrMissingTimeRange,
		},
		{
			name:      "reversed times",
			record:    Record{Type: TypeHours, StartDate: date(1), EndDate: date(1), StartTime: At(17, 0), EndTime: At(9, 0)},
			targetErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestRecordCovers(t *testing.T) {
	record := Record{Type: TypeAllDay, StartDate: date(2), EndDate: date(4)}

	if record.Covers(date(1)) {
		t.Fatal("day before range should not be covered")
	}
	for day := 2; day <= 4; day++ {
		if !record.Covers(date(day)) {
			t.Fatalf("day %d inside range should be covered", day)
		}
	}
	if record.Covers(date(5)) {
		t.Fatal("day after range should not be covered")
	}
}

func TestRecordBlocks(t *testing.T) {
	allDay := Record{Type: TypeAllDay}
	if !allDay.Blocks(NoTime) || !allDay.Blocks(At(12, 0)) {
		t.Fatal("all-day records block regardless of time")
	}

	hours := Record{Type: TypeHours, StartTime: At(9, 0), EndTime: At(17, 0)}
	if hours.Blocks(NoTime) {
		t.Fatal("hour records need a time to block")
	}
	if hours.Blocks(At(8, 59)) {
		t.Fatal("before window should not block")
	}
	// Bounds are inclusive on both ends.
	if !hours.Blocks(At(9, 0)) || !hours.Blocks(At(17, 0)) {
		t.Fatal("window bounds should block inclusively")
	}
	if hours.Blocks(At(17, 1)) {
		t.Fatal("after window should not block")
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := At(7, 5).String(); got != "07:05" {
		t.Fatalf("expected 07:05, got %s", got)
	}
	if got := NoTime.String(); got != "" {
		t.Fatalf("expected empty string for NoTime, got %q", got)
	}
}
