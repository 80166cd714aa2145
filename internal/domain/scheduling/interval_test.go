package scheduling

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "disjoint",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(13, 0), End: at(15, 0)},
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(12, 0), End: at(14, 0)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(11, 0), End: at(13, 0)},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: at(9, 0), End: at(17, 0)},
			b:    Interval{Start: at(11, 0), End: at(12, 0)},
			want: true,
		},
		{
			name: "identical",
			a:    Interval{Start: at(10, 0), End: at(12, 0)},
			b:    Interval{Start: at(10, 0), End: at(12, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Fatalf("overlap is not symmetric: b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}
