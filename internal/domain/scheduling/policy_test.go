package scheduling

import (
	"testing"
	"time"

	"github.com/openrefs/refsched/internal/domain/game"
)

func TestPolicyOccupiedAndBuffered(t *testing.T) {
	policy := DefaultPolicy()
	g := game.Game{
		ID:              "g-1",
		StartsAt:        at(14, 0),
		DurationMinutes: 90,
	}

	occupied := policy.Occupied(g)
	if !occupied.Start.Equal(at(14, 0)) || !occupied.End.Equal(at(15, 30)) {
		t.Fatalf("occupied = [%v, %v), want [14:00, 15:30)", occupied.Start, occupied.End)
	}

	buffered := policy.Buffered(g)
	if !buffered.Start.Equal(at(12, 0)) || !buffered.End.Equal(at(17, 30)) {
		t.Fatalf("buffered = [%v, %v), want [12:00, 17:30)", buffered.Start, buffered.End)
	}
}

func TestPolicyGameDurationFallback(t *testing.T) {
	g := game.Game{ID: "g-1", StartsAt: at(14, 0)}

	occupied := DefaultPolicy().Occupied(g)
	if !occupied.End.Equal(at(16, 0)) {
		t.Fatalf("expected default 120m duration, got end %v", occupied.End)
	}

	// The configured default, not the package constant, decides how long
	// a game without a stored duration occupies its slot.
	short := DefaultPolicy()
	short.DefaultDurationMinutes = 60
	if got := short.GameDuration(g); got != time.Hour {
		t.Fatalf("GameDuration = %v, want %v", got, time.Hour)
	}
	if occupied := short.Occupied(g); !occupied.End.Equal(at(15, 0)) {
		t.Fatalf("expected configured 60m duration, got end %v", occupied.End)
	}

	// A stored duration always wins over the default.
	g.DurationMinutes = 45
	if got := short.GameDuration(g); got != 45*time.Minute {
		t.Fatalf("GameDuration = %v, want %v", got, 45*time.Minute)
	}
}

func TestPolicyBufferedCrossesMidnight(t *testing.T) {
	g := game.Game{
		ID:              "g-late",
		StartsAt:        time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC),
		DurationMinutes: 120,
	}

	buffered := DefaultPolicy().Buffered(g)
	wantEnd := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)
	if !buffered.End.Equal(wantEnd) {
		t.Fatalf("buffered end = %v, want %v", buffered.End, wantEnd)
	}
}
