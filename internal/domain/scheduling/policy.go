package scheduling

import (
	"time"

	"github.com/openrefs/refsched/internal/domain/game"
	"github.com/openrefs/refsched/internal/domain/ranking"
)

// Policy collects the scheduling constants that used to live as scattered
// literals. Components receive it explicitly so tests can override values.
type Policy struct {
	// ConflictBuffer is the travel margin added around every game when
	// testing for double bookings.
	ConflictBuffer time.Duration

	// DefaultRanking is used for officials with no ranking record.
	DefaultRanking int

	// OfficialsPerGame is the target crew size for released games.
	OfficialsPerGame int

	// DefaultDurationMinutes applies to games without a stored duration.
	DefaultDurationMinutes int

	// NoPriorAssignmentDays is the staleness credited to officials who
	// have never worked a game, putting new officials at the front.
	NoPriorAssignmentDays int

	// RecentWindowDays bounds the "recent assignments" lookback used by
	// previews and workload reports.
	RecentWindowDays int

	// PreviewSize is how many candidates an assignment preview shows.
	PreviewSize int
}

func DefaultPolicy() Policy {
	return Policy{
		ConflictBuffer:         2 * time.Hour,
		DefaultRanking:         ranking.DefaultRanking,
		OfficialsPerGame:       2,
		DefaultDurationMinutes: game.DefaultDurationMinutes,
		NoPriorAssignmentDays:  365,
		RecentWindowDays:       30,
		PreviewSize:            5,
	}
}

// GameDuration returns the game's effective duration, falling back to the
// policy default when the stored value is missing or non-positive.
func (p Policy) GameDuration(g game.Game) time.Duration {
	minutes := g.DurationMinutes
	if minutes <= 0 {
		minutes = p.DefaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// Occupied returns the interval a game actually takes up.
func (p Policy) Occupied(g game.Game) Interval {
	start := g.StartsAt
	return Interval{Start: start, End: start.Add(p.GameDuration(g))}
}

// Buffered widens the occupied interval by the travel/safety buffer on
// both sides. Buffered windows may cross midnight; comparisons stay on
// full timestamps so such windows compare correctly.
func (p Policy) Buffered(g game.Game) Interval {
	occupied := p.Occupied(g)
	return Interval{Start: occupied.Start.Add(-p.ConflictBuffer), End: occupied.End.Add(p.ConflictBuffer)}
}
