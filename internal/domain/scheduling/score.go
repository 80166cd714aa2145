package scheduling

import (
	"math/rand"
	"sync"
)

const (
	scoreRankWeight        = 20.0
	scoreExperiencePerGame = 2.0
	scoreExperienceCap     = 40.0
	scoreStalenessPerDay   = 0.5
	scoreStalenessCap      = 30.0
	scoreJitterRange       = 2.0
)

// Scorer computes assignment priority scores. The only non-deterministic
// term is a small tie-break jitter drawn from the injected source; pass a
// fixed seed for reproducible ordering in tests.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScorer(src rand.Source) *Scorer {
	return &Scorer{rng: rand.New(src)}
}

// Score combines league ranking, capped experience, and a staleness bonus
// that favors officials who have not worked recently:
//
//	ranking*20 + min(gamesWorked*2, 40) + min(daysSinceLast*0.5, 30) + jitter(-2, 2)
func (s *Scorer) Score(ranking, gamesWorked, daysSinceLast int) float64 {
	score := float64(ranking) * scoreRankWeight

	experience := float64(gamesWorked) * scoreExperiencePerGame
	if experience > scoreExperienceCap {
		experience = scoreExperienceCap
	}
	score += experience

	staleness := float64(daysSinceLast) * scoreStalenessPerDay
	if staleness > scoreStalenessCap {
		staleness = scoreStalenessCap
	}
	score += staleness

	return score + s.jitter()
}

func (s *Scorer) jitter() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*2*scoreJitterRange - scoreJitterRange
}
