package scheduling

import (
	"math/rand"
	"testing"
)

func TestScoreRankMonotonicity(t *testing.T) {
	scorer := NewScorer(rand.NewSource(1))

	// Jitter is bounded by ±2, so any full rank tier (20 points) dominates.
	for low := 1; low < 5; low++ {
		high := low + 1
		lowScore := scorer.Score(low, 10, 30)
		highScore := scorer.Score(high, 10, 30)
		if highScore <= lowScore {
			t.Fatalf("rank %d scored %.2f, not above rank %d at %.2f", high, highScore, low, lowScore)
		}
	}
}

func TestScoreExperienceCap(t *testing.T) {
	scorer := NewScorer(rand.NewSource(1))

	journeyman := scorer.Score(3, 20, 0)
	veteran := scorer.Score(3, 200, 0)

	// Both hit the 40-point experience cap; only jitter separates them.
	if diff := veteran - journeyman; diff > 2*scoreJitterRange || diff < -2*scoreJitterRange {
		t.Fatalf("experience beyond cap changed score by %.2f", diff)
	}
}

func TestScoreStalenessCap(t *testing.T) {
	scorer := NewScorer(rand.NewSource(1))

	rested := scorer.Score(3, 0, 60)
	idle := scorer.Score(3, 0, 365)

	if diff := idle - rested; diff > 2*scoreJitterRange || diff < -2*scoreJitterRange {
		t.Fatalf("staleness beyond 60 days changed score by %.2f", diff)
	}
}

func TestScoreJitterBounds(t *testing.T) {
	scorer := NewScorer(rand.NewSource(42))

	const base = 3*20.0 + 0 + 0
	for i := 0; i < 200; i++ {
		score := scorer.Score(3, 0, 0)
		if score < base-scoreJitterRange || score > base+scoreJitterRange {
			t.Fatalf("score %.4f escaped jitter bounds around %.1f", score, base)
		}
	}
}

func TestScoreDeterministicUnderFixedSeed(t *testing.T) {
	a := NewScorer(rand.NewSource(7))
	b := NewScorer(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		if sa, sb := a.Score(4, 10, 40), b.Score(4, 10, 40); sa != sb {
			t.Fatalf("same seed diverged at draw %d: %.6f vs %.6f", i, sa, sb)
		}
	}
}
