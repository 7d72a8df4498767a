// Package accept_test provides small helpers shared across the acceptance
// criterion tests: a fixed-objective state and a scripted random source for
// exact probability walk-throughs.
package accept_test

import "math/rand"

// objState is a minimal solution state with a fixed objective.
type objState float64

func (s objState) Objective() float64 { return float64(s) }

// scriptedSource replays a fixed sequence of Float64 draws, cycling once
// exhausted. It lets probability-based criteria be tested against exact,
// pre-chosen draws instead of live randomness.
type scriptedSource struct {
	draws []float64
	next  int
}

func (s *scriptedSource) Int63() int64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++

	// rand.Rand.Float64 divides Int63 by 1<<63; invert that here.
	return int64(v * (1 << 63))
}

func (s *scriptedSource) Seed(int64) {}

// scriptedRNG wraps scripted draws into a *rand.Rand whose Float64 calls
// return (up to float rounding) the given values in order.
func scriptedRNG(draws ...float64) *rand.Rand {
	return rand.New(&scriptedSource{draws: draws})
}

// fixedRNG is a deterministic seeded stream for tests that only need
// reproducibility, not exact draws.
func fixedRNG() *rand.Rand { return rand.New(rand.NewSource(42)) }
