package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// HillClimbing accepts only progressively better solutions, discarding any
// candidate with a worse objective than the current solution.
type HillClimbing struct{}

var _ Criterion = (*HillClimbing)(nil)

// NewHillClimbing returns a hill-climbing criterion. It holds no state and
// never fails.
func NewHillClimbing() *HillClimbing { return &HillClimbing{} }

// Accept returns true iff the candidate does not worsen the current
// objective.
func (*HillClimbing) Accept(_ *rand.Rand, _, curr, candidate core.State) (bool, error) {
	return candidate.Objective() <= curr.Objective(), nil
}

// RandomWalk accepts every candidate, regardless of objective. It serves as
// a degenerate baseline against which adaptive criteria are compared.
type RandomWalk struct{}

var _ Criterion = (*RandomWalk)(nil)

// NewRandomWalk returns an accept-everything criterion.
func NewRandomWalk() *RandomWalk { return &RandomWalk{} }

// Accept always returns true.
func (*RandomWalk) Accept(_ *rand.Rand, _, _, _ core.State) (bool, error) {
	return true, nil
}
