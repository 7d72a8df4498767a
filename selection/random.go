package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// RandomSelect draws a (destroy, repair) pair uniformly over all pairs the
// coupling matrix allows. It carries no state beyond the coupling matrix
// and ignores outcome feedback entirely.
type RandomSelect struct {
	scheme
	pairs [][2]int
}

var _ Scheme = (*RandomSelect)(nil)

// NewRandomSelect builds a uniform selection scheme over numDestroy destroy
// and numRepair repair operators. A nil coupling permits every pair.
func NewRandomSelect(numDestroy, numRepair int, coupling [][]bool) (*RandomSelect, error) {
	base, err := newScheme(numDestroy, numRepair, coupling)
	if err != nil {
		return nil, err
	}

	return &RandomSelect{scheme: base, pairs: base.legalPairs()}, nil
}

// Select returns a uniformly random legal pair.
func (rs *RandomSelect) Select(rng *rand.Rand, _, _ core.State) (int, int, error) {
	p := rs.pairs[rng.Intn(len(rs.pairs))]

	return p[0], p[1], nil
}

// Update is a no-op: uniform selection does not learn.
func (rs *RandomSelect) Update(_ core.State, _, _ int, _ core.Outcome) error {
	return nil
}
