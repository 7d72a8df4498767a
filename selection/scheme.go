// Package selection - shared scheme plumbing: the Scheme contract, the
// coupling-matrix base embedded by every concrete scheme, and the weighted
// sampling helper used by the roulette variants.
package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// WeightFloor is the smallest weight a roulette-based scheme will hold for
// any operator. Clamping here keeps every weight vector strictly positive,
// so normalisation during selection is always well defined.
const WeightFloor = 1e-12

// Scheme is the contract every operator-selection scheme satisfies.
type Scheme interface {
	// Select returns the (destroy, repair) operator index pair to apply this
	// iteration. The returned pair always satisfies the coupling matrix.
	Select(rng *rand.Rand, best, curr core.State) (dIdx, rIdx int, err error)

	// Update feeds back the outcome of the applied (dIdx, rIdx) pair, along
	// with the candidate it produced, so the scheme can adapt.
	Update(candidate core.State, dIdx, rIdx int, outcome core.Outcome) error
}

// scheme holds the coupling-restricted index space common to all schemes.
type scheme struct {
	numDestroy int
	numRepair  int
	coupling   [][]bool
}

// newScheme validates the operator counts and coupling matrix.
// A nil coupling means every (destroy, repair) pair is legal.
func newScheme(numDestroy, numRepair int, coupling [][]bool) (scheme, error) {
	if numDestroy <= 0 || numRepair <= 0 {
		return scheme{}, ErrNoOperators
	}

	if coupling == nil {
		coupling = make([][]bool, numDestroy)
		for d := range coupling {
			coupling[d] = make([]bool, numRepair)
			for r := range coupling[d] {
				coupling[d][r] = true
			}
		}
	}

	if len(coupling) != numDestroy {
		return scheme{}, ErrCouplingShape
	}
	for d := range coupling {
		if len(coupling[d]) != numRepair {
			return scheme{}, ErrCouplingShape
		}
	}

	// Every destroy row must be coupled with at least one repair operator.
	for d := range coupling {
		var any bool
		for r := range coupling[d] {
			if coupling[d][r] {
				any = true
				break
			}
		}
		if !any {
			return scheme{}, ErrUncoupledDestroy
		}
	}

	return scheme{numDestroy: numDestroy, numRepair: numRepair, coupling: coupling}, nil
}

// NumDestroy returns the number of destroy operators the scheme covers.
func (s *scheme) NumDestroy() int { return s.numDestroy }

// NumRepair returns the number of repair operators the scheme covers.
func (s *scheme) NumRepair() int { return s.numRepair }

// Coupled reports whether repair operator r may follow destroy operator d.
func (s *scheme) Coupled(d, r int) bool { return s.coupling[d][r] }

// coupledRepairs returns the repair indices legal for destroy operator d,
// in ascending order.
func (s *scheme) coupledRepairs(d int) []int {
	idcs := make([]int, 0, s.numRepair)
	for r := range s.coupling[d] {
		if s.coupling[d][r] {
			idcs = append(idcs, r)
		}
	}

	return idcs
}

// legalPairs returns every (d, r) pair allowed by the coupling matrix, in
// row-major order. The ordering is stable and doubles as the arm numbering
// of bandit-based schemes.
func (s *scheme) legalPairs() [][2]int {
	pairs := make([][2]int, 0, s.numDestroy*s.numRepair)
	for d := range s.coupling {
		for r := range s.coupling[d] {
			if s.coupling[d][r] {
				pairs = append(pairs, [2]int{d, r})
			}
		}
	}

	return pairs
}

// spin samples an index proportionally to weights. When idcs is nil the
// sample space is 0..len(weights)-1; otherwise only the listed indices
// participate and the returned value is one of them.
//
// Complexity: O(n) time, O(1) extra space.
func spin(rng *rand.Rand, weights []float64, idcs []int) (int, error) {
	var total float64
	if idcs == nil {
		for _, w := range weights {
			total += w
		}
	} else {
		for _, i := range idcs {
			total += weights[i]
		}
	}
	if total <= 0 {
		return 0, ErrZeroTotalWeight
	}

	u := rng.Float64() * total

	var acc float64
	if idcs == nil {
		for i, w := range weights {
			acc += w
			if u < acc {
				return i, nil
			}
		}
		// FP residue: fall back to the last index.
		return len(weights) - 1, nil
	}
	for _, i := range idcs {
		acc += weights[i]
		if u < acc {
			return i, nil
		}
	}

	return idcs[len(idcs)-1], nil
}

// validateScores checks a four-outcome score vector and returns its first
// NumOutcomes entries. Longer vectors are fine; only the first four are used.
func validateScores(scores []float64) ([core.NumOutcomes]float64, error) {
	var out [core.NumOutcomes]float64

	if len(scores) < core.NumOutcomes {
		return out, ErrScoreLength
	}
	for _, s := range scores {
		if s < 0 {
			return out, ErrNegativeScore
		}
	}
	copy(out[:], scores[:core.NumOutcomes])

	return out, nil
}
