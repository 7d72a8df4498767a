package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// RouletteWheel selects operators proportionally to per-operator weights
// and updates the weights of the applied pair as a convex combination of
// the running weight and the outcome score:
//
//	w[i] = decay·w[i] + (1−decay)·score[outcome]
//
// with decay ∈ [0, 1]. decay = 1 ignores new scores entirely; decay = 0
// discards all history every iteration. All weights start at one and are
// clamped at WeightFloor after every update, so both weight vectors remain
// strictly positive for the lifetime of the scheme.
type RouletteWheel struct {
	scheme

	scores   [core.NumOutcomes]float64
	decay    float64
	dWeights []float64
	rWeights []float64
}

var _ Scheme = (*RouletteWheel)(nil)

// NewRouletteWheel builds a roulette-wheel scheme.
//
// scores must hold at least four non-negative entries, one per outcome
// (Best, Better, Accepted, Rejected in that order); extra entries are
// ignored. decay must lie in [0, 1]. A nil coupling permits every pair.
func NewRouletteWheel(scores []float64, decay float64, numDestroy, numRepair int, coupling [][]bool) (*RouletteWheel, error) {
	base, err := newScheme(numDestroy, numRepair, coupling)
	if err != nil {
		return nil, err
	}

	sc, err := validateScores(scores)
	if err != nil {
		return nil, err
	}

	if decay < 0 || decay > 1 {
		return nil, ErrDecayOutOfRange
	}

	rw := &RouletteWheel{
		scheme:   base,
		scores:   sc,
		decay:    decay,
		dWeights: make([]float64, numDestroy),
		rWeights: make([]float64, numRepair),
	}
	for i := range rw.dWeights {
		rw.dWeights[i] = 1
	}
	for i := range rw.rWeights {
		rw.rWeights[i] = 1
	}

	return rw, nil
}

// Decay returns the operator decay parameter.
func (rw *RouletteWheel) Decay() float64 { return rw.decay }

// Scores returns the four outcome scores in outcome order.
func (rw *RouletteWheel) Scores() [core.NumOutcomes]float64 { return rw.scores }

// DestroyWeights returns a copy of the current destroy-operator weights.
func (rw *RouletteWheel) DestroyWeights() []float64 {
	out := make([]float64, len(rw.dWeights))
	copy(out, rw.dWeights)

	return out
}

// RepairWeights returns a copy of the current repair-operator weights.
func (rw *RouletteWheel) RepairWeights() []float64 {
	out := make([]float64, len(rw.rWeights))
	copy(out, rw.rWeights)

	return out
}

// Select samples a destroy operator proportionally to the destroy weights,
// then a repair operator proportionally to the coupling-restricted slice of
// the repair weights. Operators that frequently improve the solution carry
// higher weights and are therefore drawn more often.
//
// Complexity: O(numDestroy + numRepair) per call.
func (rw *RouletteWheel) Select(rng *rand.Rand, _, _ core.State) (int, int, error) {
	dIdx, err := spin(rng, rw.dWeights, nil)
	if err != nil {
		return 0, 0, err
	}

	rIdx, err := spin(rng, rw.rWeights, rw.coupledRepairs(dIdx))
	if err != nil {
		return 0, 0, err
	}

	return dIdx, rIdx, nil
}

// Update applies the convex-combination rule to the weights of the applied
// destroy and repair operators, then clamps both at WeightFloor.
func (rw *RouletteWheel) Update(_ core.State, dIdx, rIdx int, outcome core.Outcome) error {
	rw.dWeights[dIdx] = clampFloor(rw.decay*rw.dWeights[dIdx] + (1-rw.decay)*rw.scores[outcome])
	rw.rWeights[rIdx] = clampFloor(rw.decay*rw.rWeights[rIdx] + (1-rw.decay)*rw.scores[outcome])

	return nil
}

// clampFloor keeps a weight at or above WeightFloor.
func clampFloor(w float64) float64 {
	if w < WeightFloor {
		return WeightFloor
	}

	return w
}
