package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// SegmentedRouletteWheel extends RouletteWheel by fixing the operator
// weights for a number of iterations (the segment length). Within a
// segment, raw outcome scores accumulate into separate per-operator
// counters; at each segment boundary the weights absorb the accumulated
// counters through the usual convex combination
//
//	w[i] = decay·w[i] + (1−decay)·seg[i]
//
// after which the counters reset to zero and a new segment begins. Holding
// weights fixed per segment lets different operator sets dominate in
// different neighbourhoods of the search.
type SegmentedRouletteWheel struct {
	RouletteWheel

	segLength int
	iter      int
	dSeg      []float64
	rSeg      []float64
}

var _ Scheme = (*SegmentedRouletteWheel)(nil)

// NewSegmentedRouletteWheel builds a segmented roulette-wheel scheme.
// Parameters are as for NewRouletteWheel; segLength must be at least one.
func NewSegmentedRouletteWheel(scores []float64, decay float64, segLength, numDestroy, numRepair int, coupling [][]bool) (*SegmentedRouletteWheel, error) {
	rw, err := NewRouletteWheel(scores, decay, numDestroy, numRepair, coupling)
	if err != nil {
		return nil, err
	}

	if segLength < 1 {
		return nil, ErrSegmentLength
	}

	return &SegmentedRouletteWheel{
		RouletteWheel: *rw,
		segLength:     segLength,
		dSeg:          make([]float64, numDestroy),
		rSeg:          make([]float64, numRepair),
	}, nil
}

// SegLength returns the configured segment length.
func (srw *SegmentedRouletteWheel) SegLength() int { return srw.segLength }

// Select advances the iteration counter, absorbs the segment counters into
// the weights at each segment boundary, then samples like RouletteWheel.
func (srw *SegmentedRouletteWheel) Select(rng *rand.Rand, best, curr core.State) (int, int, error) {
	srw.iter++

	if srw.iter%srw.segLength == 0 {
		for i := range srw.dWeights {
			srw.dWeights[i] = clampFloor(srw.decay*srw.dWeights[i] + (1-srw.decay)*srw.dSeg[i])
			srw.dSeg[i] = 0
		}
		for i := range srw.rWeights {
			srw.rWeights[i] = clampFloor(srw.decay*srw.rWeights[i] + (1-srw.decay)*srw.rSeg[i])
			srw.rSeg[i] = 0
		}
	}

	return srw.RouletteWheel.Select(rng, best, curr)
}

// Update accumulates the outcome score into the segment counters of the
// applied operators; the weights themselves change only at boundaries.
func (srw *SegmentedRouletteWheel) Update(_ core.State, dIdx, rIdx int, outcome core.Outcome) error {
	srw.dSeg[dIdx] += srw.scores[outcome]
	srw.rSeg[rIdx] += srw.scores[outcome]

	return nil
}
