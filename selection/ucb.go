package selection

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// AlphaUCB is the α-UCB (upper confidence bound) bandit scheme adapted from
// Hendel (2022). Each legal (destroy, repair) pair is an arm. In iteration
// t the scheme plays the arm maximising
//
//	r̄(a) + sqrt(α·ln(1+t) / (T(a)+1)),
//
// where r̄(a) is the arm's average reward and T(a) its pull count. Average
// rewards start at one (optimistic initialisation), so every legal arm is
// explored before exploitation settles in. Larger α widens the confidence
// term and forces more exploration; α must lie in [0, 1].
type AlphaUCB struct {
	scheme

	scores     [core.NumOutcomes]float64
	alpha      float64
	avgRewards [][]float64
	pulls      [][]int
	iter       int
}

var _ Scheme = (*AlphaUCB)(nil)

// NewAlphaUCB builds an α-UCB scheme.
//
// scores must hold at least four non-negative entries, one per outcome;
// they should be 'reasonable' with respect to the optimistic initial
// average reward of one. A nil coupling permits every pair.
func NewAlphaUCB(scores []float64, alpha float64, numDestroy, numRepair int, coupling [][]bool) (*AlphaUCB, error) {
	base, err := newScheme(numDestroy, numRepair, coupling)
	if err != nil {
		return nil, err
	}

	sc, err := validateScores(scores)
	if err != nil {
		return nil, err
	}

	if alpha < 0 || alpha > 1 {
		return nil, ErrAlphaOutOfRange
	}

	ucb := &AlphaUCB{
		scheme:     base,
		scores:     sc,
		alpha:      alpha,
		avgRewards: make([][]float64, numDestroy),
		pulls:      make([][]int, numDestroy),
	}
	for d := 0; d < numDestroy; d++ {
		ucb.avgRewards[d] = make([]float64, numRepair)
		ucb.pulls[d] = make([]int, numRepair)
		for r := 0; r < numRepair; r++ {
			ucb.avgRewards[d][r] = 1
		}
	}

	return ucb, nil
}

// Alpha returns the exploration parameter.
func (u *AlphaUCB) Alpha() float64 { return u.alpha }

// Select returns the legal pair maximising average reward plus exploration
// bonus. Ties resolve to the first maximiser in row-major order, so the
// choice is deterministic and the rng goes unused.
//
// Complexity: O(numDestroy · numRepair) per call.
func (u *AlphaUCB) Select(_ *rand.Rand, _, _ core.State) (int, int, error) {
	bonusNum := u.alpha * math.Log(1+float64(u.iter))

	bestD, bestR := -1, 0
	bestVal := math.Inf(-1)
	for d := 0; d < u.numDestroy; d++ {
		for r := 0; r < u.numRepair; r++ {
			if !u.coupling[d][r] {
				continue
			}
			val := u.avgRewards[d][r] + math.Sqrt(bonusNum/float64(u.pulls[d][r]+1))
			if val > bestVal {
				bestD, bestR, bestVal = d, r, val
			}
		}
	}

	return bestD, bestR, nil
}

// Update folds the outcome's reward into the arm's running mean:
//
//	r̄(a) ← (T(a)·r̄(a) + score[outcome]) / (T(a) + 1),
//
// then increments the pull count and the global iteration counter.
func (u *AlphaUCB) Update(_ core.State, dIdx, rIdx int, outcome core.Outcome) error {
	t := float64(u.pulls[dIdx][rIdx])
	u.avgRewards[dIdx][rIdx] = (t*u.avgRewards[dIdx][rIdx] + u.scores[outcome]) / (t + 1)
	u.pulls[dIdx][rIdx]++
	u.iter++

	return nil
}
