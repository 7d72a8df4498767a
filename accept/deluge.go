package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// GreatDeluge accepts candidates whose objective lies below a threshold
// (the "water level"). On the first call the threshold is seeded as
// alpha·f(best); every call then moves it towards the candidate:
//
//	threshold ← threshold − beta·(threshold − f(candidate)).
//
// alpha must exceed one and beta must lie in (0, 1).
type GreatDeluge struct {
	alpha float64
	beta  float64

	threshold   float64
	initialized bool
}

var _ Criterion = (*GreatDeluge)(nil)

// NewGreatDeluge builds a great-deluge criterion.
func NewGreatDeluge(alpha, beta float64) (*GreatDeluge, error) {
	if alpha <= 1 || beta <= 0 || beta >= 1 {
		return nil, ErrDelugeParams
	}

	return &GreatDeluge{alpha: alpha, beta: beta}, nil
}

// Alpha returns the initial-threshold factor.
func (gd *GreatDeluge) Alpha() float64 { return gd.alpha }

// Beta returns the threshold update factor.
func (gd *GreatDeluge) Beta() float64 { return gd.beta }

// Accept compares the candidate against the water level and lowers the
// level towards the candidate.
func (gd *GreatDeluge) Accept(_ *rand.Rand, best, _, candidate core.State) (bool, error) {
	if !gd.initialized {
		gd.threshold = gd.alpha * best.Objective()
		gd.initialized = true
	}

	diff := gd.threshold - candidate.Objective()
	res := diff > 0

	gd.threshold -= gd.beta * diff

	return res, nil
}

// NonLinearGreatDeluge is the great-deluge variant of Landa-Silva and Obit
// (2008): the threshold follows a non-linear update driven by the relative
// gap between the candidate and the threshold, and candidates improving the
// current solution are always accepted. The initial solution must have a
// non-zero objective, or the relative gap is undefined.
type NonLinearGreatDeluge struct {
	alpha float64
	beta  float64
	gamma float64
	delta float64

	threshold   float64
	initialized bool
}

var _ Criterion = (*NonLinearGreatDeluge)(nil)

// NewNonLinearGreatDeluge builds a non-linear great-deluge criterion.
// alpha and beta are constrained as for NewGreatDeluge; gamma and delta
// must be strictly positive.
func NewNonLinearGreatDeluge(alpha, beta, gamma, delta float64) (*NonLinearGreatDeluge, error) {
	if alpha <= 1 || beta <= 0 || beta >= 1 {
		return nil, ErrDelugeParams
	}
	if gamma <= 0 || delta <= 0 {
		return nil, ErrNonLinearParams
	}

	return &NonLinearGreatDeluge{alpha: alpha, beta: beta, gamma: gamma, delta: delta}, nil
}

// Gamma returns the linear-increase factor.
func (gd *NonLinearGreatDeluge) Gamma() float64 { return gd.gamma }

// Delta returns the exponential-decrease factor.
func (gd *NonLinearGreatDeluge) Delta() float64 { return gd.delta }

// Accept applies the non-linear water-level rule. It fails with
// ErrZeroInitialObjective when the threshold would be seeded from a
// zero-valued best solution.
func (gd *NonLinearGreatDeluge) Accept(_ *rand.Rand, best, curr, candidate core.State) (bool, error) {
	if !gd.initialized {
		if best.Objective() == 0 {
			return false, ErrZeroInitialObjective
		}
		gd.threshold = gd.alpha * best.Objective()
		gd.initialized = true
	}

	res := candidate.Objective() < gd.threshold
	if !res {
		// Improving candidates are accepted regardless of the water level.
		res = candidate.Objective() < curr.Objective()
	}

	gd.threshold = gd.nextThreshold(best, candidate)

	return res, nil
}

// nextThreshold computes the new water level. When the relative gap between
// candidate and threshold falls below beta, the threshold increases
// linearly (gamma); otherwise it decreases exponentially (delta).
func (gd *NonLinearGreatDeluge) nextThreshold(best, candidate core.State) float64 {
	relGap := (gd.threshold - candidate.Objective()) / gd.threshold

	if relGap < gd.beta {
		return gd.gamma*math.Abs(candidate.Objective()-gd.threshold) + gd.threshold
	}

	return gd.threshold*math.Exp(-gd.delta*best.Objective()) + best.Objective()
}
