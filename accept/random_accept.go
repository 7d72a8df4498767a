package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// RandomAccept always accepts improving candidates, and worsening ones with
// probability P, which decays towards an end probability every call:
//
//	P ← max(endProb, P − step)     (linear)
//	P ← max(endProb, step · P)     (exponential)
//
// starting from startProb. Probabilities must satisfy
// 0 ≤ endProb ≤ startProb ≤ 1.
type RandomAccept struct {
	start  float64
	end    float64
	step   float64
	method Method

	prob float64
}

var _ Criterion = (*RandomAccept)(nil)

// NewRandomAccept builds a random-accept criterion. The step must be
// non-negative and, for the exponential schedule, at most one.
func NewRandomAccept(startProb, endProb, step float64, method Method) (*RandomAccept, error) {
	if startProb < 0 || startProb > 1 || endProb < 0 || endProb > startProb {
		return nil, ErrInvalidProbability
	}
	if err := validateSchedule(startProb, endProb, step, method); err != nil {
		return nil, err
	}

	return &RandomAccept{
		start:  startProb,
		end:    endProb,
		step:   step,
		method: method,
		prob:   startProb,
	}, nil
}

// StartProb returns the configured initial acceptance probability.
func (ra *RandomAccept) StartProb() float64 { return ra.start }

// EndProb returns the configured probability floor.
func (ra *RandomAccept) EndProb() float64 { return ra.end }

// Prob returns the current worsening-acceptance probability.
func (ra *RandomAccept) Prob() float64 { return ra.prob }

// Accept takes improvements unconditionally, draws against the current
// probability otherwise, and decays the probability either way.
func (ra *RandomAccept) Accept(rng *rand.Rand, _, curr, candidate core.State) (bool, error) {
	res := candidate.Objective() < curr.Objective()

	if !res {
		res = rng.Float64() < ra.prob
	}

	ra.prob = math.Max(ra.end, advance(ra.prob, ra.step, ra.method))

	return res, nil
}
