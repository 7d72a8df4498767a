package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// MovingAverageThreshold accepts a candidate when its objective is at most
//
//	recentBest + eta·(recentAvg − recentBest),
//
// where recentBest and recentAvg are the minimum and mean of the gamma most
// recently observed candidate objectives (FIFO eviction once the window is
// full). Larger eta accepts more candidates; eta must lie in [0, 1] and
// gamma must be positive.
type MovingAverageThreshold struct {
	eta   float64
	gamma int

	// Ring buffer of at most gamma observed candidate objectives.
	hist []float64
	head int
	size int
}

var _ Criterion = (*MovingAverageThreshold)(nil)

// NewMovingAverageThreshold builds a moving-average threshold criterion
// with window size gamma and acceptance margin eta.
func NewMovingAverageThreshold(eta float64, gamma int) (*MovingAverageThreshold, error) {
	if eta < 0 || eta > 1 {
		return nil, ErrEtaOutOfRange
	}
	if gamma <= 0 {
		return nil, ErrNonPositiveGamma
	}

	return &MovingAverageThreshold{eta: eta, gamma: gamma, hist: make([]float64, 0, gamma)}, nil
}

// Eta returns the acceptance margin.
func (c *MovingAverageThreshold) Eta() float64 { return c.eta }

// Gamma returns the window size.
func (c *MovingAverageThreshold) Gamma() int { return c.gamma }

// History returns the observed candidate objectives in the window, oldest
// first.
func (c *MovingAverageThreshold) History() []float64 {
	out := make([]float64, 0, c.size)
	for i := 0; i < c.size; i++ {
		out = append(out, c.hist[(c.head+i)%c.gamma])
	}

	return out
}

// Accept records the candidate objective into the window, recomputes the
// threshold from the window's best and average, and compares.
func (c *MovingAverageThreshold) Accept(_ *rand.Rand, _, _, candidate core.State) (bool, error) {
	c.push(candidate.Objective())

	recentBest := c.hist[0]
	var sum float64
	for i := 0; i < c.size; i++ {
		v := c.hist[i]
		sum += v
		if v < recentBest {
			recentBest = v
		}
	}
	recentAvg := sum / float64(c.size)

	threshold := recentBest + c.eta*(recentAvg-recentBest)

	return candidate.Objective() <= threshold, nil
}

// push appends v, evicting the oldest entry once the window is full.
func (c *MovingAverageThreshold) push(v float64) {
	if c.size < c.gamma {
		c.hist = append(c.hist, 0)
		c.hist[(c.head+c.size)%c.gamma] = v
		c.size++

		return
	}

	c.hist[c.head] = v
	c.head = (c.head + 1) % c.gamma
}
