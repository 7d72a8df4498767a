package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// LateAcceptanceHillClimbing accepts a candidate when it improves on the
// then-current solution from lookback iterations ago, held in a bounded
// ring buffer. A lookback of zero degenerates to plain hill climbing on
// strict improvement.
//
// Two optional policies refine the rule:
//
//   - greedy: additionally accept any candidate that improves the immediate
//     current solution.
//   - betterHistory: store min(current, oldest) instead of the raw current
//     objective, so the history never regresses.
type LateAcceptanceHillClimbing struct {
	lookback      int
	greedy        bool
	betterHistory bool

	// Ring buffer of size at most lookback; head is the oldest entry.
	hist []float64
	head int
	size int
}

var _ Criterion = (*LateAcceptanceHillClimbing)(nil)

// NewLateAcceptanceHillClimbing builds a late-acceptance hill-climbing
// criterion comparing against the current objective from lookback
// iterations ago. lookback must be non-negative.
func NewLateAcceptanceHillClimbing(lookback int, greedy, betterHistory bool) (*LateAcceptanceHillClimbing, error) {
	if lookback < 0 {
		return nil, ErrNegativeLookback
	}

	return &LateAcceptanceHillClimbing{
		lookback:      lookback,
		greedy:        greedy,
		betterHistory: betterHistory,
		hist:          make([]float64, 0, lookback),
	}, nil
}

// Lookback returns the configured lookback period.
func (c *LateAcceptanceHillClimbing) Lookback() int { return c.lookback }

// Accept compares the candidate against the stored objective from lookback
// iterations ago and records the current objective into the history.
func (c *LateAcceptanceHillClimbing) Accept(_ *rand.Rand, _, curr, candidate core.State) (bool, error) {
	if c.lookback == 0 {
		// Zero-capacity history: reverts to hill climbing on improvement.
		return candidate.Objective() < curr.Objective(), nil
	}

	if c.size == 0 {
		c.push(curr.Objective())

		return candidate.Objective() < curr.Objective(), nil
	}

	oldest := c.hist[c.head]
	res := candidate.Objective() < oldest

	if !res && c.greedy {
		res = candidate.Objective() < curr.Objective()
	}

	stored := curr.Objective()
	if c.betterHistory && oldest < stored {
		stored = oldest
	}
	c.push(stored)

	return res, nil
}

// push appends v, evicting the oldest entry once the buffer is full.
func (c *LateAcceptanceHillClimbing) push(v float64) {
	if c.size < c.lookback {
		c.hist = append(c.hist, 0)
		c.hist[(c.head+c.size)%c.lookback] = v
		c.size++

		return
	}

	c.hist[c.head] = v
	c.head = (c.head + 1) % c.lookback
}
