package stop

import (
	"errors"
	"time"

	"github.com/katalvlaran/alns/core"
)

var (
	// ErrNegativeIterations indicates a negative maximum iteration count.
	ErrNegativeIterations = errors.New("stop: negative max iterations not understood")
	// ErrNegativeRuntime indicates a negative runtime budget.
	ErrNegativeRuntime = errors.New("stop: negative max runtime not understood")
	// ErrNoCriteria indicates a composite built from zero criteria.
	ErrNoCriteria = errors.New("stop: need at least one criterion to compose")
)

// Criterion is the contract every stopping criterion satisfies. ShouldStop
// is called exactly once per iteration; criteria may count calls.
type Criterion interface {
	ShouldStop(best, curr core.State) bool
}

// MaxIterations stops after a fixed number of iterations.
type MaxIterations struct {
	max  int
	iter int
}

var _ Criterion = (*MaxIterations)(nil)

// NewMaxIterations builds an iteration-count criterion; maxIterations must
// be non-negative.
func NewMaxIterations(maxIterations int) (*MaxIterations, error) {
	if maxIterations < 0 {
		return nil, ErrNegativeIterations
	}

	return &MaxIterations{max: maxIterations}, nil
}

// MaxIterations returns the configured iteration budget.
func (c *MaxIterations) MaxIterations() int { return c.max }

// ShouldStop returns false for exactly the first maxIterations calls and
// true thereafter.
func (c *MaxIterations) ShouldStop(_, _ core.State) bool {
	c.iter++

	return c.iter > c.max
}

// MaxRuntime stops once a wall-clock budget has elapsed. The clock starts
// on the first ShouldStop call, not at construction, so setup time does not
// count against the budget.
type MaxRuntime struct {
	max   time.Duration
	start time.Time
}

var _ Criterion = (*MaxRuntime)(nil)

// NewMaxRuntime builds a wall-clock criterion; maxRuntime must be
// non-negative.
func NewMaxRuntime(maxRuntime time.Duration) (*MaxRuntime, error) {
	if maxRuntime < 0 {
		return nil, ErrNegativeRuntime
	}

	return &MaxRuntime{max: maxRuntime}, nil
}

// MaxRuntime returns the configured wall-clock budget.
func (c *MaxRuntime) MaxRuntime() time.Duration { return c.max }

// ShouldStop lazily stamps the start time, then reports whether the budget
// is spent.
func (c *MaxRuntime) ShouldStop(_, _ core.State) bool {
	if c.start.IsZero() {
		c.start = time.Now()
	}

	return time.Since(c.start) > c.max
}

// NoImprovement stops once the best objective has not strictly improved for
// a fixed number of iterations. With a maximum of zero it stops on every
// call.
type NoImprovement struct {
	max     int
	counter int
	target  float64
	primed  bool
}

var _ Criterion = (*NoImprovement)(nil)

// NewNoImprovement builds a stagnation criterion; maxIterations must be
// non-negative.
func NewNoImprovement(maxIterations int) (*NoImprovement, error) {
	if maxIterations < 0 {
		return nil, ErrNegativeIterations
	}

	return &NoImprovement{max: maxIterations}, nil
}

// MaxIterations returns the configured stagnation budget.
func (c *NoImprovement) MaxIterations() int { return c.max }

// ShouldStop resets the stagnation counter whenever the best objective
// strictly improves, increments it otherwise, and stops once the counter
// reaches the maximum.
func (c *NoImprovement) ShouldStop(best, _ core.State) bool {
	if !c.primed || best.Objective() < c.target {
		c.primed = true
		c.target = best.Objective()
		c.counter = 0
	} else {
		c.counter++
	}

	return c.counter >= c.max
}

// Any composes criteria with logical OR: the search stops as soon as any of
// them fires. Every criterion is queried on every call, so stateful
// criteria keep counting even after another one has fired first.
type Any struct {
	criteria []Criterion
}

var _ Criterion = (*Any)(nil)

// NewAny composes one or more criteria.
func NewAny(criteria ...Criterion) (*Any, error) {
	if len(criteria) == 0 {
		return nil, ErrNoCriteria
	}

	return &Any{criteria: criteria}, nil
}

// ShouldStop queries all composed criteria and returns true if any fired.
func (c *Any) ShouldStop(best, curr core.State) bool {
	var stop bool
	for _, crit := range c.criteria {
		if crit.ShouldStop(best, curr) {
			stop = true
		}
	}

	return stop
}
