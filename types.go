package alns

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

var (
	// ErrMissingOperators indicates a run started without at least one
	// destroy and one repair operator registered.
	ErrMissingOperators = errors.New("alns: missing destroy or repair operators")
	// ErrNilInitialState indicates a run started from a nil initial state.
	ErrNilInitialState = errors.New("alns: nil initial state")
)

// Operator is a destroy or repair operator: a function from a solution
// state to a new solution state. Operators never mutate their input; they
// draw randomness exclusively from the passed-in rng. The same signature
// serves the on-best callback. Errors propagate unmodified out of Iterate.
type Operator func(state core.State, rng *rand.Rand) (core.State, error)

// SelectionScheme chooses the (destroy, repair) operator pair for each
// iteration and learns from the iteration's outcome. Implementations live
// in the selection package; any type with these two methods qualifies.
type SelectionScheme interface {
	// Select returns operator indices into the engine's registries; the
	// pair always satisfies the scheme's coupling matrix.
	Select(rng *rand.Rand, best, curr core.State) (dIdx, rIdx int, err error)

	// Update feeds the applied pair's outcome back into the scheme.
	Update(candidate core.State, dIdx, rIdx int, outcome core.Outcome) error
}

// AcceptanceCriterion decides whether a candidate replaces the current
// solution. Implementations live in the accept package.
type AcceptanceCriterion interface {
	Accept(rng *rand.Rand, best, curr, candidate core.State) (bool, error)
}

// StoppingCriterion decides when the iterate loop terminates; it is queried
// exactly once per iteration, after acceptance. Implementations live in the
// stop package.
type StoppingCriterion interface {
	ShouldStop(best, curr core.State) bool
}
