// Package alns - the search engine: operator registries, the iterate loop,
// and candidate evaluation.
//
// The loop per iteration: ask the selection scheme for a (destroy, repair)
// pair, apply both operators, query the acceptance criterion, classify the
// candidate as BEST / BETTER / ACCEPT / REJECT, feed the outcome back into
// the selection scheme and the statistics, and finally consult the stopping
// criterion. Execution is strictly sequential; the engine holds references
// to exactly two live states (best, current) plus the transient candidate,
// and never mutates a state in place.
package alns

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/alns/core"
)

// namedOperator pairs a registered operator with its registry name.
type namedOperator struct {
	name string
	op   Operator
}

// ALNS implements the adaptive large neighbourhood search algorithm for
// minimisation problems, as described by Pisinger and Røpke (2010). Destroy
// and repair operators are registered up front; Iterate then drives the
// search with pluggable selection, acceptance and stopping behavior.
//
// An ALNS instance is not safe for concurrent use: the run is
// single-threaded by design, and its single rng must not be shared.
type ALNS struct {
	rng *rand.Rand
	log *slog.Logger

	destroyOps []namedOperator
	repairOps  []namedOperator
	dIndex     map[string]int
	rIndex     map[string]int

	// Optional callback used to improve a new best solution further,
	// via e.g. local search.
	onBest Operator
}

// New returns an engine drawing randomness from rng. A nil rng falls back
// to a deterministic default stream, so runs stay reproducible.
func New(rng *rand.Rand, opts ...Option) *ALNS {
	a := &ALNS{
		rng:    rngOrDefault(rng),
		log:    discardLogger(),
		dIndex: make(map[string]int),
		rIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// AddDestroyOperator registers a destroy operator under name. Registering
// an existing name replaces the previous operator and logs a warning;
// insertion order is preserved either way.
func (a *ALNS) AddDestroyOperator(name string, op Operator) {
	if idx, ok := a.dIndex[name]; ok {
		a.log.Warn("replacing destroy operator", "name", name)
		a.destroyOps[idx].op = op

		return
	}

	a.dIndex[name] = len(a.destroyOps)
	a.destroyOps = append(a.destroyOps, namedOperator{name: name, op: op})
}

// AddRepairOperator registers a repair operator under name. Registering an
// existing name replaces the previous operator and logs a warning;
// insertion order is preserved either way.
func (a *ALNS) AddRepairOperator(name string, op Operator) {
	if idx, ok := a.rIndex[name]; ok {
		a.log.Warn("replacing repair operator", "name", name)
		a.repairOps[idx].op = op

		return
	}

	a.rIndex[name] = len(a.repairOps)
	a.repairOps = append(a.repairOps, namedOperator{name: name, op: op})
}

// DestroyOperators returns the registered destroy operator names in
// insertion order; their positions are the indices selection schemes see.
func (a *ALNS) DestroyOperators() []string {
	return operatorNames(a.destroyOps)
}

// RepairOperators returns the registered repair operator names in insertion
// order.
func (a *ALNS) RepairOperators() []string {
	return operatorNames(a.repairOps)
}

func operatorNames(ops []namedOperator) []string {
	names := make([]string, len(ops))
	for i, o := range ops {
		names[i] = o.name
	}

	return names
}

// OnBest sets a callback invoked whenever a new global best is found; its
// return value becomes the new best and current state. Setting a second
// callback replaces the first and logs a warning.
func (a *ALNS) OnBest(callback Operator) {
	if a.onBest != nil {
		a.log.Warn("replacing on-best callback")
	}
	a.onBest = callback
}

// Iterate runs the search from initial until stopping fires, using the
// registered operators, the given selection scheme and the given acceptance
// criterion. It returns the best state observed and the run statistics.
//
// Errors from operators, the callback, or scheme internals abort the run
// and propagate unmodified; no retry, and no partial Result is returned.
func (a *ALNS) Iterate(initial core.State, scheme SelectionScheme, criterion AcceptanceCriterion, stopping StoppingCriterion) (Result, error) {
	if len(a.destroyOps) == 0 || len(a.repairOps) == 0 {
		return Result{}, ErrMissingOperators
	}
	if initial == nil {
		return Result{}, ErrNilInitialState
	}

	best, curr := initial, initial
	a.log.Debug("starting search", "objective", initial.Objective())

	stats := NewStatistics()
	stats.CollectObjective(initial.Objective())
	stats.CollectRuntime(time.Now())

	for !stopping.ShouldStop(best, curr) {
		dIdx, rIdx, err := scheme.Select(a.rng, best, curr)
		if err != nil {
			return Result{}, err
		}

		d, r := a.destroyOps[dIdx], a.repairOps[rIdx]
		a.log.Debug("selected operators", "destroy", d.name, "repair", r.name)

		destroyed, err := d.op(curr, a.rng)
		if err != nil {
			return Result{}, err
		}
		candidate, err := r.op(destroyed, a.rng)
		if err != nil {
			return Result{}, err
		}

		var outcome core.Outcome
		best, curr, outcome, err = a.evalCandidate(criterion, best, curr, candidate)
		if err != nil {
			return Result{}, err
		}

		if err = scheme.Update(candidate, dIdx, rIdx, outcome); err != nil {
			return Result{}, err
		}

		stats.CollectObjective(curr.Objective())
		stats.CollectDestroyOperator(d.name, outcome)
		stats.CollectRepairOperator(r.name, outcome)
		stats.CollectRuntime(time.Now())
	}

	a.log.Debug("finished iterating", "runtime", stats.TotalRuntime())

	return Result{best: best, stats: stats}, nil
}

// evalCandidate compares the candidate against the best and current
// solutions. The acceptance criterion is always consulted first, so its
// internal schedule advances exactly once per iteration; a new global best
// then overrides whatever it decided. When the on-best callback is set, its
// result replaces the candidate before it becomes the new best and current
// state.
func (a *ALNS) evalCandidate(criterion AcceptanceCriterion, best, curr, candidate core.State) (core.State, core.State, core.Outcome, error) {
	outcome := core.Rejected

	accepted, err := criterion.Accept(a.rng, best, curr, candidate)
	if err != nil {
		return best, curr, outcome, err
	}
	if accepted {
		outcome = core.Accepted
		if candidate.Objective() < curr.Objective() {
			outcome = core.Better
		}
		curr = candidate
	}

	if candidate.Objective() < best.Objective() {
		a.log.Info("new best", "objective", candidate.Objective())

		if a.onBest != nil {
			candidate, err = a.onBest(candidate, a.rng)
			if err != nil {
				return best, curr, outcome, err
			}
		}

		return candidate, candidate, core.Best, nil
	}

	return best, curr, outcome, nil
}
