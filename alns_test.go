package alns_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/accept"
	"github.com/katalvlaran/alns/core"
	"github.com/katalvlaran/alns/selection"
	"github.com/katalvlaran/alns/stop"
)

// objState is a minimal solution state with a fixed objective.
type objState float64

func (s objState) Objective() float64 { return float64(s) }

// identity returns the input state unchanged.
func identity(state core.State, _ *rand.Rand) (core.State, error) { return state, nil }

// constOp returns a fixed state regardless of input.
func constOp(out core.State) alns.Operator {
	return func(core.State, *rand.Rand) (core.State, error) { return out, nil }
}

// mustIterations builds a MaxIterations criterion or fails the test.
func mustIterations(t *testing.T, n int) *stop.MaxIterations {
	t.Helper()
	c, err := stop.NewMaxIterations(n)
	require.NoError(t, err)

	return c
}

// mustRandomSelect builds a uniform scheme over a 1x1 registry.
func mustRandomSelect(t *testing.T) *selection.RandomSelect {
	t.Helper()
	s, err := selection.NewRandomSelect(1, 1, nil)
	require.NoError(t, err)

	return s
}

func TestIterate_MissingOperators(t *testing.T) {
	engine := alns.New(nil)
	_, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 1))
	assert.ErrorIs(t, err, alns.ErrMissingOperators)

	engine.AddDestroyOperator("noop", identity)
	_, err = engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 1))
	assert.ErrorIs(t, err, alns.ErrMissingOperators, "a repair operator is still missing")
}

func TestIterate_NilInitialState(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("noop", identity)
	engine.AddRepairOperator("noop", identity)

	_, err := engine.Iterate(nil, mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 1))
	assert.ErrorIs(t, err, alns.ErrNilInitialState)
}

// TestIterate_GreedyConvergence: a destroy operator that zeroes the solution
// and an identity repair must reach the zero objective under hill climbing.
func TestIterate_GreedyConvergence(t *testing.T) {
	engine := alns.New(rand.New(rand.NewSource(1)))
	engine.AddDestroyOperator("zero", constOp(objState(0)))
	engine.AddRepairOperator("noop", identity)

	res, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 100))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.BestState().Objective())

	// Initial objective plus one entry per iteration.
	assert.Len(t, res.Statistics().Objectives(), 101)
	assert.Equal(t, 1.0, res.Statistics().Objectives()[0])
}

// TestIterate_Determinism: two runs from the same seed produce identical
// objective traces and the same best solution.
func TestIterate_Determinism(t *testing.T) {
	run := func() alns.Result {
		engine := alns.New(rand.New(rand.NewSource(7)))
		engine.AddDestroyOperator("perturb", func(state core.State, rng *rand.Rand) (core.State, error) {
			return objState(state.Objective() + rng.Float64() - 0.5), nil
		})
		engine.AddRepairOperator("noop", identity)

		sa, err := accept.NewSimulatedAnnealing(10, 0.1, 0.95, accept.Exponential)
		require.NoError(t, err)
		rw, err := selection.NewRouletteWheel([]float64{5, 2, 1, 0.5}, 0.8, 1, 1, nil)
		require.NoError(t, err)

		res, err := engine.Iterate(objState(10), rw, sa, mustIterations(t, 200))
		require.NoError(t, err)

		return res
	}

	first, second := run(), run()
	assert.Equal(t, first.BestState().Objective(), second.BestState().Objective())
	assert.Equal(t, first.Statistics().Objectives(), second.Statistics().Objectives())
}

// scriptedRepair replays a fixed candidate sequence, one per call.
type scriptedRepair struct {
	cands []float64
	next  int
}

func (s *scriptedRepair) apply(core.State, *rand.Rand) (core.State, error) {
	c := s.cands[s.next]
	s.next++

	return objState(c), nil
}

// recordingScheme always picks pair (0,0) and records the outcomes it is
// fed.
type recordingScheme struct {
	outcomes []core.Outcome
}

func (r *recordingScheme) Select(*rand.Rand, core.State, core.State) (int, int, error) {
	return 0, 0, nil
}

func (r *recordingScheme) Update(_ core.State, _, _ int, outcome core.Outcome) error {
	r.outcomes = append(r.outcomes, outcome)

	return nil
}

// scriptedCriterion replays fixed accept decisions.
type scriptedCriterion struct {
	answers []bool
	next    int
}

func (s *scriptedCriterion) Accept(*rand.Rand, core.State, core.State, core.State) (bool, error) {
	a := s.answers[s.next]
	s.next++

	return a, nil
}

// TestIterate_OutcomeClassification walks one candidate through each of the
// four outcome classes and checks both the classification fed to the scheme
// and the resulting current-objective trace.
func TestIterate_OutcomeClassification(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("noop", identity)

	repair := &scriptedRepair{cands: []float64{5, 7, 6, 9}}
	engine.AddRepairOperator("scripted", repair.apply)

	scheme := &recordingScheme{}
	criterion := &scriptedCriterion{answers: []bool{true, true, true, false}}

	res, err := engine.Iterate(objState(10), scheme, criterion, mustIterations(t, 4))
	require.NoError(t, err)

	// 5 beats the best of 10, 7 is accepted but worse than 5, 6 improves the
	// current 7 without beating the best, 9 is refused outright.
	want := []core.Outcome{core.Best, core.Accepted, core.Better, core.Rejected}
	assert.Equal(t, want, scheme.outcomes)

	assert.Equal(t, []float64{10, 5, 7, 6, 6}, res.Statistics().Objectives())
	assert.Equal(t, 5.0, res.BestState().Objective())
}

// TestIterate_OnBestCallback: the callback's result replaces a new best
// before it is installed as best and current.
func TestIterate_OnBestCallback(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("noop", identity)
	engine.AddRepairOperator("improve", constOp(objState(4)))

	engine.OnBest(func(state core.State, _ *rand.Rand) (core.State, error) {
		return objState(state.Objective() / 2), nil
	})

	res, err := engine.Iterate(objState(10), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.BestState().Objective(), "callback polished the candidate of 4")
}

func TestAddOperators_ReplaceKeepsOrder(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("first", identity)
	engine.AddDestroyOperator("second", identity)
	engine.AddDestroyOperator("first", constOp(objState(0)))

	assert.Equal(t, []string{"first", "second"}, engine.DestroyOperators())

	engine.AddRepairOperator("mend", identity)
	assert.Equal(t, []string{"mend"}, engine.RepairOperators())
}

// TestIterate_ReplacedOperatorIsUsed: re-registering a name swaps in the new
// operator at the old index.
func TestIterate_ReplacedOperatorIsUsed(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("zero", constOp(objState(99)))
	engine.AddDestroyOperator("zero", constOp(objState(0)))
	engine.AddRepairOperator("noop", identity)

	res, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.BestState().Objective())
}

func TestIterate_ErrorPropagation(t *testing.T) {
	opErr := errors.New("operator failed")
	failing := func(core.State, *rand.Rand) (core.State, error) { return nil, opErr }

	t.Run("destroy", func(t *testing.T) {
		engine := alns.New(nil)
		engine.AddDestroyOperator("boom", failing)
		engine.AddRepairOperator("noop", identity)

		_, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 10))
		assert.ErrorIs(t, err, opErr)
	})

	t.Run("repair", func(t *testing.T) {
		engine := alns.New(nil)
		engine.AddDestroyOperator("noop", identity)
		engine.AddRepairOperator("boom", failing)

		_, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 10))
		assert.ErrorIs(t, err, opErr)
	})

	t.Run("callback", func(t *testing.T) {
		engine := alns.New(nil)
		engine.AddDestroyOperator("noop", identity)
		engine.AddRepairOperator("improve", constOp(objState(0)))
		engine.OnBest(failing)

		_, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 10))
		assert.ErrorIs(t, err, opErr)
	})
}

// TestIterate_OperatorCounts: every iteration contributes exactly one
// outcome count to the applied destroy and repair operators.
func TestIterate_OperatorCounts(t *testing.T) {
	engine := alns.New(nil)
	engine.AddDestroyOperator("zero", constOp(objState(0)))
	engine.AddRepairOperator("noop", identity)

	res, err := engine.Iterate(objState(1), mustRandomSelect(t), accept.NewHillClimbing(), mustIterations(t, 5))
	require.NoError(t, err)

	dCounts := res.Statistics().DestroyOperatorCounts()
	require.Contains(t, dCounts, "zero")

	var total int
	for _, n := range dCounts["zero"] {
		total += n
	}
	assert.Equal(t, 5, total)

	// The first candidate of 0 is a new best; repeats of the same objective
	// are plain hill-climbing acceptances.
	assert.Equal(t, 1, dCounts["zero"][core.Best])
	assert.Equal(t, 4, dCounts["zero"][core.Accepted])

	rCounts := res.Statistics().RepairOperatorCounts()
	require.Contains(t, rCounts, "noop")
	assert.Equal(t, dCounts["zero"], rCounts["noop"])
}
