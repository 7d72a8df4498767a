package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// Bandit is the narrow contract an external multi-armed-bandit algorithm
// must satisfy to drive operator selection. Arms are dense indices into the
// legal (destroy, repair) pair set, numbered in row-major coupling order;
// the selector owns the round-tripping between arms and pairs, so bandit
// implementations never see operator indices.
//
// context is nil for non-contextual bandits; contextual implementations
// receive the feature vector of the current (Predict) or candidate (Update)
// solution state.
type Bandit interface {
	// Predict returns the arm to play next.
	Predict(context []float64) (arm int, err error)

	// Update folds the observed reward for arm into the bandit's estimates.
	Update(arm int, reward float64, context []float64) error
}

// MABSelector frames operator selection as a multi-armed-bandit problem and
// delegates the arm choice to an external Bandit. Outcomes map to scalar
// rewards through the usual four-element score vector.
//
// Before the bandit has observed a single reward, Select falls back to a
// uniformly random legal pair, so the first observation is well defined.
//
// If the solution states implement core.ContextualState, their feature
// vectors are forwarded to the bandit on every Predict and Update call;
// otherwise the bandit runs context-free. Detection is a plain interface
// assertion on the states themselves.
type MABSelector struct {
	scheme

	scores   [core.NumOutcomes]float64
	bandit   Bandit
	pairs    [][2]int
	armOf    map[[2]int]int
	observed bool
}

var _ Scheme = (*MABSelector)(nil)

// NewMABSelector builds a bandit-backed scheme around the given Bandit.
// scores must hold at least four non-negative entries, one per outcome.
// A nil coupling permits every pair.
func NewMABSelector(scores []float64, bandit Bandit, numDestroy, numRepair int, coupling [][]bool) (*MABSelector, error) {
	base, err := newScheme(numDestroy, numRepair, coupling)
	if err != nil {
		return nil, err
	}

	sc, err := validateScores(scores)
	if err != nil {
		return nil, err
	}

	if bandit == nil {
		return nil, ErrNilBandit
	}

	pairs := base.legalPairs()
	armOf := make(map[[2]int]int, len(pairs))
	for arm, p := range pairs {
		armOf[p] = arm
	}

	return &MABSelector{
		scheme: base,
		scores: sc,
		bandit: bandit,
		pairs:  pairs,
		armOf:  armOf,
	}, nil
}

// NumArms returns the number of legal (destroy, repair) pairs, which is the
// arm count the external bandit must support.
func (m *MABSelector) NumArms() int { return len(m.pairs) }

// Select asks the bandit for an arm and translates it back to a pair. Until
// the bandit has been updated at least once, a uniformly random legal pair
// is returned instead.
func (m *MABSelector) Select(rng *rand.Rand, _, curr core.State) (int, int, error) {
	if !m.observed {
		p := m.pairs[rng.Intn(len(m.pairs))]

		return p[0], p[1], nil
	}

	arm, err := m.bandit.Predict(stateContext(curr))
	if err != nil {
		return 0, 0, err
	}
	if arm < 0 || arm >= len(m.pairs) {
		return 0, 0, ErrUnknownArm
	}

	p := m.pairs[arm]

	return p[0], p[1], nil
}

// Update maps the outcome to its reward and forwards it to the bandit for
// the arm corresponding to (dIdx, rIdx).
func (m *MABSelector) Update(candidate core.State, dIdx, rIdx int, outcome core.Outcome) error {
	arm, ok := m.armOf[[2]int{dIdx, rIdx}]
	if !ok {
		return ErrUnknownArm
	}

	if err := m.bandit.Update(arm, m.scores[outcome], stateContext(candidate)); err != nil {
		return err
	}
	m.observed = true

	return nil
}

// stateContext extracts the feature vector of a contextual state, or nil
// when the state carries no context capability.
func stateContext(s core.State) []float64 {
	if cs, ok := s.(core.ContextualState); ok {
		return cs.Context()
	}

	return nil
}
