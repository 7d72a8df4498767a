// Package selection_test exercises the operator-selection schemes through
// their public API only.
package selection_test

import "math/rand"

// objState is a minimal solution state with a fixed objective.
type objState float64

func (s objState) Objective() float64 { return float64(s) }

// ctxState is a solution state that additionally exposes a feature vector
// for contextual bandits.
type ctxState struct {
	obj      float64
	features []float64
}

func (s ctxState) Objective() float64 { return s.obj }
func (s ctxState) Context() []float64 { return s.features }

// fixedRNG is a deterministic seeded stream.
func fixedRNG() *rand.Rand { return rand.New(rand.NewSource(42)) }
