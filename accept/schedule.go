// Package accept - the shared linear/exponential schedule used by every
// criterion with a decaying temperature, threshold or probability.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// Method selects how a decaying quantity is updated each call.
type Method uint8

const (
	// Linear subtracts the step from the quantity: v ← v − step.
	Linear Method = iota
	// Exponential multiplies the quantity by the step: v ← v · step.
	Exponential
)

// String returns the lower-case schedule name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// valid reports whether m is a known schedule.
func (m Method) valid() bool { return m == Linear || m == Exponential }

// Criterion is the contract every acceptance criterion satisfies: given the
// best, current and candidate solutions and a random source, decide whether
// the candidate replaces the current solution. Criteria are stateful; their
// internal schedules advance on every call regardless of the decision.
type Criterion interface {
	Accept(rng *rand.Rand, best, curr, candidate core.State) (bool, error)
}

// advance applies one schedule step to current. The caller flooring at the
// configured end value is part of every criterion's contract.
func advance(current, step float64, m Method) float64 {
	if m == Exponential {
		return current * step
	}

	return current - step
}

// validateSchedule checks the common start/end/step/method constraints
// shared by the decaying criteria: non-negative step, start ≥ end, a known
// method, and exponential steps at most one.
func validateSchedule(start, end, step float64, m Method) error {
	if !m.valid() {
		return ErrInvalidMethod
	}
	if step < 0 {
		return ErrNegativeStep
	}
	if start < end {
		return ErrStartBelowEnd
	}
	if m == Exponential && step > 1 {
		return ErrExponentialStep
	}

	return nil
}
