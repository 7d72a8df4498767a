package selection

import "errors"

var (
	// ErrNoOperators indicates a non-positive destroy or repair operator count.
	ErrNoOperators = errors.New("selection: missing destroy or repair operators")
	// ErrCouplingShape indicates a coupling matrix whose shape does not match
	// the operator counts.
	ErrCouplingShape = errors.New("selection: coupling matrix shape does not match operator counts")
	// ErrUncoupledDestroy indicates a destroy operator with no legal repair
	// operator; selecting it would dead-end.
	ErrUncoupledDestroy = errors.New("selection: destroy operator has no coupled repair operators")
	// ErrNegativeScore indicates a negative entry in an outcome score vector.
	ErrNegativeScore = errors.New("selection: negative scores are not understood")
	// ErrScoreLength indicates a score vector with fewer than four entries.
	ErrScoreLength = errors.New("selection: expected at least four scores")
	// ErrDecayOutOfRange indicates a decay parameter outside [0, 1].
	ErrDecayOutOfRange = errors.New("selection: decay outside [0, 1] not understood")
	// ErrSegmentLength indicates a segment length below one.
	ErrSegmentLength = errors.New("selection: segment length < 1 not understood")
	// ErrAlphaOutOfRange indicates an exploration parameter outside [0, 1].
	ErrAlphaOutOfRange = errors.New("selection: alpha outside [0, 1] not understood")
	// ErrZeroTotalWeight indicates an attempt to normalize an all-zero weight
	// vector. Unreachable through the public API (weights are floored), kept
	// as a runtime invariant guard.
	ErrZeroTotalWeight = errors.New("selection: cannot normalize all-zero weights")
	// ErrNilBandit indicates a MABSelector constructed without a bandit.
	ErrNilBandit = errors.New("selection: nil bandit not understood")
	// ErrUnknownArm indicates a bandit prediction outside the legal pair set.
	ErrUnknownArm = errors.New("selection: bandit arm outside the legal pair set")
)
