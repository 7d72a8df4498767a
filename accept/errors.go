package accept

import "errors"

var (
	// ErrInvalidMethod indicates an unknown schedule Method value.
	ErrInvalidMethod = errors.New("accept: method not understood")
	// ErrInvalidTemperature indicates a non-positive temperature.
	ErrInvalidTemperature = errors.New("accept: temperatures must be strictly positive")
	// ErrInvalidThreshold indicates a negative threshold.
	ErrInvalidThreshold = errors.New("accept: thresholds must be non-negative")
	// ErrInvalidProbability indicates probabilities violating 0 ≤ end ≤ start ≤ 1.
	ErrInvalidProbability = errors.New("accept: need 0 <= end_prob <= start_prob <= 1")
	// ErrStartBelowEnd indicates a start value below its end value.
	ErrStartBelowEnd = errors.New("accept: start below end not understood")
	// ErrNegativeStep indicates a negative schedule step.
	ErrNegativeStep = errors.New("accept: step cannot be negative")
	// ErrExponentialStep indicates an exponential schedule with step > 1,
	// which would grow instead of decay.
	ErrExponentialStep = errors.New("accept: exponential updating cannot have step > 1")
	// ErrDelugeParams indicates great-deluge parameters outside alpha > 1,
	// 0 < beta < 1.
	ErrDelugeParams = errors.New("accept: alpha must be > 1 and beta must be in (0, 1)")
	// ErrNonLinearParams indicates non-positive gamma or delta for the
	// non-linear great deluge.
	ErrNonLinearParams = errors.New("accept: gamma and delta must be positive")
	// ErrZeroInitialObjective indicates an initial solution with objective
	// zero, for which the non-linear great-deluge threshold is undefined.
	ErrZeroInitialObjective = errors.New("accept: initial solution cannot have zero objective")
	// ErrEtaOutOfRange indicates an eta parameter outside [0, 1].
	ErrEtaOutOfRange = errors.New("accept: eta outside [0, 1] not understood")
	// ErrNonPositiveGamma indicates a non-positive history size.
	ErrNonPositiveGamma = errors.New("accept: gamma must be positive")
	// ErrNegativeLookback indicates a negative late-acceptance lookback.
	ErrNegativeLookback = errors.New("accept: lookback must be non-negative")
	// ErrInvalidWorse indicates an autofit worse factor outside [0, 1].
	ErrInvalidWorse = errors.New("accept: worse outside [0, 1] not understood")
	// ErrInvalidAcceptProb indicates an autofit acceptance probability
	// outside (0, 1).
	ErrInvalidAcceptProb = errors.New("accept: accept_prob outside (0, 1) not understood")
	// ErrNonPositiveIters indicates a non-positive autofit iteration count.
	ErrNonPositiveIters = errors.New("accept: non-positive num_iters not understood")
)
