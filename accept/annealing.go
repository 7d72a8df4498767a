package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// SimulatedAnnealing applies Metropolis acceptance with an updating
// temperature: a candidate is accepted with probability
//
//	exp((f(curr) − f(candidate)) / T),
//
// so improvements are always accepted and worsenings ever less often as T
// decreases. T starts at the start temperature and is updated every call
// via the linear or exponential schedule, floored at the end temperature.
type SimulatedAnnealing struct {
	start  float64
	end    float64
	step   float64
	method Method

	temperature float64
}

var _ Criterion = (*SimulatedAnnealing)(nil)

// NewSimulatedAnnealing builds a simulated-annealing criterion.
// Both temperatures must be strictly positive with start ≥ end; the step
// must be non-negative and, for the exponential schedule, at most one.
func NewSimulatedAnnealing(startTemperature, endTemperature, step float64, method Method) (*SimulatedAnnealing, error) {
	if startTemperature <= 0 || endTemperature <= 0 {
		return nil, ErrInvalidTemperature
	}
	if err := validateSchedule(startTemperature, endTemperature, step, method); err != nil {
		return nil, err
	}

	return &SimulatedAnnealing{
		start:       startTemperature,
		end:         endTemperature,
		step:        step,
		method:      method,
		temperature: startTemperature,
	}, nil
}

// AutofitSimulatedAnnealing returns a simulated-annealing criterion whose
// start temperature gives an acceptProb chance of accepting a solution up
// to worse percent worse than the initial objective, and whose step brings
// the temperature to one in numIters iterations. This calibration follows
// Ropke and Pisinger (2006).
func AutofitSimulatedAnnealing(initObj, worse, acceptProb float64, numIters int, method Method) (*SimulatedAnnealing, error) {
	if worse < 0 || worse > 1 {
		return nil, ErrInvalidWorse
	}
	if acceptProb <= 0 || acceptProb >= 1 {
		return nil, ErrInvalidAcceptProb
	}
	if numIters <= 0 {
		return nil, ErrNonPositiveIters
	}
	if !method.valid() {
		return nil, ErrInvalidMethod
	}

	startTemp := -worse * initObj / math.Log(acceptProb)

	var step float64
	if method == Linear {
		step = (startTemp - 1) / float64(numIters)
	} else {
		step = math.Pow(1/startTemp, 1/float64(numIters))
	}

	return NewSimulatedAnnealing(startTemp, 1, step, method)
}

// StartTemperature returns the configured initial temperature.
func (sa *SimulatedAnnealing) StartTemperature() float64 { return sa.start }

// EndTemperature returns the configured temperature floor.
func (sa *SimulatedAnnealing) EndTemperature() float64 { return sa.end }

// Step returns the configured schedule step.
func (sa *SimulatedAnnealing) Step() float64 { return sa.step }

// Method returns the configured schedule.
func (sa *SimulatedAnnealing) Method() Method { return sa.method }

// Temperature returns the current temperature.
func (sa *SimulatedAnnealing) Temperature() float64 { return sa.temperature }

// Accept draws against the Metropolis probability at the current
// temperature, then cools the temperature one schedule step (never below
// the end temperature).
func (sa *SimulatedAnnealing) Accept(rng *rand.Rand, _, curr, candidate core.State) (bool, error) {
	probability := math.Exp((curr.Objective() - candidate.Objective()) / sa.temperature)

	sa.temperature = math.Max(sa.end, advance(sa.temperature, sa.step, sa.method))

	return probability >= rng.Float64(), nil
}
