package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns/core"
)

// travel holds the decaying-threshold state shared by RecordToRecordTravel
// and ThresholdAcceptance; the two criteria differ only in the baseline the
// candidate gap is measured against.
type travel struct {
	start  float64
	end    float64
	step   float64
	method Method

	threshold float64
}

func newTravel(startThreshold, endThreshold, step float64, method Method) (travel, error) {
	if startThreshold < 0 || endThreshold < 0 {
		return travel{}, ErrInvalidThreshold
	}
	if err := validateSchedule(startThreshold, endThreshold, step, method); err != nil {
		return travel{}, err
	}

	return travel{
		start:     startThreshold,
		end:       endThreshold,
		step:      step,
		method:    method,
		threshold: startThreshold,
	}, nil
}

// advance cools the threshold one schedule step, floored at the end value.
func (t *travel) advance() {
	t.threshold = math.Max(t.end, advance(t.threshold, t.step, t.method))
}

// StartThreshold returns the configured initial threshold.
func (t *travel) StartThreshold() float64 { return t.start }

// EndThreshold returns the configured threshold floor.
func (t *travel) EndThreshold() float64 { return t.end }

// Threshold returns the current threshold.
func (t *travel) Threshold() float64 { return t.threshold }

// RecordToRecordTravel accepts a candidate when its gap to the best
// solution is within a decaying threshold (Dueck & Scheuer 1990):
//
//	f(candidate) − f(best) ≤ threshold.
type RecordToRecordTravel struct {
	travel
}

var _ Criterion = (*RecordToRecordTravel)(nil)

// NewRecordToRecordTravel builds a record-to-record travel criterion.
// Thresholds must be non-negative with start ≥ end; the step must be
// non-negative and, for the exponential schedule, at most one.
func NewRecordToRecordTravel(startThreshold, endThreshold, step float64, method Method) (*RecordToRecordTravel, error) {
	t, err := newTravel(startThreshold, endThreshold, step, method)
	if err != nil {
		return nil, err
	}

	return &RecordToRecordTravel{travel: t}, nil
}

// Accept compares the candidate-to-best gap against the threshold, then
// cools the threshold.
func (r *RecordToRecordTravel) Accept(_ *rand.Rand, best, _, candidate core.State) (bool, error) {
	result := candidate.Objective()-best.Objective() <= r.threshold

	r.advance()

	return result, nil
}

// ThresholdAcceptance accepts a candidate when its gap to the current
// solution is within a decaying threshold.
type ThresholdAcceptance struct {
	travel
}

var _ Criterion = (*ThresholdAcceptance)(nil)

// NewThresholdAcceptance builds a threshold-acceptance criterion; parameter
// constraints are as for NewRecordToRecordTravel.
func NewThresholdAcceptance(startThreshold, endThreshold, step float64, method Method) (*ThresholdAcceptance, error) {
	t, err := newTravel(startThreshold, endThreshold, step, method)
	if err != nil {
		return nil, err
	}

	return &ThresholdAcceptance{travel: t}, nil
}

// Accept compares the candidate-to-current gap against the threshold, then
// cools the threshold.
func (ta *ThresholdAcceptance) Accept(_ *rand.Rand, _, curr, candidate core.State) (bool, error) {
	result := candidate.Objective()-curr.Objective() <= ta.threshold

	ta.advance()

	return result, nil
}
