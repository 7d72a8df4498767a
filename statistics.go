package alns

import (
	"time"

	"github.com/katalvlaran/alns/core"
)

// Statistics is the passive collector fed by the engine once per iteration:
// the objective trace, wall-clock stamps, and per-operator outcome counts
// keyed by operator name. It is not required for search correctness; a
// caller wanting partial results on failure must hold its own reference,
// since the engine does not salvage statistics from an aborted run.
type Statistics struct {
	objectives    []float64
	runtimes      []time.Time
	destroyCounts map[string]*[core.NumOutcomes]int
	repairCounts  map[string]*[core.NumOutcomes]int
}

// NewStatistics returns an empty collector.
func NewStatistics() *Statistics {
	return &Statistics{
		destroyCounts: make(map[string]*[core.NumOutcomes]int),
		repairCounts:  make(map[string]*[core.NumOutcomes]int),
	}
}

// CollectObjective appends one objective observation.
func (s *Statistics) CollectObjective(objective float64) {
	s.objectives = append(s.objectives, objective)
}

// CollectRuntime appends one wall-clock stamp.
func (s *Statistics) CollectRuntime(t time.Time) {
	s.runtimes = append(s.runtimes, t)
}

// CollectDestroyOperator counts one outcome for the named destroy operator.
func (s *Statistics) CollectDestroyOperator(name string, outcome core.Outcome) {
	collect(s.destroyCounts, name, outcome)
}

// CollectRepairOperator counts one outcome for the named repair operator.
func (s *Statistics) CollectRepairOperator(name string, outcome core.Outcome) {
	collect(s.repairCounts, name, outcome)
}

func collect(counts map[string]*[core.NumOutcomes]int, name string, outcome core.Outcome) {
	c, ok := counts[name]
	if !ok {
		c = new([core.NumOutcomes]int)
		counts[name] = c
	}
	c[outcome]++
}

// Objectives returns the collected objective trace, oldest first. The first
// entry is the initial solution's objective; each later entry is the
// current objective after one iteration.
func (s *Statistics) Objectives() []float64 {
	out := make([]float64, len(s.objectives))
	copy(out, s.objectives)

	return out
}

// TotalRuntime returns the wall-clock span between the first and last
// collected stamps, or zero when fewer than two were collected.
func (s *Statistics) TotalRuntime() time.Duration {
	if len(s.runtimes) < 2 {
		return 0
	}

	return s.runtimes[len(s.runtimes)-1].Sub(s.runtimes[0])
}

// DestroyOperatorCounts returns outcome counts per destroy operator name,
// indexed by core.Outcome.
func (s *Statistics) DestroyOperatorCounts() map[string][core.NumOutcomes]int {
	return copyCounts(s.destroyCounts)
}

// RepairOperatorCounts returns outcome counts per repair operator name,
// indexed by core.Outcome.
func (s *Statistics) RepairOperatorCounts() map[string][core.NumOutcomes]int {
	return copyCounts(s.repairCounts)
}

func copyCounts(counts map[string]*[core.NumOutcomes]int) map[string][core.NumOutcomes]int {
	out := make(map[string][core.NumOutcomes]int, len(counts))
	for name, c := range counts {
		out[name] = *c
	}

	return out
}
