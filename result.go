package alns

import "github.com/katalvlaran/alns/core"

// Result holds the outcome of one Iterate run: the best state observed and
// the statistics collected along the way.
type Result struct {
	best  core.State
	stats *Statistics
}

// BestState returns the best solution state observed during the run.
func (r Result) BestState() core.State { return r.best }

// Statistics returns the collected run statistics.
func (r Result) Statistics() *Statistics { return r.stats }
