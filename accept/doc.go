// Package accept implements acceptance criteria for adaptive large
// neighbourhood search: stateful predicates that decide, once per
// iteration, whether a candidate solution replaces the current one.
//
// The criteria offered are:
//
//   - HillClimbing — accept only non-worsening candidates.
//
//   - LateAcceptanceHillClimbing — compare against the current objective
//     from a number of iterations ago, held in a bounded history.
//
//   - SimulatedAnnealing — Metropolis acceptance with a decaying
//     temperature; AutofitSimulatedAnnealing calibrates the start
//     temperature and step from the initial objective (Ropke & Pisinger
//     2006).
//
//   - RecordToRecordTravel — accept when the gap to the best solution is
//     within a decaying threshold.
//
//   - ThresholdAcceptance — as record-to-record travel, but the gap is
//     measured against the current solution.
//
//   - GreatDeluge / NonLinearGreatDeluge — accept below a "water level"
//     threshold seeded from the initial objective and updated by the gap
//     between candidate and threshold.
//
//   - MovingAverageThreshold — accept below a threshold derived from the
//     best and average of the most recently observed candidate objectives.
//
//   - RandomAccept — accept improvements always, worsenings with a
//     decaying probability.
//
//   - RandomWalk — accept everything (degenerate baseline).
//
// Decaying quantities (temperature, threshold, probability) follow a
// linear or exponential schedule selected by Method and are floored at
// their configured end value on every call: max(end, update(current)).
// All parameters are validated eagerly at construction; Accept itself
// never corrects a bad configuration.
//
// Every criterion draws randomness exclusively from the *rand.Rand passed
// to Accept, so runs are reproducible under a fixed seed.
//
// References:
//
//	Santini, A., Ropke, S. & Hvattum, L.M. (2018). A comparison of
//	acceptance criteria for the adaptive large neighbourhood search
//	metaheuristic. Journal of Heuristics 24 (5): 783–815.
package accept
