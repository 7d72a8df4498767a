// Package stop implements stopping criteria for adaptive large
// neighbourhood search: stateful predicates queried once per iteration,
// after acceptance, that decide when the search loop terminates.
//
// The criteria offered are:
//
//   - MaxIterations — stop after a fixed number of iterations.
//   - MaxRuntime — stop once a wall-clock budget is spent; the start
//     timestamp is recorded lazily on the first call.
//   - NoImprovement — stop once the best objective has stagnated for a
//     fixed number of iterations; the counter resets on every strict
//     improvement.
//
// The engine applies exactly one criterion per run. Any composes several
// criteria with logical OR while satisfying the same contract, so
// composition stays the caller's choice.
package stop
