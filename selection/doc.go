// Package selection implements operator-selection schemes for adaptive
// large neighbourhood search: the decision, each iteration, of which
// (destroy, repair) operator pair to apply next.
//
// All schemes operate on the index space restricted by an operator-coupling
// matrix: a boolean matrix of shape (numDestroy × numRepair) whose entry
// (i, j) permits repair operator j to follow destroy operator i. A nil
// matrix means every pair is legal. Every destroy row must allow at least
// one repair operator; this is validated at construction and rejected with
// ErrUncoupledDestroy, since an uncoupled row would dead-end selection.
//
// The schemes offered are:
//
//   - RandomSelect — uniform draw over all legal pairs. Stateless.
//
//   - RouletteWheel — per-operator weights updated every iteration as a
//     convex combination of the old weight and an outcome score:
//     w = decay·w + (1−decay)·score[outcome]. Selection samples each side
//     proportionally to its (coupling-restricted) weights.
//
//   - SegmentedRouletteWheel — identical update formula, but scores
//     accumulate into per-segment counters and the weights absorb them only
//     at fixed segment boundaries.
//
//   - AlphaUCB — an upper-confidence-bound bandit over legal pairs
//     (Hendel 2022): each pair is an arm with a running mean reward and a
//     pull count; arms start optimistically so each is tried early.
//
//   - MABSelector — adapter for an external multi-armed-bandit algorithm
//     behind the narrow Bandit interface, including contextual bandits fed
//     by core.ContextualState.
//
// Weight positivity: roulette-based schemes clamp every weight at
// WeightFloor after each update, so normalisation never runs on an all-zero
// vector. The guard ErrZeroTotalWeight remains as a runtime invariant check.
//
// Determinism: all randomness flows through the *rand.Rand passed to Select;
// the same seed reproduces the same selection sequence.
//
// References:
//
//	Pisinger, D., and Røpke, S. (2010). Large Neighborhood Search.
//	Handbook of Metaheuristics (2 ed., pp. 399–420). Springer.
//
//	Hendel, G. (2022). Adaptive large neighborhood search for mixed integer
//	programming. Mathematical Programming Computation 14: 185–221.
package selection
