// Package alns implements the adaptive large neighbourhood search (ALNS)
// metaheuristic for minimisation problems, as described by Pisinger and
// Røpke (2010). The engine iteratively destroys part of the current
// solution and repairs it, keeps or discards the result via a pluggable
// acceptance criterion, and learns online which destroy/repair operator
// pairs perform well.
//
// 🚀 What is alns?
//
//	A problem-agnostic, deterministic search core that brings together:
//		• Engine: operator registration, the iterate loop, on-best callbacks
//		• Selection: roulette wheel, segmented roulette wheel, α-UCB, bandits
//		• Acceptance: hill climbing, simulated annealing, record-to-record
//		  travel, (non-linear) great deluge, moving-average threshold, …
//		• Stopping: iteration, wall-clock and stagnation limits, composition
//
// ✨ Why choose alns?
//
//   - Problem-agnostic – solutions only need Objective() float64
//   - Reproducible – one explicit *rand.Rand, same seed ⇒ same run
//   - Strict validation – bad parameters fail at construction, never mid-run
//   - Extensible – every scheme and criterion is a small, replaceable interface
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — State, ContextualState and Outcome primitives
//	selection/ — operator-selection schemes over a coupling matrix
//	accept/    — acceptance criteria with decaying schedules
//	stop/      — stopping criteria and their composition
//
// Quick sketch of one iteration:
//
//	select (d, r) ─▶ destroy ─▶ repair ─▶ accept? ─▶ classify ─▶ update weights
//
// The candidate's classification is one of BEST / BETTER / ACCEPT / REJECT;
// it drives both the selection scheme's learning and the run statistics.
//
// Dive into DESIGN.md for the design ledger, and examples/ for a runnable
// end-to-end program.
//
//	go get github.com/katalvlaran/alns
package alns
