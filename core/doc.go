// Package core defines the primitives shared by every alns subpackage:
// the solution-state capability contracts and the four-way outcome
// classification of a candidate evaluation.
//
// A solution state is opaque to the search core. It must expose exactly one
// capability, Objective, interpreted as "lower is better" (minimisation).
// Context-aware selection schemes may additionally require ContextualState,
// detected via a plain interface assertion rather than runtime probing.
//
// Keeping these contracts in their own package lets selection, accept and
// stop implement the engine's interfaces without import cycles.
package core
