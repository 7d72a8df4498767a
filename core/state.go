package core

// State is the capability contract every solution state must satisfy.
// The engine never mutates a State in place: destroy and repair operators
// return fresh states, and the engine merely re-points its best/current
// references.
type State interface {
	// Objective computes the state's associated objective value.
	// Lower is better; the engine optimises for minimisation.
	Objective() float64
}

// ContextualState extends State with a feature vector describing the
// solution, for use by contextual bandit selection schemes. The returned
// slice must have a fixed length across all states of a run.
type ContextualState interface {
	State

	// Context returns a fixed-length numeric feature vector for this state.
	Context() []float64
}
