package core

// Outcome classifies one candidate evaluation. The values are ordered by
// desirability and double as indices into four-element score vectors, so
// their numeric values are part of the public contract.
type Outcome uint8

const (
	// Best: the candidate is a new global best.
	Best Outcome = iota
	// Better: the candidate was accepted and improves the current solution,
	// but is not a new global best.
	Better
	// Accepted: the candidate was accepted without improving the current
	// solution.
	Accepted
	// Rejected: the candidate was not accepted; the current solution is
	// unchanged.
	Rejected
)

// NumOutcomes is the number of distinct Outcome values. Score vectors
// supplied to selection schemes must have at least this many entries.
const NumOutcomes = 4

// String returns the canonical upper-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Best:
		return "BEST"
	case Better:
		return "BETTER"
	case Accepted:
		return "ACCEPT"
	case Rejected:
		return "REJECT"
	default:
		return "UNKNOWN"
	}
}
