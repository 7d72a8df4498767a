package accept_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns/accept"
)

// TestHillClimbing_NonWorsening: better and equal candidates pass, worse
// ones do not. The best solution plays no role.
func TestHillClimbing_NonWorsening(t *testing.T) {
	hc := accept.NewHillClimbing()

	cases := []struct {
		name       string
		curr, cand float64
		want       bool
	}{
		{"better", 2, 1, true},
		{"equal", 2, 2, true},
		{"worse", 2, 3, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := hc.Accept(fixedRNG(), objState(0), objState(tc.curr), objState(tc.cand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

// TestRandomWalk_AcceptsEverything: the degenerate baseline accepts any
// candidate, however bad.
func TestRandomWalk_AcceptsEverything(t *testing.T) {
	rw := accept.NewRandomWalk()

	for _, cand := range []float64{-1, 0, 1e9} {
		ok, err := rw.Accept(fixedRNG(), objState(0), objState(0), objState(cand))
		require.NoError(t, err)
		assert.True(t, ok, "candidate %v", cand)
	}
}

func TestLateAcceptance_Validation(t *testing.T) {
	_, err := accept.NewLateAcceptanceHillClimbing(-1, false, false)
	assert.ErrorIs(t, err, accept.ErrNegativeLookback)
}

// TestLateAcceptance_ZeroLookback: an empty history reverts to hill
// climbing on strict improvement.
func TestLateAcceptance_ZeroLookback(t *testing.T) {
	lahc, err := accept.NewLateAcceptanceHillClimbing(0, false, false)
	require.NoError(t, err)

	ok, err := lahc.Accept(fixedRNG(), objState(0), objState(2), objState(1))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lahc.Accept(fixedRNG(), objState(0), objState(2), objState(2))
	require.NoError(t, err)
	assert.False(t, ok, "equal is not a strict improvement")
}

// TestLateAcceptance_ComparesAgainstLookback: with lookback 1, each call
// compares against the current objective recorded one call earlier.
func TestLateAcceptance_ComparesAgainstLookback(t *testing.T) {
	lahc, err := accept.NewLateAcceptanceHillClimbing(1, false, false)
	require.NoError(t, err)

	// First call primes the history with current=2.
	ok, err := lahc.Accept(fixedRNG(), objState(0), objState(2), objState(3))
	require.NoError(t, err)
	assert.False(t, ok)

	// Candidate 1.5 beats the stored 2 even though current is now 1.
	ok, err = lahc.Accept(fixedRNG(), objState(0), objState(1), objState(1.5))
	require.NoError(t, err)
	assert.True(t, ok)

	// History now holds 1; candidate 1.2 loses against it.
	ok, err = lahc.Accept(fixedRNG(), objState(0), objState(1), objState(1.2))
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestLateAcceptance_Greedy: the greedy flag additionally accepts any
// candidate improving the immediate current solution.
func TestLateAcceptance_Greedy(t *testing.T) {
	lahc, err := accept.NewLateAcceptanceHillClimbing(1, true, false)
	require.NoError(t, err)

	// Prime with current=1.
	_, err = lahc.Accept(fixedRNG(), objState(0), objState(1), objState(5))
	require.NoError(t, err)

	// Candidate 2 loses to the stored 1 but improves the current 3.
	ok, err := lahc.Accept(fixedRNG(), objState(0), objState(3), objState(2))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLateAcceptance_BetterHistory: with the better-history policy the
// stored value never regresses above the previous entry.
func TestLateAcceptance_BetterHistory(t *testing.T) {
	lahc, err := accept.NewLateAcceptanceHillClimbing(1, false, true)
	require.NoError(t, err)

	// Prime with current=1.
	_, err = lahc.Accept(fixedRNG(), objState(0), objState(1), objState(5))
	require.NoError(t, err)

	// Current regressed to 4, but min(4, stored 1) = 1 is re-stored.
	_, err = lahc.Accept(fixedRNG(), objState(0), objState(4), objState(5))
	require.NoError(t, err)

	// Candidate 2 must still lose against the preserved 1.
	ok, err := lahc.Accept(fixedRNG(), objState(0), objState(4), objState(2))
	require.NoError(t, err)
	assert.False(t, ok)
}
