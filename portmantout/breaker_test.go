package portmantout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreakChains_PreservesInvariant(t *testing.T) {
	// Every particle starts and ends with 'a', so any chain tail can
	// reach any chain head through Overlapped(1) regardless of which
	// order the coalescer draws them in.
	state, err := LoadState(bwords("portmanteaua", "aba", "aca", "ada", "aea"))
	require.NoError(t, err)

	wordsTrie := BuildWordsTrie(bwords("aa"), nil)
	rng := mustRNG(t)

	Coalesce(state, wordsTrie, rng)
	scoreBeforeBreak := state.Score

	// Break with certainty (every eligible edge cut) to exercise the
	// endpoint bookkeeping repair path.
	BreakChains(state, 10000, 10000, rng)

	require.Equal(t, len(state.UnconnectedOnRight), len(state.UnconnectedOnLeft)+1)

	// Every particle with NoNext should be present in UnconnectedOnRight
	// and vice versa.
	rightSet := make(map[int]bool, len(state.UnconnectedOnRight))
	for _, idx := range state.UnconnectedOnRight {
		rightSet[idx] = true
	}
	for idx, p := range state.Particles {
		require.Equal(t, p.Next == nil, rightSet[idx], "particle %d NoNext/UnconnectedOnRight mismatch", idx)
	}
	for idx, p := range state.Particles {
		if idx == state.StarticleIdx {
			continue
		}
		require.Equal(t, p.Prev == nil, state.UnconnectedOnLeft[idx], "particle %d NoPrev/UnconnectedOnLeft mismatch", idx)
	}

	require.NotEqual(t, scoreBeforeBreak, state.Score)

	// Re-coalescing should restore a single valid chain again.
	Coalesce(state, wordsTrie, rng)
	require.Len(t, state.UnconnectedOnRight, 1)
	require.Len(t, state.UnconnectedOnLeft, 0)
}

func TestBreakChains_ZeroRateIsNoop(t *testing.T) {
	state, err := LoadState(bwords("portmanteauab", "bc"))
	require.NoError(t, err)
	wordsTrie := BuildWordsTrie(bwords("abc"), bwords("ab", "bc"))
	rng := mustRNG(t)

	Coalesce(state, wordsTrie, rng)
	before := state.Score

	BreakChains(state, 0, 10000, rng)

	require.Equal(t, before, state.Score)
	require.Len(t, state.UnconnectedOnRight, 1)
	require.Len(t, state.UnconnectedOnLeft, 0)
}
