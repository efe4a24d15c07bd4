package portmantout

// BreakRateAnnealing and BreakRateFirstPass are the default Bernoulli
// trial numerators over a denominator of 10000, per the design notes:
// the first pass uses a higher break rate than steady-state annealing.
const (
	BreakRateAnnealing = 3
	BreakRateFirstPass = 7
	breakRateDenom     = 10000
)

// BreakChains walks every particle in index order and, independently
// with probability breakNum/breakDenom, cuts its outbound edge if it
// has one. Cutting restores both halves to valid, separate chains.
func BreakChains(state *State, breakNum, breakDenom int, rng *RNG) {
	for particleIdx := range state.Particles {
		state.SanityCheck()

		particle := state.Particles[particleIdx]
		if particle.Next == nil || !rng.Chance(breakNum, breakDenom) {
			continue
		}

		next := particle.Next
		nextIdx := next.NextIdx
		state.Score -= next.Edge.Score()

		state.UnconnectedOnRight = append(state.UnconnectedOnRight, particleIdx)
		state.UnconnectedOnLeft[nextIdx] = true

		// Walk forward from nextIdx to find the end of its chain.
		chainEndIdx := nextIdx
		for state.Particles[chainEndIdx].Next != nil {
			chainEndIdx = state.Particles[chainEndIdx].Next.NextIdx
		}
		chainStartIdx := state.Particles[chainEndIdx].NoNext.ChainStartIdx

		state.Particles[chainStartIdx].NoPrev.ChainEndIdx = particleIdx
		state.Particles[chainEndIdx].NoNext.ChainStartIdx = nextIdx

		state.Particles[nextIdx].Prev = nil
		state.Particles[nextIdx].NoPrev = NoPrev{ChainEndIdx: chainEndIdx}

		particle.Next = nil
		particle.NoNext = NoNext{ChainStartIdx: chainStartIdx}
	}
}
