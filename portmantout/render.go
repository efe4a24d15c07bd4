package portmantout

import "fmt"

// RenderState walks the chain starting at state.StarticleIdx and
// concatenates every particle's contribution, honoring each edge's
// overlap or padding. The precondition (exactly one unconnected-right
// particle, zero unconnected-left) matches a state straight out of
// Coalesce; callers that render an in-progress state get a partial
// chain instead of an error.
func RenderState(state *State) []byte {
	var out []byte
	idx := state.StarticleIdx
	seen := make(map[int]bool, len(state.Particles))

	for {
		if seen[idx] {
			panic(fmt.Errorf("%w: cycle detected while rendering at particle %d", ErrInvariantViolation, idx))
		}
		seen[idx] = true

		particle := state.Particles[idx]
		if particle.Next == nil {
			out = append(out, particle.Chars...)
			return out
		}

		next := particle.Next
		switch next.Edge.Kind {
		case EdgeOverlapped:
			n := next.Edge.Overlap
			writeLen := len(particle.Chars) - n
			out = append(out, particle.Chars[:writeLen]...)
		case EdgePadded:
			out = append(out, particle.Chars...)
			out = append(out, next.Edge.Padding...)
		}
		idx = next.NextIdx
	}
}

// joinerKey pairs a particle's first and last byte, the index joiners
// are looked up by.
type joinerKey [2]byte

// BuildJoinerIndex builds the auxiliary (first_byte,last_byte) ->
// first-seen joiner mapping from the joiners wordlist. The core
// coalescer never consults this (see the design notes' open question
// on the joiner table); it exists for the render subcommand (below)
// and as a constructed artefact per the interface contract.
func BuildJoinerIndex(joiners [][]byte) map[joinerKey][]byte {
	index := make(map[joinerKey][]byte)
	for _, joiner := range joiners {
		if len(joiner) == 0 {
			continue
		}
		key := joinerKey{joiner[0], joiner[len(joiner)-1]}
		if _, exists := index[key]; !exists {
			index[key] = joiner
		}
	}
	return index
}

// RenderParticles renders an already-ordered particle sequence
// directly through the joiner index, with no search: for each
// adjacent pair it looks up a joiner keyed by (last byte of left,
// first byte of right) and splices in the joiner's interior bytes
// (its first and last byte already belong to the two particles). It
// assumes the joiner index covers every adjacent pair in the sequence,
// per the interface contract on JOINERS_FILE; a missing pair is
// corrupt input.
func RenderParticles(particles [][]byte, index map[joinerKey][]byte) ([]byte, error) {
	if len(particles) == 0 {
		return nil, nil
	}

	out := append([]byte(nil), particles[0]...)
	for i := 1; i < len(particles); i++ {
		left := particles[i-1]
		right := particles[i]
		key := joinerKey{left[len(left)-1], right[0]}
		joiner, ok := index[key]
		if !ok {
			return nil, fmt.Errorf("%w: no joiner for byte pair (%q, %q)", ErrCorruptInput, key[0], key[1])
		}
		if len(joiner) > 2 {
			out = append(out, joiner[1:len(joiner)-1]...)
		}
		out = append(out, right...)
	}
	return out, nil
}
