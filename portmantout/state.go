package portmantout

import "fmt"

// State owns the dense particle array and the chain-endpoint index
// sets that the coalescer, breaker, and annealer all operate on.
type State struct {
	Particles []*Particle
	Score     int

	// UnconnectedOnRight holds the indices of particles whose Next is
	// nil, in insertion order. It supports uniform-random draw plus
	// constant-time removal via swap-remove.
	UnconnectedOnRight []int

	// UnconnectedOnLeft holds the indices of particles other than the
	// starticle whose Prev is nil, as a set for constant-time
	// insert/remove/membership.
	UnconnectedOnLeft map[int]bool

	StarticleIdx int
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		UnconnectedOnLeft: make(map[int]bool),
	}
}

// AddStarticle appends the designated chain head. Must be called
// exactly once per state, before or after AddParticle calls.
func (s *State) AddStarticle(chars []byte) {
	idx := len(s.Particles)
	p := NewParticle(chars, idx)
	s.Score += len(p.Chars)
	s.Particles = append(s.Particles, p)
	s.UnconnectedOnRight = append(s.UnconnectedOnRight, idx)
	s.StarticleIdx = idx
}

// AddParticle appends an ordinary particle, unconnected on both ends.
func (s *State) AddParticle(chars []byte) {
	idx := len(s.Particles)
	p := NewParticle(chars, idx)
	s.Score += len(p.Chars)
	s.Particles = append(s.Particles, p)
	s.UnconnectedOnRight = append(s.UnconnectedOnRight, idx)
	s.UnconnectedOnLeft[idx] = true
}

// SanityCheck asserts the |UnconnectedOnRight| = |UnconnectedOnLeft| + 1
// invariant from the data model: panics with ErrInvariantViolation
// wrapped in the message, since a failure here indicates a bug in the
// coalescer/breaker, not bad input. The other data-model invariants
// (set membership matching Next/Prev, endpoint metadata, absence of
// cycles) are not checked here.
func (s *State) SanityCheck() {
	if len(s.UnconnectedOnRight) != len(s.UnconnectedOnLeft)+1 {
		panic(fmt.Errorf("%w: |unconnected_on_right|=%d != |unconnected_on_left|=%d + 1",
			ErrInvariantViolation, len(s.UnconnectedOnRight), len(s.UnconnectedOnLeft)))
	}
}

// Clone performs the deep copy the annealer takes at its accept/reject
// boundary: a new particle array (each Particle copied by value, so
// mutating the clone's links never touches the original) and fresh
// copies of the two index structures. No trie is cloned; coalesce
// rebuilds its particles trie fresh from whatever is currently
// UnconnectedOnLeft.
func (s *State) Clone() *State {
	clone := &State{
		Particles:          make([]*Particle, len(s.Particles)),
		Score:              s.Score,
		UnconnectedOnRight: append([]int(nil), s.UnconnectedOnRight...),
		UnconnectedOnLeft:  make(map[int]bool, len(s.UnconnectedOnLeft)),
		StarticleIdx:       s.StarticleIdx,
	}
	for i, p := range s.Particles {
		cp := *p
		if p.Next != nil {
			next := *p.Next
			cp.Next = &next
		}
		if p.Prev != nil {
			prev := *p.Prev
			cp.Prev = &prev
		}
		clone.Particles[i] = &cp
	}
	for idx := range s.UnconnectedOnLeft {
		clone.UnconnectedOnLeft[idx] = true
	}
	return clone
}

// swapRemoveRight removes and returns the element at i from
// UnconnectedOnRight in O(1) by swapping with the last element.
func (s *State) swapRemoveRight(i int) int {
	last := len(s.UnconnectedOnRight) - 1
	v := s.UnconnectedOnRight[i]
	s.UnconnectedOnRight[i] = s.UnconnectedOnRight[last]
	s.UnconnectedOnRight = s.UnconnectedOnRight[:last]
	return v
}
