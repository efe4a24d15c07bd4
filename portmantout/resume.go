package portmantout

import (
	"bytes"
	"fmt"
	"sort"
)

type particleOccurrence struct {
	particleIdx int
	start       int
}

// Resume parses a byte sequence believed to be a previously emitted
// portmantout of state's current particle set back into a fully
// connected chain. It locates each particle's first occurrence with a
// sliding-deque multi-pattern scan (an Aho-Corasick-equivalent: every
// active prefix up to the longest particle length is tracked and
// checked on each byte), then links particles in increasing order of
// their located start index.
//
// Fails with ErrCorruptInput if any particle cannot be located.
func Resume(state *State, portmantout []byte) error {
	portmantout = bytes.TrimRight(portmantout, " \t\r\n")

	type entry struct {
		particleIdx int
		start       int
		found       bool
	}
	particleStarts := make(map[string]*entry, len(state.Particles))
	maxParticleLen := 0
	for idx, p := range state.Particles {
		if len(p.Chars) > maxParticleLen {
			maxParticleLen = len(p.Chars)
		}
		particleStarts[string(p.Chars)] = &entry{particleIdx: idx}
	}

	var deque [][]byte
	for idx, b := range portmantout {
		deque = append(deque, nil)
		for i := range deque {
			deque[i] = append(deque[i], b)
			if e, ok := particleStarts[string(deque[i])]; ok && !e.found {
				e.found = true
				e.start = idx - len(deque[i]) + 1
			}
		}
		if len(deque) > maxParticleLen+1 {
			deque = deque[1:]
		}
	}

	occurrences := make([]particleOccurrence, 0, len(particleStarts))
	for key, e := range particleStarts {
		if !e.found {
			return fmt.Errorf("%w: did not find particle %q while resuming", ErrCorruptInput, key)
		}
		occurrences = append(occurrences, particleOccurrence{particleIdx: e.particleIdx, start: e.start})
	}
	sort.Slice(occurrences, func(i, j int) bool { return occurrences[i].start < occurrences[j].start })

	if len(occurrences) == 0 {
		return nil
	}

	state.StarticleIdx = occurrences[0].particleIdx
	state.Score = 0
	for _, p := range state.Particles {
		state.Score += len(p.Chars)
	}

	for i := 1; i < len(occurrences); i++ {
		prev := occurrences[i-1]
		curr := occurrences[i]
		prevLen := len(state.Particles[prev.particleIdx].Chars)

		var edge Edge
		if prev.start+prevLen > curr.start {
			edge = Edge{Kind: EdgeOverlapped, Overlap: prev.start + prevLen - curr.start}
		} else {
			edge = Edge{Kind: EdgePadded, Padding: append([]byte(nil), portmantout[prev.start+prevLen:curr.start]...)}
		}
		state.Score += edge.Score()

		state.Particles[prev.particleIdx].Next = &Next{NextIdx: curr.particleIdx, Edge: edge}
		state.Particles[curr.particleIdx].Prev = &Prev{PrevIdx: prev.particleIdx}
	}

	lastIdx := occurrences[len(occurrences)-1].particleIdx
	state.Particles[state.StarticleIdx].NoPrev = NoPrev{ChainEndIdx: lastIdx}
	state.Particles[lastIdx].NoNext = NoNext{ChainStartIdx: state.StarticleIdx}

	state.UnconnectedOnRight = []int{lastIdx}
	state.UnconnectedOnLeft = make(map[int]bool)

	return nil
}
