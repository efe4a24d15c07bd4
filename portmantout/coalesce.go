package portmantout

import (
	"fmt"

	"github.com/kestrel-labs/portmantout/trie"
)

// Coalesce links every chain in state into a single chain headed by
// state.StarticleIdx, using wordsTrie (the joiners/dictionary index)
// to find minimum-cost bridges. Pre-state requires
// len(state.UnconnectedOnRight) >= 1.
func Coalesce(state *State, wordsTrie *trie.Tree[struct{}], rng *RNG) {
	particlesTrie := trie.New[int]()
	for idx := range state.UnconnectedOnLeft {
		particlesTrie.Insert(state.Particles[idx].Chars, idx)
	}

	for particlesTrie.Len() > 0 {
		state.SanityCheck()

		i := rng.Intn(len(state.UnconnectedOnRight))
		particleIdx := state.swapRemoveRight(i)

		chainStartIdx := state.Particles[particleIdx].NoNext.ChainStartIdx

		if particlesTrie.Len() == 1 && chainStartIdx != state.StarticleIdx {
			state.UnconnectedOnRight = append(state.UnconnectedOnRight, particleIdx)
			continue
		}

		chainStartChars := state.Particles[chainStartIdx].Chars
		hideChainStart := chainStartIdx != state.StarticleIdx
		if hideChainStart {
			particlesTrie.Remove(chainStartChars)
		}

		best := findNext(wordsTrie, state.Particles[particleIdx], particlesTrie)

		if hideChainStart {
			particlesTrie.Insert(chainStartChars, chainStartIdx)
		}

		state.Score += best.Edge.Score()
		nextIdx := best.NextIdx

		delete(state.UnconnectedOnLeft, nextIdx)

		state.Particles[particleIdx].Next = &Next{NextIdx: nextIdx, Edge: best.Edge}

		chainEndIdx := state.Particles[nextIdx].NoPrev.ChainEndIdx
		state.Particles[nextIdx].Prev = &Prev{PrevIdx: particleIdx}

		state.Particles[chainStartIdx].NoPrev.ChainEndIdx = chainEndIdx
		state.Particles[chainEndIdx].NoNext.ChainStartIdx = chainStartIdx

		particlesTrie.Remove(state.Particles[nextIdx].Chars)
	}
}

// findNext picks the outbound edge from particle minimizing edge
// score: an overlap with the longest possible overlap beats any
// padded edge, and among padded edges the smallest padding wins.
func findNext(wordsTrie *trie.Tree[struct{}], particle *Particle, particlesTrie *trie.Tree[int]) Next {
	chars := particle.Chars

	// Overlap probe: try the 3 longest candidate suffixes, longest
	// first, and take the first chain head that starts with it.
	start := len(chars) - 3
	if start < 0 {
		start = 0
	}
	for k := start; k < len(chars); k++ {
		overlap := chars[k:]
		if entry, ok := particlesTrie.First(overlap); ok {
			return Next{
				NextIdx: entry.Value,
				Edge:    Edge{Kind: EdgeOverlapped, Overlap: len(overlap)},
			}
		}
	}

	// Padded probe: search for the shortest joiner-word padding that
	// bridges a suffix of chars to some chain-head's bytes.
	var (
		bestPadding []byte
		bestNext    int
		found       bool
	)

	padStart := len(chars) - min(11, len(chars))

findBest:
	for suffixStart := padStart; suffixStart < len(chars); suffixStart++ {
		suffix := chars[suffixStart:]
		suffixLen := len(suffix)

		descendants := wordsTrie.Descendants(suffix)
		if len(descendants) == 0 {
			continue
		}

		for _, entry := range descendants {
			word := entry.Key
			for idx := suffixLen; idx < len(word); idx++ {
				paddingLen := idx - suffixLen
				if found && paddingLen >= len(bestPadding) {
					break
				}
				if next, ok := particlesTrie.First(word[idx:]); ok {
					bestPadding = word[suffixLen:idx]
					bestNext = next.Value
					found = true
					if paddingLen == 0 {
						break findBest
					}
				}
			}
		}
	}

	if !found {
		panic(fmt.Errorf("%w: no joiner bridges particle %q", ErrCorruptInput, chars))
	}

	padding := append([]byte(nil), bestPadding...)
	return Next{
		NextIdx: bestNext,
		Edge:    Edge{Kind: EdgePadded, Padding: padding},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
