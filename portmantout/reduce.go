package portmantout

import "github.com/kestrel-labs/portmantout/trie"

// initialOverlapUpperBound seeds U, the monotone overlap bound the
// particle generator tightens every round. 16 comfortably exceeds any
// expected real-word overlap (see the generator's rationale).
const initialOverlapUpperBound = 16

type reduceEntry struct {
	chars []byte
	dead  bool
}

// Reduce runs the particle generator: a greedy overlap-merge loop that
// repeatedly finds the word with the longest suffix that is a prefix
// of some other distinct word in the set, merges the two, and shrinks
// the monotone overlap bound U to that length. Terminates when no
// overlap remains.
func Reduce(words [][]byte) [][]byte {
	tr := trie.New[int]()
	entries := make([]*reduceEntry, 0, len(words))
	for _, w := range words {
		idx := len(entries)
		cp := append([]byte(nil), w...)
		entries = append(entries, &reduceEntry{chars: cp})
		tr.Insert(cp, idx)
	}

	overlapUpperBound := initialOverlapUpperBound

	for {
		bestOverlap := 0
		bestIdx := -1

	scanWords:
		for idx, e := range entries {
			if e.dead {
				continue
			}
			w := e.chars

			start := len(w) - overlapUpperBound
			if start < 1 {
				start = 1
			}
			for i := start; i < len(w); i++ {
				if !hasOtherDescendant(tr, w[i:], idx) {
					continue
				}
				overlap := len(w) - i
				if overlap > bestOverlap {
					bestOverlap = overlap
					bestIdx = idx
				}
				break
			}
			if bestOverlap == overlapUpperBound {
				break scanWords
			}
		}

		if bestOverlap == 0 {
			break
		}

		w := entries[bestIdx].chars
		suffix := w[len(w)-bestOverlap:]

		vIdx := -1
		for _, d := range tr.Descendants(suffix) {
			if d.Value != bestIdx {
				vIdx = d.Value
				break
			}
		}
		v := entries[vIdx].chars

		merged := append(append([]byte(nil), w...), v[bestOverlap:]...)

		tr.Remove(w)
		tr.Remove(v)
		entries[bestIdx].dead = true
		entries[vIdx].dead = true

		newIdx := len(entries)
		entries = append(entries, &reduceEntry{chars: merged})
		tr.Insert(merged, newIdx)

		overlapUpperBound = bestOverlap
	}

	var out [][]byte
	for _, e := range entries {
		if !e.dead {
			out = append(out, e.chars)
		}
	}
	return out
}

func hasOtherDescendant(tr *trie.Tree[int], suffix []byte, excludeIdx int) bool {
	for _, d := range tr.Descendants(suffix) {
		if d.Value != excludeIdx {
			return true
		}
	}
	return false
}
