package portmantout

import "github.com/kestrel-labs/portmantout/trie"

// maxJoinerLen bounds which wordlist entries are worth indexing for
// padding search: the padded probe only ever looks 11 bytes back from
// a particle's end, so a dictionary word of length >= 11 can never be
// the suffix match that wins (per the WORDLIST_FILE efficiency
// invariant in the external interfaces).
const maxJoinerLen = 11

// BuildWordsTrie indexes every joiner (unconditionally) and every
// wordlist entry shorter than maxJoinerLen into one trie, used by the
// coalescer's padded probe (the cover-check verifier uses
// BuildDictionaryTrie instead).
func BuildWordsTrie(joiners, wordlist [][]byte) *trie.Tree[struct{}] {
	tr := trie.New[struct{}]()
	for _, w := range joiners {
		tr.Insert(w, struct{}{})
	}
	for _, w := range wordlist {
		if len(w) < maxJoinerLen {
			tr.Insert(w, struct{}{})
		}
	}
	return tr
}

// BuildDictionaryTrie indexes every word unconditionally, for use by
// the cover-check verifier, which must recognize dictionary words of
// any length (the maxJoinerLen truncation is specific to the
// coalescer's padding-search optimization, not a property of the
// dictionary itself).
func BuildDictionaryTrie(wordlist [][]byte) *trie.Tree[struct{}] {
	tr := trie.New[struct{}]()
	for _, w := range wordlist {
		tr.Insert(w, struct{}{})
	}
	return tr
}
