package portmantout

import "github.com/kestrel-labs/portmantout/trie"

// VerifyCover checks the cover property: the portmantout must be
// parseable left to right as a sequence of adjacent, possibly
// overlapping, dictionary words covering every byte. It greedily
// extends a candidate word from the current scan position as long as
// some dictionary word shares that prefix, remembering the longest
// exact-match word seen along the way.
//
// Returns nil on success, or a VerificationFailure whose Index is the
// byte offset coverage first failed at.
func VerifyCover(portmantout []byte, wordsTrie *trie.Tree[struct{}]) *VerificationFailure {
	n := len(portmantout)
	if n == 0 {
		return nil
	}

	verifiedThru := 0
	wordStartIdx := 0

	for verifiedThru+1 < n {
		if wordStartIdx > verifiedThru {
			return &VerificationFailure{Index: verifiedThru + 1}
		}

		goodWordLen := 0
		for curLen := 1; wordStartIdx+curLen <= n; curLen++ {
			candidate := portmantout[wordStartIdx : wordStartIdx+curLen]
			if wordsTrie.Size(candidate) == 0 {
				break
			}
			if _, ok := wordsTrie.Get(candidate); ok {
				goodWordLen = curLen
			}
		}

		// A word that does not reach past verifiedThru adds no new
		// coverage; taking it would move verifiedThru backwards.
		if goodWordLen > 0 && wordStartIdx+goodWordLen-1 > verifiedThru {
			verifiedThru = wordStartIdx + goodWordLen - 1
		}
		wordStartIdx++
	}

	return nil
}

// VerifyCompleteness checks that every word in the reduced wordlist
// occurs as a contiguous substring of the portmantout. Returns nil if
// all are present, or a VerificationFailure naming the first missing
// word.
func VerifyCompleteness(portmantout []byte, words [][]byte) *VerificationFailure {
	for _, w := range words {
		if !ContainsSubsequence(portmantout, w) {
			return &VerificationFailure{Word: string(w)}
		}
	}
	return nil
}
