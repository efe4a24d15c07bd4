package portmantout

// Normalize drops every word that is a contiguous substring of some
// other, distinct word in the list. Duplicate words (identical byte
// content) are treated as one: the set semantics are applied before
// the substring scan, so a repeated word contributes a single entry
// to the result (the spec only requires "implementations may preserve
// one copy"; this preserves the first occurrence's order).
func Normalize(words [][]byte) [][]byte {
	seen := make(map[string]bool, len(words))
	var unique [][]byte
	for _, w := range words {
		key := string(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, w)
	}

	var out [][]byte
outer:
	for i, w := range unique {
		for j, other := range unique {
			if i == j {
				continue
			}
			if ContainsSubsequence(other, w) {
				continue outer
			}
		}
		out = append(out, w)
	}
	return out
}
