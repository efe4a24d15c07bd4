package portmantout

import "bytes"

// ContainsSubsequence reports whether needle occurs as a contiguous
// substring of haystack. An empty needle is always contained.
func ContainsSubsequence(haystack, needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	return bytes.Contains(haystack, needle)
}
