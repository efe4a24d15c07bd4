package portmantout

import "testing"

func TestContainsSubsequence(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             bool
	}{
		{"abcdef", "cde", true},
		{"abcdef", "xyz", false},
		{"abcdef", "", true},
		{"", "", true},
		{"", "a", false},
		{"abracadabra", "cad", true},
	}
	for _, c := range cases {
		got := ContainsSubsequence([]byte(c.haystack), []byte(c.needle))
		if got != c.want {
			t.Errorf("ContainsSubsequence(%q, %q) = %v, want %v", c.haystack, c.needle, got, c.want)
		}
	}
}
