package portmantout

import "fmt"

var starticlePrefix = []byte("portmanteau")

// LoadState builds a State from PARTICLES_FILE lines: the first line
// beginning with the literal bytes "portmanteau" becomes the
// starticle, every other line becomes an ordinary particle, in file
// order. Fails with ErrCorruptInput if no starticle line is present.
func LoadState(particleLines [][]byte) (*State, error) {
	state := NewState()
	foundStarticle := false

	for _, line := range particleLines {
		if !foundStarticle && hasPrefix(line, starticlePrefix) {
			foundStarticle = true
			state.AddStarticle(append([]byte(nil), line...))
			continue
		}
		state.AddParticle(append([]byte(nil), line...))
	}

	if !foundStarticle {
		return nil, fmt.Errorf("%w: no line begins with %q", ErrCorruptInput, starticlePrefix)
	}
	return state, nil
}

func hasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
