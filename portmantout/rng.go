package portmantout

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/dchest/siphash"
)

// RNG is a counter-based PRNG: siphash(k0, k1, counter) for successive
// counter values. 128 bits of seed is far more than the statistical
// quality this algorithm needs (see spec notes on PRNG choice) but
// siphash is a small, well-known keyed hash, and a counter
// construction needs no mutable generator state beyond the counter
// itself.
type RNG struct {
	k0, k1  uint64
	counter uint64
}

// NewRNG seeds an RNG from 16 bytes of OS entropy.
func NewRNG() (*RNG, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("%w: reading seed entropy: %v", ErrIoFailure, err)
	}
	return &RNG{
		k0: binary.LittleEndian.Uint64(seed[0:8]),
		k1: binary.LittleEndian.Uint64(seed[8:16]),
	}, nil
}

// NewRNGFromHex seeds an RNG from a fixed 32-hex-digit (16 byte) seed,
// for reproducible runs.
func NewRNGFromHex(s string) (*RNG, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad --seed value: %v", ErrUsage, err)
	}
	if len(raw) != 16 {
		return nil, fmt.Errorf("%w: --seed must be 32 hex digits (16 bytes), got %d bytes", ErrUsage, len(raw))
	}
	return &RNG{
		k0: binary.LittleEndian.Uint64(raw[0:8]),
		k1: binary.LittleEndian.Uint64(raw[8:16]),
	}, nil
}

// next returns the next raw 64-bit output.
func (r *RNG) next() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], r.counter)
	r.counter++
	return siphash.Hash(r.k0, r.k1, buf[:])
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("portmantout: Intn called with n <= 0")
	}
	return int(r.next() % uint64(n))
}

// Float64 returns a pseudo-random float in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()%(1<<53)) / (1 << 53)
}

// Chance reports true with probability num/denom, using one draw.
func (r *RNG) Chance(num, denom int) bool {
	return r.Intn(denom) < num
}
