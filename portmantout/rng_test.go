package portmantout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNG_SameSeedIsDeterministic(t *testing.T) {
	a, err := NewRNGFromHex("00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	b, err := NewRNGFromHex("00112233445566778899aabbccddeeff")
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestRNG_DifferentSeedsDiverge(t *testing.T) {
	a, err := NewRNGFromHex("00000000000000000000000000000000")
	require.NoError(t, err)
	b, err := NewRNGFromHex("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1<<30) != b.Intn(1<<30) {
			same = false
			break
		}
	}
	require.False(t, same)
}

func TestRNG_IntnBounds(t *testing.T) {
	rng, err := NewRNG()
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		v := rng.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestRNG_IntnPanicsOnNonPositive(t *testing.T) {
	rng, err := NewRNG()
	require.NoError(t, err)
	require.Panics(t, func() { rng.Intn(0) })
}

func TestRNG_Float64Bounds(t *testing.T) {
	rng, err := NewRNG()
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		v := rng.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRNG_BadSeedIsUsageError(t *testing.T) {
	_, err := NewRNGFromHex("not-hex")
	require.ErrorIs(t, err, ErrUsage)

	_, err = NewRNGFromHex("00112233")
	require.ErrorIs(t, err, ErrUsage)
}
