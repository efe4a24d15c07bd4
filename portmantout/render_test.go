package portmantout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderState_OverlapAndPaddingMix(t *testing.T) {
	state := NewState()
	state.AddStarticle([]byte("portmanteauab"))
	state.AddParticle([]byte("bc"))
	state.AddParticle([]byte("xy"))

	state.Particles[0].Link(1, Edge{Kind: EdgeOverlapped, Overlap: 1})
	state.Particles[1].Link(2, Edge{Kind: EdgePadded, Padding: []byte("-")})

	got := RenderState(state)
	require.Equal(t, "portmanteauabc-xy", string(got))
}

func TestRenderState_PanicsOnCycle(t *testing.T) {
	state := NewState()
	state.AddStarticle([]byte("ab"))
	state.AddParticle([]byte("bc"))

	state.Particles[0].Link(1, Edge{Kind: EdgeOverlapped, Overlap: 1})
	state.Particles[1].Link(0, Edge{Kind: EdgeOverlapped, Overlap: 1})

	require.Panics(t, func() { RenderState(state) })
}

func TestBuildJoinerIndex_FirstSeenWins(t *testing.T) {
	index := BuildJoinerIndex(bwords("axb", "ayb", "czd"))
	require.Equal(t, "axb", string(index[joinerKey{'a', 'b'}]))
	require.Equal(t, "czd", string(index[joinerKey{'c', 'd'}]))
	require.Len(t, index, 2)
}

func TestRenderParticles_SplicesJoinerInterior(t *testing.T) {
	index := BuildJoinerIndex(bwords("b-c"))
	out, err := RenderParticles(bwords("ab", "cd"), index)
	require.NoError(t, err)
	require.Equal(t, "ab-cd", string(out))
}

func TestRenderParticles_MissingJoinerFails(t *testing.T) {
	index := BuildJoinerIndex(nil)
	_, err := RenderParticles(bwords("ab", "cd"), index)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCorruptInput)
}
