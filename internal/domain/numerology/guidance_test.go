package numerology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuidanceSelection(t *testing.T) {
	g := Guidance(4)
	require.Equal(t, "Black Tourmaline", g.Crystal.Name)
	require.Equal(t, "🖤", g.Crystal.Symbol)
	require.Equal(t, "Inner Wisdom", g.Theme)
	require.Equal(t, "Your soul family is supporting your journey from the spiritual realm.", g.Message)

	master := Guidance(11)
	require.Equal(t, "Clear Quartz", master.Crystal.Name)
	require.Equal(t, "Spiritual Awakening", master.Theme)
	require.Equal(t, "Your manifestation abilities are heightened at this time.", master.Message)

	require.Equal(t, Guidance(0), Guidance(9))
	require.Equal(t, "Amethyst", Guidance(0).Crystal.Name)
}

func TestGuidanceAcceptsAnyInteger(t *testing.T) {
	for _, n := range []int{-100, -1, 0, 1, 22, 33, 1 << 30} {
		g := Guidance(n)
		require.NotEmpty(t, g.Crystal.Name)
		require.NotEmpty(t, g.Theme)
		require.NotEmpty(t, g.Message)
	}
	require.Equal(t, "Moonstone", Guidance(-1).Crystal.Name)
	require.Equal(t, "Abundance", Theme(-1))
}
