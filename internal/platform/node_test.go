package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_ReusesReleasedSlots(t *testing.T) {
	var a arena[string]
	h1 := a.alloc("a")
	h2 := a.alloc("b")
	require.Equal(t, 2, a.live)

	require.Equal(t, "a", a.release(h1))
	require.Equal(t, 1, a.live)
	require.Equal(t, "", a.at(h1).val)

	h3 := a.alloc("c")
	require.Equal(t, h1, h3)
	require.Len(t, a.nodes, 2)
	require.Equal(t, Nil, a.at(h3).next)
	require.Equal(t, Nil, a.at(h3).prev)
	require.Equal(t, "b", a.at(h2).val)
}

func TestArena_DoubleReleasePanics(t *testing.T) {
	var a arena[int]
	h := a.alloc(1)
	a.release(h)
	require.Panics(t, func() { a.release(h) })
}

func TestArena_ResetWithLiveNodesPanics(t *testing.T) {
	var a arena[int]
	a.alloc(1)
	require.Panics(t, func() { a.reset() })
}
