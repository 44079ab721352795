package platform

import (
	platformerror "linked-containers/internal/platform/error"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, "a", v)

	_, err = s.Pop()
	require.ErrorIs(t, err, platformerror.ErrEmptyContainer)
	require.True(t, s.IsEmpty())
	require.Zero(t, s.nodes.live)

	// still usable after the failed pop
	s.Push("c")
	require.Equal(t, "c", s.String())
}

func TestStack_Peek(t *testing.T) {
	s := NewStack[int]()
	_, err := s.Peek()
	require.ErrorIs(t, err, platformerror.ErrEmptyContainer)

	s.Push(1)
	s.Push(2)
	v, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, 2, s.Count())
}

func TestStack_CloneIsIndependent(t *testing.T) {
	s := NewStack[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	require.Equal(t, "3 2 1", s.String())

	c := s.Clone()
	require.NotEqual(t, s.ID(), c.ID())
	require.Equal(t, "3 2 1", c.String())

	_, err := c.Pop()
	require.NoError(t, err)
	c.Push(9)
	require.Equal(t, "9 2 1", c.String())
	require.Equal(t, "3 2 1", s.String())
	require.Equal(t, 3, s.nodes.live)
	require.Equal(t, 3, c.nodes.live)

	s.Clear()
	require.Equal(t, "9 2 1", c.String())
}

func TestStack_CopyFrom(t *testing.T) {
	tests := []struct {
		name  string
		src   []int
		dst   []int
		wantS string
	}{
		{name: "empty source", src: nil, dst: []int{4, 5}, wantS: ""},
		{name: "empty target", src: []int{1, 2, 3}, dst: nil, wantS: "3 2 1"},
		{name: "replace contents", src: []int{7}, dst: []int{1, 2, 3, 4}, wantS: "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := NewStack[int](), NewStack[int]()
			for _, v := range tt.src {
				src.Push(v)
			}
			for _, v := range tt.dst {
				dst.Push(v)
			}

			dst.CopyFrom(src)
			require.Equal(t, tt.wantS, dst.String())
			require.Equal(t, len(tt.src), dst.Count())
			require.Equal(t, dst.Count(), dst.nodes.live)
			require.Equal(t, slices.Collect(src.All()), slices.Collect(dst.All()))
		})
	}
}

func TestStack_CopyFromSelf(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.CopyFrom(s)
	require.Equal(t, "2 1", s.String())
	require.Equal(t, 2, s.nodes.live)
}

func TestStack_AllIsRestartable(t *testing.T) {
	s := NewStack[int]()
	for i := range 4 {
		s.Push(i)
	}
	seq := s.All()
	require.Equal(t, []int{3, 2, 1, 0}, slices.Collect(seq))
	require.Equal(t, []int{3, 2, 1, 0}, slices.Collect(seq))
}

func TestStack_ClearLongChain(t *testing.T) {
	s := NewStack[int]()
	for i := range 100_000 {
		s.Push(i)
	}
	s.Clear()
	require.True(t, s.IsEmpty())
	require.Zero(t, s.Count())
	require.Zero(t, s.nodes.live)
}

func TestStack_PopAfterStress(t *testing.T) {
	var l LIFO[int] = NewStack[int]()
	for range 100 {
		for i := range 1000 {
			l.Push(i)
		}
		for range 1000 {
			_, err := l.Pop()
			require.NoError(t, err)
		}
	}
	require.True(t, l.IsEmpty())
}
