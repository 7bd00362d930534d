package nonempty_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"go_nonempty/common/container"
	"go_nonempty/common/container/nonempty"
)

func TestSetFrom(t *testing.T) {
	_, err := nonempty.SetFrom(container.NewSet[int]())
	require.ErrorIs(t, err, nonempty.ErrEmptySource)
	_, err = nonempty.SetFrom[int](nil)
	require.ErrorIs(t, err, nonempty.ErrEmptySource)

	plain := container.NewSet(3, 1, 2)
	s, err := nonempty.SetFrom(plain)
	require.NoError(t, err)
	require.Equal(t, 3, s.First())
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{3, 1, 2}, s.Values())

	// The source is left untouched.
	require.Equal(t, []int{3, 1, 2}, plain.Values())
}

func TestSetFromSeq(t *testing.T) {
	_, err := nonempty.SetFromSeq(slices.Values([]int(nil)))
	require.ErrorIs(t, err, nonempty.ErrEmptySource)

	s, err := nonempty.SetFromSeq(slices.Values([]int{2, 2, 1, 2}))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, s.Values())
}

func TestSetRemoveSoleElement(t *testing.T) {
	s := nonempty.NewSet(5)
	require.False(t, s.Remove(5))
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(5))

	_, ok := s.PopFirst()
	require.False(t, ok)
	require.Equal(t, 5, s.First())

	plain := s.ToPlain()
	require.True(t, plain.Remove(5))
	require.True(t, plain.Empty())
	require.Equal(t, 1, s.Len())
}

func TestSetInsert(t *testing.T) {
	s := nonempty.NewSet(1, 1, 2, 2)
	require.Equal(t, 2, s.Len())

	require.False(t, s.Insert(1))
	require.False(t, s.Insert(2))
	require.True(t, s.Insert(3))
	require.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestSetRemovePromotesOldest(t *testing.T) {
	s := nonempty.NewSet(1, 2, 3)
	require.True(t, s.Remove(1))
	require.Equal(t, 2, s.First())
	require.Equal(t, []int{2, 3}, s.Values())
	require.False(t, s.Contains(1))

	require.False(t, s.Remove(7))
	require.True(t, s.Remove(3))
	require.False(t, s.Remove(2))

	s.Insert(4)
	v, ok := s.PopFirst()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, []int{4}, s.Values())
}

func TestNewSetWithRest(t *testing.T) {
	rest := container.NewSet(2, 1, 3)
	s := nonempty.NewSetWithRest(1, rest)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, s.Values())
	require.Equal(t, 3, rest.Size())

	s = nonempty.NewSetWithRest[int](9, nil)
	require.Equal(t, []int{9}, s.Values())
}

func TestSetCloneAndPlain(t *testing.T) {
	s := nonempty.NewSet("a", "b")
	c := s.Clone()
	c.Insert("c")
	require.Equal(t, 2, s.Len())
	require.Equal(t, 3, c.Len())

	plain := s.ToPlain()
	require.Equal(t, []string{"a", "b"}, plain.Values())
	plain.Add("z")
	require.False(t, s.Contains("z"))
}

func TestSetZeroValue(t *testing.T) {
	var s nonempty.Set[string]
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(""))
	require.True(t, s.Insert("a"))
	require.Equal(t, []string{"", "a"}, slices.Collect(s.Iter()))
}
