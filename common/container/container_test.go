package container_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"go_nonempty/common/container"
)

var (
	_ container.Container[int] = (*container.Set[int])(nil)
	_ container.Container[int] = (*container.OrderedMap[string, int])(nil)
	_ container.Container[int] = (*container.Deque[int])(nil)
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	s := container.NewSet(3, 1, 2, 1)
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int{3, 1, 2}, s.Values())
	require.Equal(t, []int{3, 1, 2}, slices.Collect(s.Iter()))

	require.False(t, s.Push(1))
	require.True(t, s.Push(4))
	require.Equal(t, []int{3, 1, 2, 4}, s.Values())

	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	require.False(t, s.Contains(1))
	require.Equal(t, []int{3, 2, 4}, s.Values())
}

func TestSetPopFirst(t *testing.T) {
	s := container.NewSet("b", "a")
	v, ok := s.PopFirst()
	require.True(t, ok)
	require.Equal(t, "b", v)
	v, ok = s.PopFirst()
	require.True(t, ok)
	require.Equal(t, "a", v)
	_, ok = s.PopFirst()
	require.False(t, ok)
	require.True(t, s.Empty())
}

func TestSetClone(t *testing.T) {
	s := container.NewSet(1, 2)
	c := s.Clone()
	c.Add(3)
	require.Equal(t, 2, s.Size())
	require.Equal(t, []int{1, 2, 3}, c.Values())
	c.Clear()
	require.True(t, c.Empty())
	require.False(t, s.Empty())
}

func TestOrderedMap(t *testing.T) {
	m := container.NewOrderedMap[string, int]()
	require.True(t, m.Empty())

	_, replaced := m.Insert("b", 1)
	require.False(t, replaced)
	m.Insert("a", 2)
	old, replaced := m.Insert("b", 3)
	require.True(t, replaced)
	require.Equal(t, 1, old)

	require.Equal(t, []string{"b", "a"}, m.Keys())
	require.Equal(t, []int{3, 2}, m.Values())
	require.True(t, m.Exist("a"))

	k, v, ok := m.First()
	require.True(t, ok)
	require.Equal(t, "b", k)
	require.Equal(t, 3, v)

	v, ok = m.Delete("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = m.Delete("a")
	require.False(t, ok)

	require.Equal(t, map[string]int{"b": 3}, maps.Collect(m.All()))
}

func TestOrderedMapCollectAndPop(t *testing.T) {
	m := container.CollectOrderedMap(maps.All(map[string]int{"x": 1}))
	c := m.Clone()
	k, v, ok := c.PopFirst()
	require.True(t, ok)
	require.Equal(t, "x", k)
	require.Equal(t, 1, v)
	require.True(t, c.Empty())
	require.Equal(t, 1, m.Size())

	_, _, ok = c.PopFirst()
	require.False(t, ok)
}

func TestDeque(t *testing.T) {
	d := container.NewDeque(1, 2, 3)
	d.PushFront(0)
	d.PushBack(4)
	require.Equal(t, []int{0, 1, 2, 3, 4}, d.Values())

	front, ok := d.Front()
	require.True(t, ok)
	require.Equal(t, 0, front)
	back, ok := d.Back()
	require.True(t, ok)
	require.Equal(t, 4, back)

	v, ok := d.At(2)
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = d.At(5)
	require.False(t, ok)

	v, _ = d.PopFront()
	require.Equal(t, 0, v)
	v, _ = d.PopBack()
	require.Equal(t, 4, v)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(d.Clone().Iter()))

	d.Clear()
	_, ok = d.PopFront()
	require.False(t, ok)
	_, ok = d.PopBack()
	require.False(t, ok)
	_, ok = d.Front()
	require.False(t, ok)
}
