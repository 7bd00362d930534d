package container

import (
	"iter"
	"log/slog"

	"github.com/emirpasic/gods/v2/sets/linkedhashset"
)

// Set 集合 按插入顺序迭代 线程不安全
type Set[T comparable] struct {
	data *linkedhashset.Set[T]
}

// NewSet 创建集合
func NewSet[T comparable](values ...T) *Set[T] {
	return &Set[T]{
		data: linkedhashset.New[T](values...),
	}
}

// CollectSet 从迭代器构造集合
func CollectSet[T comparable](seq iter.Seq[T]) *Set[T] {
	s := NewSet[T]()
	for v := range seq {
		s.data.Add(v)
	}
	return s
}

// Empty 判断集合是否为空
func (s *Set[T]) Empty() bool {
	return s.data.Empty()
}

// Size 获取集合大小
func (s *Set[T]) Size() int {
	return s.data.Size()
}

// Clear 清空集合
func (s *Set[T]) Clear() {
	s.data.Clear()
}

// Values 按插入顺序获取集合的值
func (s *Set[T]) Values() []T {
	return s.data.Values()
}

// Push 添加值到集合中 返回值是否为新元素
func (s *Set[T]) Push(val T) bool {
	if s.data.Contains(val) {
		return false
	}
	s.data.Add(val)
	return true
}

// Contains 判断集合是否包含某个值
func (s *Set[T]) Contains(val T) bool {
	return s.data.Contains(val)
}

// Add 添加值到集合中
func (s *Set[T]) Add(values ...T) {
	s.data.Add(values...)
}

// Remove 从集合中移除某个值 返回值是否存在
func (s *Set[T]) Remove(val T) bool {
	if !s.data.Contains(val) {
		return false
	}
	s.data.Remove(val)
	return true
}

// First 最早插入的元素
func (s *Set[T]) First() (val T, ok bool) {
	it := s.data.Iterator()
	if it.Next() {
		return it.Value(), true
	}
	return
}

// PopFirst 移除并返回最早插入的元素
func (s *Set[T]) PopFirst() (val T, ok bool) {
	if val, ok = s.First(); ok {
		s.data.Remove(val)
	}
	return
}

// Clone 复制集合
func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.data.Values()...)
}

// Iter 集合迭代器
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.data.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// LogValue 实现 slog.LogValuer
func (s *Set[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", s.Size()),
		slog.Any("values", s.Values()),
	)
}
