package nonempty

import (
	"iter"
	"log/slog"

	"go_nonempty/common/container"
)

// Set 非空集合
//
// 首元素之外的元素保存在按插入顺序迭代的 container.Set 中, 首元素不会出现在其中.
// 零值包含一个零值元素.
type Set[T comparable] struct {
	first T
	rest  *container.Set[T]
}

// NewSet 用首元素和其余元素构造 rest 中与 first 相同的值被忽略
func NewSet[T comparable](first T, rest ...T) *Set[T] {
	s := &Set[T]{
		first: first,
		rest:  container.NewSet[T](),
	}
	for _, v := range rest {
		s.Insert(v)
	}
	return s
}

// NewSetWithRest 用首元素和普通集合构造 rest 会被复制 其中与 first 相同的值被丢弃
func NewSetWithRest[T comparable](first T, rest *container.Set[T]) *Set[T] {
	s := &Set[T]{first: first}
	if rest == nil {
		s.rest = container.NewSet[T]()
		return s
	}
	s.rest = rest.Clone()
	s.rest.Remove(first)
	return s
}

// SetFrom 从普通集合构造 最早插入的元素成为首元素
// plain 为 nil 或为空时返回 ErrEmptySource
func SetFrom[T comparable](plain *container.Set[T]) (*Set[T], error) {
	if plain == nil || plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownSet(plain.Clone()), nil
}

// SetFromSeq 从迭代器构造 迭代器为空时返回 ErrEmptySource
func SetFromSeq[T comparable](seq iter.Seq[T]) (*Set[T], error) {
	plain := container.CollectSet(seq)
	if plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownSet(plain), nil
}

// ownSet 直接接管非空的 plain
func ownSet[T comparable](plain *container.Set[T]) *Set[T] {
	first, _ := plain.PopFirst()
	return &Set[T]{
		first: first,
		rest:  plain,
	}
}

func (s *Set[T]) dynamic() *container.Set[T] {
	if s.rest == nil {
		s.rest = container.NewSet[T]()
	}
	return s.rest
}

// First 首元素
func (s *Set[T]) First() T {
	return s.first
}

// Len 元素个数
func (s *Set[T]) Len() int {
	return base + s.dynamic().Size()
}

// Contains 判断是否包含 val
func (s *Set[T]) Contains(val T) bool {
	return val == s.first || s.dynamic().Contains(val)
}

// Insert 添加元素 返回值是否为新元素
func (s *Set[T]) Insert(val T) bool {
	if val == s.first {
		return false
	}
	return s.dynamic().Push(val)
}

// Remove 移除元素
// 移除首元素时由最早插入的其余元素补上. val 不存在或它是唯一的元素时返回 false
func (s *Set[T]) Remove(val T) bool {
	if val != s.first {
		return s.dynamic().Remove(val)
	}
	_, ok := s.PopFirst()
	return ok
}

// PopFirst 移除并返回首元素 只剩一个元素时返回 false
func (s *Set[T]) PopFirst() (val T, ok bool) {
	next, ok := s.dynamic().PopFirst()
	if !ok {
		return
	}
	val, s.first = s.first, next
	return val, true
}

// Iter 首元素在前 其余按插入顺序
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.first) {
			return
		}
		for v := range s.dynamic().Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values 与 Iter 顺序相同的切片
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Len())
	for v := range s.Iter() {
		values = append(values, v)
	}
	return values
}

// ToPlain 转换为普通集合 首元素排在最前
func (s *Set[T]) ToPlain() *container.Set[T] {
	return container.CollectSet(s.Iter())
}

// Clone 复制
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		first: s.first,
		rest:  s.dynamic().Clone(),
	}
}

// LogValue 实现 slog.LogValuer
func (s *Set[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", s.Len()),
		slog.Any("first", s.first),
	)
}
