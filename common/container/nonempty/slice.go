package nonempty

import (
	"iter"
	"log/slog"
	"slices"

	"go_nonempty/common/options"
)

// Slice 非空切片
//
// 零值包含一个零值元素.
type Slice[T any] struct {
	first T
	rest  []T
}

// NewSlice 用首元素和其余元素构造 rest 会被复制
func NewSlice[T any](first T, rest ...T) *Slice[T] {
	return &Slice[T]{
		first: first,
		rest:  slices.Clone(rest),
	}
}

// MakeSlice 构造只有一个元素的切片 可以通过 WithCapacity 预分配
func MakeSlice[T any](first T, opts ...options.Option[BuildOptions]) *Slice[T] {
	o := buildOptions(opts...)
	return &Slice[T]{
		first: first,
		rest:  make([]T, 0, o.capacity.Additional()),
	}
}

// SliceFrom 从普通切片构造 values 为空时返回 ErrEmptySource
func SliceFrom[T any](values []T) (*Slice[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySource
	}
	return NewSlice(values[0], values[1:]...), nil
}

// SliceFromSeq 从迭代器构造 迭代器为空时返回 ErrEmptySource
func SliceFromSeq[T any](seq iter.Seq[T], opts ...options.Option[BuildOptions]) (*Slice[T], error) {
	var s *Slice[T]
	for v := range seq {
		if s == nil {
			s = MakeSlice(v, opts...)
			continue
		}
		s.rest = append(s.rest, v)
	}
	if s == nil {
		return nil, ErrEmptySource
	}
	return s, nil
}

// First 首元素
func (s *Slice[T]) First() T {
	return s.first
}

// Last 最后一个元素
func (s *Slice[T]) Last() T {
	if len(s.rest) == 0 {
		return s.first
	}
	return s.rest[len(s.rest)-1]
}

// Len 元素个数
func (s *Slice[T]) Len() int {
	return base + len(s.rest)
}

// At 按下标访问 越界时 panic
func (s *Slice[T]) At(i int) T {
	if i == 0 {
		return s.first
	}
	return s.rest[i-1]
}

// Get 按下标访问
func (s *Slice[T]) Get(i int) (val T, ok bool) {
	if i < 0 || i >= s.Len() {
		return
	}
	return s.At(i), true
}

// Set 按下标修改 越界时返回 false
func (s *Slice[T]) Set(i int, val T) bool {
	switch {
	case i == 0:
		s.first = val
	case i > 0 && i < s.Len():
		s.rest[i-1] = val
	default:
		return false
	}
	return true
}

// Push 追加到末尾
func (s *Slice[T]) Push(val T) {
	s.rest = append(s.rest, val)
}

// Pop 移除最后一个元素
// 只剩一个元素时不做任何修改 返回 false
func (s *Slice[T]) Pop() (val T, ok bool) {
	if len(s.rest) == 0 {
		return
	}
	last := len(s.rest) - 1
	val = s.rest[last]
	var zero T
	s.rest[last] = zero
	s.rest = s.rest[:last]
	return val, true
}

// Remove 移除下标 i 的元素 后面的元素前移
// 移除首元素时由下一个元素补上. 只剩一个元素或下标越界时返回 false
func (s *Slice[T]) Remove(i int) (val T, ok bool) {
	if len(s.rest) == 0 || i < 0 || i >= s.Len() {
		return
	}
	if i == 0 {
		val = s.first
		s.first = s.rest[0]
		s.rest = slices.Delete(s.rest, 0, 1)
		return val, true
	}
	val = s.rest[i-1]
	s.rest = slices.Delete(s.rest, i-1, i)
	return val, true
}

// Truncate 只保留首元素
func (s *Slice[T]) Truncate() {
	clear(s.rest)
	s.rest = s.rest[:0]
}

// Capacity 当前容量
func (s *Slice[T]) Capacity() Capacity {
	return NewAdditionalCapacity(cap(s.rest))
}

// Reserve 保证至少还能追加 additional 个元素而不重新分配
func (s *Slice[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	s.rest = slices.Grow(s.rest, additional)
}

// Iter 从首元素到末尾的迭代器
func (s *Slice[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.first) {
			return
		}
		for _, v := range s.rest {
			if !yield(v) {
				return
			}
		}
	}
}

// All 带下标的迭代器
func (s *Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range s.Iter() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// ToPlain 转换为普通切片 结果与 s 不共享内存
func (s *Slice[T]) ToPlain() []T {
	values := make([]T, 0, s.Len())
	values = append(values, s.first)
	return append(values, s.rest...)
}

// Clone 复制
func (s *Slice[T]) Clone() *Slice[T] {
	return NewSlice(s.first, s.rest...)
}

// LogValue 实现 slog.LogValuer
func (s *Slice[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", s.Len()),
		slog.Any("first", s.first),
	)
}

// EqualSlices 按顺序逐个比较
func EqualSlices[T comparable](a, b *Slice[T]) bool {
	return a.first == b.first && slices.Equal(a.rest, b.rest)
}
