package nonempty

import (
	"iter"
	"log/slog"

	"go_nonempty/common/container"
)

// Deque 非空双端队列
//
// 队头单独保存, 其余元素保存在 container.Deque 中. 零值包含一个零值元素.
type Deque[T any] struct {
	first T
	rest  *container.Deque[T]
}

// NewDeque 用队头和其余元素构造 rest 依次从尾部入队
func NewDeque[T any](first T, rest ...T) *Deque[T] {
	return &Deque[T]{
		first: first,
		rest:  container.NewDeque(rest...),
	}
}

// DequeFrom 从普通双端队列构造 plain 为 nil 或为空时返回 ErrEmptySource
func DequeFrom[T any](plain *container.Deque[T]) (*Deque[T], error) {
	if plain == nil || plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownDeque(plain.Clone()), nil
}

// DequeFromSeq 从迭代器构造 迭代器为空时返回 ErrEmptySource
func DequeFromSeq[T any](seq iter.Seq[T]) (*Deque[T], error) {
	plain := container.CollectDeque(seq)
	if plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownDeque(plain), nil
}

// ownDeque 直接接管非空的 plain
func ownDeque[T any](plain *container.Deque[T]) *Deque[T] {
	first, _ := plain.PopFront()
	return &Deque[T]{
		first: first,
		rest:  plain,
	}
}

func (d *Deque[T]) dynamic() *container.Deque[T] {
	if d.rest == nil {
		d.rest = container.NewDeque[T]()
	}
	return d.rest
}

// First 队头 与 Front 相同
func (d *Deque[T]) First() T {
	return d.first
}

// Front 队头
func (d *Deque[T]) Front() T {
	return d.first
}

// Back 队尾
func (d *Deque[T]) Back() T {
	if back, ok := d.dynamic().Back(); ok {
		return back
	}
	return d.first
}

// Len 元素个数
func (d *Deque[T]) Len() int {
	return base + d.dynamic().Size()
}

// At 按下标访问 0 为队头
func (d *Deque[T]) At(i int) (val T, ok bool) {
	if i == 0 {
		return d.first, true
	}
	return d.dynamic().At(i - 1)
}

// PushFront 头部入队 原队头移入其余部分
func (d *Deque[T]) PushFront(val T) {
	d.dynamic().PushFront(d.first)
	d.first = val
}

// PushBack 尾部入队
func (d *Deque[T]) PushBack(val T) {
	d.dynamic().PushBack(val)
}

// PopFront 头部出队 只剩一个元素时返回 false
func (d *Deque[T]) PopFront() (val T, ok bool) {
	next, ok := d.dynamic().PopFront()
	if !ok {
		return
	}
	val, d.first = d.first, next
	return val, true
}

// PopBack 尾部出队 只剩一个元素时返回 false
func (d *Deque[T]) PopBack() (val T, ok bool) {
	return d.dynamic().PopBack()
}

// Iter 从队头到队尾的迭代器
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(d.first) {
			return
		}
		for v := range d.dynamic().Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values 从队头到队尾的切片
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.Len())
	for v := range d.Iter() {
		values = append(values, v)
	}
	return values
}

// ToPlain 转换为普通双端队列
func (d *Deque[T]) ToPlain() *container.Deque[T] {
	return container.CollectDeque(d.Iter())
}

// Clone 复制
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{
		first: d.first,
		rest:  d.dynamic().Clone(),
	}
}

// LogValue 实现 slog.LogValuer
func (d *Deque[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", d.Len()),
		slog.Any("front", d.first),
	)
}
