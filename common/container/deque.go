package container

import (
	"iter"
	"log/slog"

	"github.com/gammazero/deque"
)

// Deque 双端队列 线程不安全
// 底层使用环形缓冲区 两端的入队出队都是 O(1)
type Deque[T any] struct {
	data deque.Deque[T]
}

// NewDeque 创建双端队列 values 依次从尾部入队
func NewDeque[T any](values ...T) *Deque[T] {
	d := &Deque[T]{}
	for _, v := range values {
		d.data.PushBack(v)
	}
	return d
}

// CollectDeque 从迭代器构造双端队列
func CollectDeque[T any](seq iter.Seq[T]) *Deque[T] {
	d := &Deque[T]{}
	for v := range seq {
		d.data.PushBack(v)
	}
	return d
}

// Empty 判断队列是否为空
func (d *Deque[T]) Empty() bool {
	return d.data.Len() <= 0
}

// Size 获取队列长度
func (d *Deque[T]) Size() int {
	return d.data.Len()
}

// Clear 清空队列
func (d *Deque[T]) Clear() {
	d.data.Clear()
}

// Values 从头到尾获取队列数据
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.data.Len())
	for i := 0; i < d.data.Len(); i++ {
		values = append(values, d.data.At(i))
	}
	return values
}

// PushBack 尾部入队
func (d *Deque[T]) PushBack(val T) {
	d.data.PushBack(val)
}

// PushFront 头部入队
func (d *Deque[T]) PushFront(val T) {
	d.data.PushFront(val)
}

// PopFront 头部出队
func (d *Deque[T]) PopFront() (val T, ok bool) {
	if d.Empty() {
		return
	}
	return d.data.PopFront(), true
}

// PopBack 尾部出队
func (d *Deque[T]) PopBack() (val T, ok bool) {
	if d.Empty() {
		return
	}
	return d.data.PopBack(), true
}

// Front 查看队头
func (d *Deque[T]) Front() (val T, ok bool) {
	if d.Empty() {
		return
	}
	return d.data.Front(), true
}

// Back 查看队尾
func (d *Deque[T]) Back() (val T, ok bool) {
	if d.Empty() {
		return
	}
	return d.data.Back(), true
}

// At 按下标访问 0 为队头
func (d *Deque[T]) At(i int) (val T, ok bool) {
	if i < 0 || i >= d.data.Len() {
		return
	}
	return d.data.At(i), true
}

// Clone 浅拷贝
func (d *Deque[T]) Clone() *Deque[T] {
	return CollectDeque(d.Iter())
}

// Iter 从头到尾的迭代器
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.data.Len(); i++ {
			if !yield(d.data.At(i)) {
				return
			}
		}
	}
}

// LogValue 实现 slog.LogValuer
func (d *Deque[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", d.Size()),
	)
}
