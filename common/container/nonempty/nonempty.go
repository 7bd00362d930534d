package nonempty

import (
	"cmp"
	"iter"

	"go_nonempty/common/options"
)

// Container 非空容器通用接口
type Container[T any] interface {
	// First 首元素 始终存在
	First() T
	// Len 元素个数 至少为 1
	Len() int
	// Iter 从首元素开始的迭代器 每次调用都会重新开始
	Iter() iter.Seq[T]
}

// BuildOptions 构造参数
type BuildOptions struct {
	capacity Capacity
}

// WithCapacity 预分配容量
func WithCapacity(capacity Capacity) options.Option[BuildOptions] {
	return options.WrapperOptions[BuildOptions](func(o *BuildOptions) {
		o.capacity = capacity
	})
}

func buildOptions(opts ...options.Option[BuildOptions]) *BuildOptions {
	return options.Apply(&BuildOptions{capacity: NewAdditionalCapacity(0)}, opts...)
}

// Reduce 从首元素开始依次合并 非空容器上总是有结果
func Reduce[T any](c Container[T], fn func(acc, val T) T) T {
	var acc T
	started := false
	for v := range c.Iter() {
		if !started {
			acc, started = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc
}

// Max 最大值
func Max[T cmp.Ordered](c Container[T]) T {
	return Reduce(c, func(acc, val T) T {
		return max(acc, val)
	})
}

// Min 最小值
func Min[T cmp.Ordered](c Container[T]) T {
	return Reduce(c, func(acc, val T) T {
		return min(acc, val)
	})
}
