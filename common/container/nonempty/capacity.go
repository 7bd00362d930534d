package nonempty

import (
	"fmt"
	"math"
)

// base 首元素占用的容量
const base = 1

// Capacity 非空容器的容量
//
// total 为总容量 包括首元素占用的 1 个位置; additional 为其余元素部分的容量.
// 例如 NewSlice(x) 的总容量为 1 额外容量为 0.
type Capacity struct {
	total      int
	additional int
}

// NewTotalCapacity 按总容量构造 小于 1 时按 1 处理
func NewTotalCapacity(capacity int) Capacity {
	total := max(capacity, base)
	return Capacity{
		total:      total,
		additional: total - base,
	}
}

// NewAdditionalCapacity 按额外容量构造 负数按 0 处理
func NewAdditionalCapacity(capacity int) Capacity {
	additional := min(max(capacity, 0), math.MaxInt-base)
	return Capacity{
		total:      additional + base,
		additional: additional,
	}
}

// Total 总容量
func (c Capacity) Total() int {
	if c.total < base {
		return base
	}
	return c.total
}

// Additional 额外容量
func (c Capacity) Additional() int {
	return c.additional
}

func (c Capacity) String() string {
	return fmt.Sprintf("capacity(total: %d, additional: %d)", c.Total(), c.additional)
}
