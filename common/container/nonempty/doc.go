/*
Package nonempty 提供永不为空的容器.

Slice, Set, Map 和 Deque 分别对应切片、集合、映射和双端队列. 每个容器由两部分组成:
一个单独保存的首元素, 以及一个允许为空的普通容器保存其余元素. 首元素始终存在,
所以 First 之类的访问不需要返回 ok 标志.

构造方式有两种:

	s := nonempty.NewSlice(1, 2, 3)             // 给定首元素, 不会失败
	s, err := nonempty.SliceFrom([]int{1, 2, 3}) // 来源为空时返回 ErrEmptySource

移除操作遵循同一个约定: 如果移除会让容器变空, 操作被拒绝, 返回 false, 容器保持不变.
需要移除最后一个元素时, 先用 ToPlain 转换成普通容器.

Set 和 Map 的其余元素按插入顺序保存, 移除首元素时提升最早插入的元素, 因此行为是确定的.

所有容器都不是线程安全的.
*/
package nonempty
