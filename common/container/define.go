package container

// Container 普通容器接口 允许为空
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Values() []T
}
