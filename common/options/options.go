package options

// Option 构造参数接口
type Option[T any] interface {
	Apply(t *T)
}

// WrapperOptions 函数形式的 Option
type WrapperOptions[T any] func(t *T)

// Apply 实现 Option 接口
func (opt WrapperOptions[T]) Apply(t *T) {
	opt(t)
}

// Apply 依次应用 opts 到 t 上 nil 的 Option 会被跳过
func Apply[T any](t *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
	return t
}
