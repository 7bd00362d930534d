package nonempty

import (
	"iter"
	"log/slog"

	"go_nonempty/common/container"
)

// Pair 键值对
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map 非空映射
//
// 首个键值对单独保存, 其余的保存在按插入顺序迭代的 container.OrderedMap 中,
// 首个键不会出现在其中. 零值包含一个零值键值对.
type Map[K comparable, V any] struct {
	first Pair[K, V]
	rest  *container.OrderedMap[K, V]
}

// NewMap 用一个键值对构造
func NewMap[K comparable, V any](key K, val V) *Map[K, V] {
	return &Map[K, V]{
		first: Pair[K, V]{Key: key, Value: val},
		rest:  container.NewOrderedMap[K, V](),
	}
}

// NewMapWithRest 用首个键值对和普通映射构造 rest 会被复制
// rest 中与 key 相同的键被丢弃 以传入的 val 为准
func NewMapWithRest[K comparable, V any](key K, val V, rest *container.OrderedMap[K, V]) *Map[K, V] {
	if rest == nil {
		return NewMap(key, val)
	}
	m := &Map[K, V]{
		first: Pair[K, V]{Key: key, Value: val},
		rest:  rest.Clone(),
	}
	m.rest.Delete(key)
	return m
}

// MapFrom 从普通映射构造 最早插入的键值对成为首个
// plain 为 nil 或为空时返回 ErrEmptySource
func MapFrom[K comparable, V any](plain *container.OrderedMap[K, V]) (*Map[K, V], error) {
	if plain == nil || plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownMap(plain.Clone()), nil
}

// MapFromSeq2 从迭代器构造 重复的键保留最后一个值
// 迭代器为空时返回 ErrEmptySource
func MapFromSeq2[K comparable, V any](seq iter.Seq2[K, V]) (*Map[K, V], error) {
	plain := container.CollectOrderedMap(seq)
	if plain.Empty() {
		return nil, ErrEmptySource
	}
	return ownMap(plain), nil
}

// ownMap 直接接管非空的 plain
func ownMap[K comparable, V any](plain *container.OrderedMap[K, V]) *Map[K, V] {
	key, val, _ := plain.PopFirst()
	return &Map[K, V]{
		first: Pair[K, V]{Key: key, Value: val},
		rest:  plain,
	}
}

func (m *Map[K, V]) dynamic() *container.OrderedMap[K, V] {
	if m.rest == nil {
		m.rest = container.NewOrderedMap[K, V]()
	}
	return m.rest
}

// First 首个键值对
func (m *Map[K, V]) First() Pair[K, V] {
	return m.first
}

// Len 键值对个数
func (m *Map[K, V]) Len() int {
	return base + m.dynamic().Size()
}

// Get 获取 key 对应的值
func (m *Map[K, V]) Get(key K) (V, bool) {
	if key == m.first.Key {
		return m.first.Value, true
	}
	return m.dynamic().Get(key)
}

// Contains 判断 key 是否存在
func (m *Map[K, V]) Contains(key K) bool {
	return key == m.first.Key || m.dynamic().Exist(key)
}

// Insert 插入或覆盖 返回旧值
// key 与首个键相同时直接覆盖首个键值对的值
func (m *Map[K, V]) Insert(key K, val V) (old V, replaced bool) {
	if key == m.first.Key {
		old, m.first.Value = m.first.Value, val
		return old, true
	}
	return m.dynamic().Insert(key, val)
}

// Remove 删除 key 返回被删除的值
// 删除首个键时由最早插入的其余键值对补上. key 不存在或它是唯一的键时返回 false
func (m *Map[K, V]) Remove(key K) (val V, ok bool) {
	if key != m.first.Key {
		return m.dynamic().Delete(key)
	}
	p, ok := m.PopFirst()
	return p.Value, ok
}

// PopFirst 移除并返回首个键值对 只剩一个时返回 false
func (m *Map[K, V]) PopFirst() (p Pair[K, V], ok bool) {
	key, val, ok := m.dynamic().PopFirst()
	if !ok {
		return
	}
	p, m.first = m.first, Pair[K, V]{Key: key, Value: val}
	return p, true
}

// Keys 与 All 顺序相同的键
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values 与 All 顺序相同的值
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// All 首个键值对在前 其余按插入顺序
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !yield(m.first.Key, m.first.Value) {
			return
		}
		for k, v := range m.dynamic().All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Iter 以 Pair 形式迭代 顺序与 All 相同
func (m *Map[K, V]) Iter() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range m.All() {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// ToPlain 转换为普通映射 首个键值对排在最前
func (m *Map[K, V]) ToPlain() *container.OrderedMap[K, V] {
	return container.CollectOrderedMap(m.All())
}

// Clone 浅拷贝
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		first: m.first,
		rest:  m.dynamic().Clone(),
	}
}

// LogValue 实现 slog.LogValuer
func (m *Map[K, V]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", m.Len()),
		slog.Any("first", m.first.Key),
	)
}
