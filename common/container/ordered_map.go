package container

import (
	"iter"
	"log/slog"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// OrderedMap 按插入顺序迭代的 Map 线程不安全
// 覆盖已有 key 的值不会改变其顺序
type OrderedMap[K comparable, V any] struct {
	elements *linkedhashmap.Map[K, V]
}

// NewOrderedMap 构造函数
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		elements: linkedhashmap.New[K, V](),
	}
}

// CollectOrderedMap 从迭代器构造 重复的 key 保留最后一个值
func CollectOrderedMap[K comparable, V any](seq iter.Seq2[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for k, v := range seq {
		m.elements.Put(k, v)
	}
	return m
}

// Empty 判断是否为空
func (m *OrderedMap[K, V]) Empty() bool {
	return m.elements.Empty()
}

// Size 获取元素个数
func (m *OrderedMap[K, V]) Size() int {
	return m.elements.Size()
}

// Clear 清空所有元素
func (m *OrderedMap[K, V]) Clear() {
	m.elements.Clear()
}

// Keys 按顺序获取所有 key
func (m *OrderedMap[K, V]) Keys() []K {
	return m.elements.Keys()
}

// Values 按顺序获取所有 value
func (m *OrderedMap[K, V]) Values() []V {
	return m.elements.Values()
}

// Exist 判断 key 是否存在
func (m *OrderedMap[K, V]) Exist(key K) bool {
	_, exist := m.elements.Get(key)
	return exist
}

// Get 获取 map 元素
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	return m.elements.Get(key)
}

// Insert 插入元素 返回旧值
func (m *OrderedMap[K, V]) Insert(key K, val V) (old V, replaced bool) {
	old, replaced = m.elements.Get(key)
	m.elements.Put(key, val)
	return
}

// Delete 删除某个元素 返回被删除的值
func (m *OrderedMap[K, V]) Delete(key K) (val V, ok bool) {
	if val, ok = m.elements.Get(key); ok {
		m.elements.Remove(key)
	}
	return
}

// First 最早插入的元素
func (m *OrderedMap[K, V]) First() (key K, val V, ok bool) {
	it := m.elements.Iterator()
	if it.Next() {
		return it.Key(), it.Value(), true
	}
	return
}

// PopFirst 移除并返回最早插入的元素
func (m *OrderedMap[K, V]) PopFirst() (key K, val V, ok bool) {
	if key, val, ok = m.First(); ok {
		m.elements.Remove(key)
	}
	return
}

// Clone 浅拷贝
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return CollectOrderedMap(m.All())
}

// All 按顺序迭代所有键值对
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.elements.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// LogValue 实现 slog.LogValuer
func (m *OrderedMap[K, V]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", m.Size()),
		slog.Any("keys", m.Keys()),
	)
}
