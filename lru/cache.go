package lru

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU map safe for concurrent use.
type Cache[K comparable, V any] struct {
	order    *list.List
	items    map[K]*list.Element
	capacity int
	mx       sync.Mutex
}

func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		order:    list.New(),
		items:    make(map[K]*list.Element),
		capacity: capacity,
	}
}

func (c *Cache[K, V]) Put(k K, v V) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if el, ok := c.items[k]; ok {
		el.Value.(*entry[K, V]).value = v
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() == c.capacity {
		back := c.order.Back()
		c.order.Remove(back)
		delete(c.items, back.Value.(*entry[K, V]).key)
	}

	c.items[k] = c.order.PushFront(&entry[K, V]{key: k, value: v})
}

func (c *Cache[K, V]) Get(k K) (v V, ok bool) {
	c.mx.Lock()
	defer c.mx.Unlock()

	el, ok := c.items[k]
	if !ok {
		return v, false
	}

	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

func (c *Cache[K, V]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return c.order.Len()
}
