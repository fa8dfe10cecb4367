// Package cache provides a small LRU cache for text resources that are
// costly to rebuild: opentype faces and shaped label widths.
package cache

import "sync"

// Cache is a generic LRU cache with a hard limit.
//
// When an insert would exceed the limit the least recently used entry is
// evicted and passed to the eviction callback, if any.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	limit   int
	items   map[K]*item[K, V]
	head    *item[K, V] // most recently used
	tail    *item[K, V] // least recently used
	onEvict func(K, V)
	hits    uint64
	misses  uint64
}

// item is a node of the recency list.
type item[K comparable, V any] struct {
	key   K
	value V
	prev  *item[K, V]
	next  *item[K, V]
}

// New creates a cache holding at most limit entries. A limit of 0 means
// unlimited. onEvict may be nil.
func New[K comparable, V any](limit int, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		limit:   limit,
		items:   make(map[K]*item[K, V]),
		onEvict: onEvict,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(it)
	return it.value, true
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs under the lock; a failed create stores nothing.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[key]; ok {
		c.hits++
		c.moveToFront(it)
		return it.value, nil
	}
	c.misses++

	value, err := create()
	if err != nil {
		return value, err
	}
	it := &item[K, V]{key: key, value: value}
	c.items[key] = it
	c.pushFront(it)
	if c.limit > 0 && len(c.items) > c.limit {
		c.evict(c.tail)
	}
	return value, nil
}

// Clear evicts every entry, oldest first.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.tail != nil {
		c.evict(c.tail)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:    len(c.items),
		Limit:  c.limit,
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// evict unlinks it and reports it to onEvict. Caller must hold c.mu.
func (c *Cache[K, V]) evict(it *item[K, V]) {
	c.unlink(it)
	delete(c.items, it.key)
	if c.onEvict != nil {
		c.onEvict(it.key, it.value)
	}
}

func (c *Cache[K, V]) pushFront(it *item[K, V]) {
	it.prev = nil
	it.next = c.head
	if c.head != nil {
		c.head.prev = it
	}
	c.head = it
	if c.tail == nil {
		c.tail = it
	}
}

func (c *Cache[K, V]) unlink(it *item[K, V]) {
	if it.prev != nil {
		it.prev.next = it.next
	} else {
		c.head = it.next
	}
	if it.next != nil {
		it.next.prev = it.prev
	} else {
		c.tail = it.prev
	}
	it.prev, it.next = nil, nil
}

func (c *Cache[K, V]) moveToFront(it *item[K, V]) {
	if c.head == it {
		return
	}
	c.unlink(it)
	c.pushFront(it)
}
