package cache

import (
	"container/list"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/chronolens/backend/internal/domain"
)

const defaultCapacity = 1024

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	key        string
	value      interface{}
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache with TTL staleness and a
// fixed capacity. When full, the least-recently-used entry is evicted, so
// memory stays bounded under high key cardinality.
type MemoryCache struct {
	capacity int
	mutex    sync.Mutex
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

// NewMemoryCache creates a new in-memory cache holding at most capacity entries
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get retrieves a value from the cache. Expired entries read as misses;
// they stay in place until overwritten or evicted by capacity pressure.
func (c *MemoryCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	item := element.Value.(*cacheItem)
	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	c.order.MoveToFront(element)
	return item.value, nil
}

// Set stores a value in the cache with TTL, evicting the least-recently-used
// entry when the cache is full
func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	// Serialize to JSON and back to ensure consistent data structure
	// This mimics Redis behavior
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var storedValue interface{}
	if err := json.Unmarshal(jsonData, &storedValue); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[key]; exists {
		item := element.Value.(*cacheItem)
		item.value = storedValue
		item.expiration = time.Now().Add(ttl)
		c.order.MoveToFront(element)
		return nil
	}

	element := c.order.PushFront(&cacheItem{
		key:        key,
		value:      storedValue,
		expiration: time.Now().Add(ttl),
	})
	c.items[key] = element

	if c.order.Len() > c.capacity {
		c.evictOldest()
	}

	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[key]; exists {
		c.order.Remove(element)
		delete(c.items, key)
	}
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[key]
	if !exists {
		return false, nil
	}
	return !time.Now().After(element.Value.(*cacheItem).expiration), nil
}

// evictOldest drops the back of the recency list; caller holds the lock
func (c *MemoryCache) evictOldest() {
	element := c.order.Back()
	if element == nil {
		return
	}
	c.order.Remove(element)
	delete(c.items, element.Value.(*cacheItem).key)
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}
