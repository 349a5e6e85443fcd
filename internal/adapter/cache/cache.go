package cache

import (
	"fmt"
	"strings"
	"sync"

	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"github.com/couchcryptid/naca-airfoil-service/internal/observability"
)

// CachedGenerator wraps a ProfileGenerator with an in-memory LRU cache.
type CachedGenerator struct {
	inner   domain.ProfileGenerator
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedGenerator creates a cache decorator around a generator.
func NewCachedGenerator(inner domain.ProfileGenerator, maxEntries int, metrics *observability.Metrics) *CachedGenerator {
	return &CachedGenerator{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Generate returns a copy of the cached profile for req, generating and
// storing it on a miss. Failed requests are not cached.
func (c *CachedGenerator) Generate(req domain.Request) (domain.Profile, error) {
	key := cacheKey(req)
	if p, ok := c.cache.get(key); ok {
		c.metrics.GeneratorCache.WithLabelValues("hit").Inc()
		return p.Clone(), nil
	}
	c.metrics.GeneratorCache.WithLabelValues("miss").Inc()

	p, err := c.inner.Generate(req)
	if err != nil {
		return p, err
	}
	c.cache.put(key, p.Clone())
	return p, nil
}

func cacheKey(req domain.Request) string {
	return fmt.Sprintf("%d|%s|%g|%d|%t",
		req.Series.Digits(), strings.TrimSpace(req.Digits), req.Chord, req.Points, req.ClosedTrailingEdge)
}

// lruCache is a simple thread-safe LRU cache for Profiles.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Profile
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Profile{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries <= 0 {
		return
	}
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
