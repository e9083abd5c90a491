package gmaps

import (
	"hash/fnv"
	"sync"
	"time"
)

// Cache stores successful response bodies keyed by the canonical request
// (URL and query without the credential).
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// InMemoryCache is a sharded TTL map.
type InMemoryCache struct {
	shards    []*cacheShard
	numShards int
	now       func() time.Time
}

type cacheShard struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
}

// NewInMemoryCache creates an empty cache with 16 shards.
func NewInMemoryCache() *InMemoryCache {
	numShards := 16
	shards := make([]*cacheShard, numShards)
	for i := range shards {
		shards[i] = &cacheShard{
			store: make(map[string]cacheEntry),
		}
	}
	return &InMemoryCache{
		shards:    shards,
		numShards: numShards,
		now:       time.Now,
	}
}

func (c *InMemoryCache) getShard(key string) *cacheShard {
	hash := fnv.New32a()
	hash.Write([]byte(key))
	return c.shards[hash.Sum32()%uint32(c.numShards)]
}

// Get returns a live entry. Expired entries are dropped.
func (c *InMemoryCache) Get(key string) ([]byte, bool) {
	shard := c.getShard(key)
	shard.mu.RLock()
	entry, exists := shard.store[key]
	shard.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		shard.mu.Lock()
		if cur, ok := shard.store[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(shard.store, key)
		}
		shard.mu.Unlock()
		return nil, false
	}
	return entry.body, true
}

// Set stores body for ttl.
func (c *InMemoryCache) Set(key string, body []byte, ttl time.Duration) {
	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.store[key] = cacheEntry{body: body, expiresAt: c.now().Add(ttl)}
}

// Delete removes key.
func (c *InMemoryCache) Delete(key string) {
	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	delete(shard.store, key)
}

// Clear removes every entry.
func (c *InMemoryCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.store = make(map[string]cacheEntry)
		shard.mu.Unlock()
	}
}

// Len counts entries, including expired ones not yet evicted.
func (c *InMemoryCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.store)
		shard.mu.RUnlock()
	}
	return total
}

// Evict drops expired entries and returns how many were removed.
func (c *InMemoryCache) Evict() int {
	now := c.now()
	removed := 0
	for _, shard := range c.shards {
		shard.mu.Lock()
		for k, e := range shard.store {
			if now.After(e.expiresAt) {
				delete(shard.store, k)
				removed++
			}
		}
		shard.mu.Unlock()
	}
	return removed
}
