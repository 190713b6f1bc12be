package main

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is a simple in-memory TTL cache for elevation responses.
// To avoid the map-memory-leak pattern, it periodically rebuilds.
// The clock is injectable so tests can drive expiry deterministically.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	clock   clockwork.Clock
	stop    chan struct{}
}

// NewCache creates a cache running periodic cleanup on the given clock.
// A nil clock falls back to real time.
func NewCache(clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Cache{
		entries: make(map[string]cacheEntry),
		clock:   clock,
		stop:    make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get returns the cached value if present and not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.clock.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Set stores a value with the given TTL.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: c.clock.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *Cache) Close() {
	close(c.stop)
}

// cleanup runs every 5 minutes, rebuilding the map to reclaim memory.
func (c *Cache) cleanup() {
	ticker := c.clock.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			now := c.clock.Now()
			c.mu.Lock()
			fresh := make(map[string]cacheEntry, len(c.entries)/2)
			for k, v := range c.entries {
				if now.Before(v.expiresAt) {
					fresh[k] = v
				}
			}
			c.entries = fresh
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}
