package weather

import (
	"fmt"
	"sync"
	"time"
)

type cacheEntry struct {
	dashboard *Dashboard
	storedAt  time.Time
}

// Cache is a read-through cache of assembled dashboards with a fixed
// freshness window, keyed by rounded coordinates and unit preference.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

// NewCache creates a dashboard cache with the given freshness window.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives the cache key for a request. Coordinates are rounded to two
// decimals so nearby geolocation fixes share an entry.
func Key(lat, lon float64, units string) string {
	return fmt.Sprintf("%.2f,%.2f,%s", lat, lon, units)
}

// Get returns the cached dashboard if one exists and is still fresh.
func (c *Cache) Get(key string) (*Dashboard, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.storedAt) > c.ttl {
		return nil, false
	}

	return entry.dashboard, true
}

// Put stores a dashboard under the key, resetting its freshness.
func (c *Cache) Put(key string, d *Dashboard) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{dashboard: d, storedAt: c.now()}
	c.mu.Unlock()
}
