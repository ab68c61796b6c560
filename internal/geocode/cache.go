package geocode

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// DefaultTTL is how long resolved coordinates stay valid in the cache.
// City coordinates do not move; a day keeps provider traffic low without
// pinning stale country data forever.
const DefaultTTL = 24 * time.Hour

// Cache is a TTL-bounded coordinate cache keyed by normalized city name.
// Safe for concurrent use; overlapping puts are last-write-wins. Expired
// entries are dropped lazily on read, there is no background sweeper.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	clock   clockwork.Clock
}

type cacheEntry struct {
	coords    models.CityCoordinates
	expiresAt time.Time
}

// NewCache creates an empty cache. A nil clock uses real time; tests pass a
// fake clock to exercise expiry deterministically.
func NewCache(clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		clock:   clock,
	}
}

// CacheKey normalizes a city name for use as a cache or ledger key:
// lowercased with runs of whitespace collapsed to single spaces.
func CacheKey(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

func (c *Cache) Get(key string) (models.CityCoordinates, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return models.CityCoordinates{}, false
	}
	if c.clock.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Recheck under the write lock; a concurrent Put may have refreshed it.
		if cur, ok := c.entries[key]; ok && c.clock.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return models.CityCoordinates{}, false
	}
	return e.coords, true
}

// Put stores coords under key, overwriting any existing entry.
func (c *Cache) Put(key string, coords models.CityCoordinates, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		coords:    coords,
		expiresAt: c.clock.Now().Add(ttl),
	}
	c.mu.Unlock()
}
