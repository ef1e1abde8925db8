// Package cache provides the process-lifetime response cache.
// It maps a normalized search-parameter key to a cached response with
// TTL-based staleness; expired entries are simply re-fetched, there is no
// other eviction policy.
package cache

import (
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long cached search responses stay fresh.
const DefaultTTL = time.Hour

// ResponseCache is a TTL cache for search responses, safe for concurrent
// use. It wraps an in-memory store; nothing survives process restart.
type ResponseCache struct {
	store *gocache.Cache
}

// Stats describes the cache's current contents.
type Stats struct {
	// TotalEntries counts every stored entry, fresh or stale
	TotalEntries int `json:"total_entries"`

	// ValidEntries counts entries still within their TTL
	ValidEntries int `json:"valid_entries"`

	// ExpiredEntries counts stale entries not yet cleaned up
	ExpiredEntries int `json:"expired_entries"`
}

// New creates a ResponseCache with the given TTL. A non-positive TTL
// falls back to DefaultTTL. Stale entries are cleaned up at twice the TTL.
func New(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached value for key and whether a fresh entry exists.
func (c *ResponseCache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores a value under key with the cache's default TTL.
func (c *ResponseCache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Clear drops every entry.
func (c *ResponseCache) Clear() {
	c.store.Flush()
}

// Stats reports entry counts. Expired entries linger until the cleanup
// pass runs, so total may exceed valid.
func (c *ResponseCache) Stats() Stats {
	total := c.store.ItemCount()
	valid := len(c.store.Items())
	return Stats{
		TotalEntries:   total,
		ValidEntries:   valid,
		ExpiredEntries: total - valid,
	}
}

// Key builds a deterministic cache key from search parameters.
// Airport sets are sorted so equivalent requests share an entry.
func Key(origins, destinations []string, parts ...string) string {
	elems := make([]string, 0, 2+len(parts))
	elems = append(elems, joinSorted(origins), joinSorted(destinations))
	elems = append(elems, parts...)
	return strings.Join(elems, "_")
}

// joinSorted joins a copy of the values in sorted order.
func joinSorted(values []string) string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
