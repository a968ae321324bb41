package bizinfo

import (
	"sync"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// CacheState is the lifecycle state of one cached listing.
type CacheState int

const (
	CacheEmpty CacheState = iota
	CacheFetching
	CacheFresh
	CacheStale
	CacheFailed
)

func (s CacheState) String() string {
	switch s {
	case CacheFetching:
		return "fetching"
	case CacheFresh:
		return "fresh"
	case CacheStale:
		return "stale"
	case CacheFailed:
		return "failed"
	default:
		return "empty"
	}
}

type cacheEntry struct {
	state     CacheState
	projects  []models.Project
	fetchedAt time.Time
	gen       uint64
	err       error
}

// listingCache keys listings by query parameters with a fixed freshness
// window. Every fetch attempt gets a generation number; a completion with a
// generation older than the stored entry is discarded, so a slow response
// can never overwrite a newer one.
type listingCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	nextGen uint64
	entries map[string]*cacheEntry
}

func newListingCache(ttl time.Duration) *listingCache {
	return &listingCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// Fresh returns the cached listing when its freshness window has not
// elapsed. It also demotes an expired entry to stale.
func (c *listingCache) Fresh(key string) ([]models.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.state != CacheFresh {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		entry.state = CacheStale
		return nil, false
	}
	return entry.projects, true
}

// Begin marks the key as fetching and returns the attempt's generation.
func (c *listingCache) Begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextGen++
	gen := c.nextGen

	entry, ok := c.entries[key]
	if !ok {
		entry = &cacheEntry{}
		c.entries[key] = entry
	}
	if entry.state != CacheFresh {
		entry.state = CacheFetching
	}
	entry.gen = gen
	return gen
}

// Complete stores a fetched listing unless a newer attempt has started for
// the key since gen was issued.
func (c *listingCache) Complete(key string, gen uint64, projects []models.Project) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || gen < entry.gen {
		return false
	}
	entry.state = CacheFresh
	entry.projects = projects
	entry.fetchedAt = c.now()
	entry.err = nil
	return true
}

// Fail records a fetch failure. Prior data, if any, survives as stale so a
// manual retry can still show something.
func (c *listingCache) Fail(key string, gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || gen < entry.gen {
		return
	}
	if entry.projects != nil {
		entry.state = CacheStale
	} else {
		entry.state = CacheFailed
	}
	entry.err = err
}

// State exposes the entry state for observability and tests.
func (c *listingCache) State(key string) CacheState {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return CacheEmpty
	}
	if entry.state == CacheFresh && c.now().Sub(entry.fetchedAt) >= c.ttl {
		entry.state = CacheStale
	}
	return entry.state
}
