package menu

import (
	"strconv"
	"sync"
	"time"

	"menu-builder/feature/menu/models"

	"golang.org/x/sync/singleflight"
)

// treeCache memoizes read-back menu trees per restaurant with a TTL.
// Singleflight collapses concurrent rebuilds of the same tree so a popular
// menu page cannot stampede the database.
type treeCache struct {
	mu      sync.RWMutex
	entries map[uint]*treeCacheEntry
	sf      singleflight.Group
	ttl     time.Duration
}

type treeCacheEntry struct {
	tree  *models.Restaurant
	built time.Time
}

func (e *treeCacheEntry) expired(ttl time.Duration) bool {
	if ttl == 0 {
		return true // caching disabled
	}
	return time.Since(e.built) > ttl
}

func newTreeCache(ttl time.Duration) *treeCache {
	return &treeCache{
		entries: make(map[uint]*treeCacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached tree for the restaurant, building it via load on a
// miss or expiry. The returned tree is shared between callers and must be
// treated as read-only; mutating operations go through the engine and
// Invalidate instead.
func (c *treeCache) Get(restaurantID uint, load func() (*models.Restaurant, error)) (*models.Restaurant, error) {
	c.mu.RLock()
	entry, ok := c.entries[restaurantID]
	c.mu.RUnlock()

	if ok && !entry.expired(c.ttl) {
		return entry.tree, nil
	}

	key := strconv.FormatUint(uint64(restaurantID), 10)
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		c.mu.RLock()
		entry, ok := c.entries[restaurantID]
		c.mu.RUnlock()
		if ok && !entry.expired(c.ttl) {
			return entry.tree, nil
		}

		tree, err := load()
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[restaurantID] = &treeCacheEntry{tree: tree, built: time.Now()}
			c.mu.Unlock()
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Restaurant), nil
}

// Invalidate drops the cached tree after any write to the restaurant.
func (c *treeCache) Invalidate(restaurantID uint) {
	c.mu.Lock()
	delete(c.entries, restaurantID)
	c.mu.Unlock()
}
