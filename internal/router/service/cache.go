package service

import (
	"sync"
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
)

// cacheEntry holds one partition's descriptor plus its tombstone
// timestamp. deleteAt stays zero while the partition is open; once set it
// marks when the partition was last seen closing, and the entry becomes
// reapable after the closed-shard TTL elapses.
type cacheEntry struct {
	descriptor domain.PartitionDescriptor
	deleteAt   time.Time
}

// partitionCache is the id -> descriptor map shared between the rebuild
// pipeline (writer) and lookup callers (readers). Closed partitions stay
// resolvable for a grace window so in-flight records routed just before a
// repartition still validate.
type partitionCache struct {
	mu           sync.RWMutex
	entries      map[domain.PartitionID]*cacheEntry
	open         map[domain.PartitionID]struct{}
	needsCleanup bool
}

func newPartitionCache() *partitionCache {
	return &partitionCache{
		entries: make(map[domain.PartitionID]*cacheEntry),
		open:    make(map[domain.PartitionID]struct{}),
	}
}

// get returns a copy of the cached descriptor, regardless of whether the
// partition is still open.
func (c *partitionCache) get(id domain.PartitionID) (domain.PartitionDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if !ok {
		return domain.PartitionDescriptor{}, false
	}
	return e.descriptor, true
}

// isOpen reports whether the id belongs to the currently-open set.
func (c *partitionCache) isOpen(id domain.PartitionID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.open[id]
	return ok
}

func (c *partitionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *partitionCache) openCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.open)
}

// merge folds a complete fetch into the cache. Descriptors that are still
// open are inserted or refreshed live; descriptors that closed in flight,
// and entries the fetch no longer returned, are tombstoned at now. An
// entry already tombstoned keeps its original deadline.
func (c *partitionCache) merge(descriptors []domain.PartitionDescriptor, open map[domain.PartitionID]struct{}, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range descriptors {
		e, ok := c.entries[d.ID]
		if !ok {
			e = &cacheEntry{}
			c.entries[d.ID] = e
		}
		e.descriptor = d
		if _, stillOpen := open[d.ID]; stillOpen {
			e.deleteAt = time.Time{}
		} else if e.deleteAt.IsZero() {
			e.deleteAt = now
			c.needsCleanup = true
		}
	}

	for id, e := range c.entries {
		if _, stillOpen := open[id]; stillOpen {
			continue
		}
		if e.deleteAt.IsZero() {
			e.deleteAt = now
			c.needsCleanup = true
		}
	}

	c.open = open
}

// reap removes tombstoned entries whose deadline elapsed at least ttl
// ago. A clean cache costs only a flag check.
func (c *partitionCache) reap(now time.Time, ttl time.Duration) int {
	c.mu.RLock()
	dirty := c.needsCleanup
	c.mu.RUnlock()
	if !dirty {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	removed, remaining := 0, 0
	for id, e := range c.entries {
		if _, stillOpen := c.open[id]; stillOpen {
			continue
		}
		if !e.deleteAt.IsZero() && now.Sub(e.deleteAt) >= ttl {
			delete(c.entries, id)
			removed++
		} else {
			remaining++
		}
	}
	c.needsCleanup = remaining > 0
	return removed
}
