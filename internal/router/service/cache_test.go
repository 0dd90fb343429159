package service

import (
	"testing"
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
)

func openSet(ids ...domain.PartitionID) map[domain.PartitionID]struct{} {
	s := make(map[domain.PartitionID]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestCacheMergeAndGet(t *testing.T) {
	c := newPartitionCache()
	now := time.Now()

	c.merge([]domain.PartitionDescriptor{
		desc(1, 0, 4, false),
		desc(2, 5, 9, false),
	}, openSet(1, 2), now)

	if c.size() != 2 || c.openCount() != 2 {
		t.Fatalf("size = %d, open = %d; want 2, 2", c.size(), c.openCount())
	}
	d, ok := c.get(1)
	if !ok || d.ID != 1 {
		t.Errorf("get(1) = %+v, %v", d, ok)
	}
	if _, ok := c.get(3); ok {
		t.Error("get(3) must miss")
	}
}

func TestCacheTombstoneOnClose(t *testing.T) {
	c := newPartitionCache()
	t0 := time.Now()

	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, false)}, openSet(1), t0)

	// The partition split; the parent comes back closed alongside two
	// children.
	t1 := t0.Add(time.Minute)
	c.merge([]domain.PartitionDescriptor{
		desc(1, 0, 9, true),
		desc(2, 0, 4, false),
		desc(3, 5, 9, false),
	}, openSet(2, 3), t1)

	// Closed partitions remain resolvable until reaped.
	if _, ok := c.get(1); !ok {
		t.Error("closed partition must stay resolvable before the TTL")
	}
	if c.isOpen(1) {
		t.Error("closed partition must not be in the open set")
	}
	if !c.isOpen(2) || !c.isOpen(3) {
		t.Error("children must be open")
	}
}

func TestCacheTombstoneForDroppedEntries(t *testing.T) {
	c := newPartitionCache()
	t0 := time.Now()

	c.merge([]domain.PartitionDescriptor{
		desc(1, 0, 4, false),
		desc(2, 5, 9, false),
	}, openSet(1, 2), t0)

	// A later fetch no longer returns id 1 at all.
	t1 := t0.Add(time.Minute)
	c.merge([]domain.PartitionDescriptor{desc(2, 5, 9, false)}, openSet(2), t1)

	if _, ok := c.get(1); !ok {
		t.Error("dropped entry must stay resolvable before the TTL")
	}

	ttl := 10 * time.Minute
	if removed := c.reap(t1.Add(ttl-time.Second), ttl); removed != 0 {
		t.Errorf("reap before deadline removed %d entries", removed)
	}
	if removed := c.reap(t1.Add(ttl), ttl); removed != 1 {
		t.Errorf("reap at deadline removed %d entries, want 1", removed)
	}
	if _, ok := c.get(1); ok {
		t.Error("reaped entry must be gone")
	}
	if _, ok := c.get(2); !ok {
		t.Error("open entry must survive the reap")
	}
}

func TestCacheTombstoneKeepsOriginalDeadline(t *testing.T) {
	c := newPartitionCache()
	t0 := time.Now()
	ttl := 10 * time.Minute

	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, true)}, openSet(), t0)

	// A second merge must not push the deadline out.
	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, true)}, openSet(), t0.Add(5*time.Minute))

	if removed := c.reap(t0.Add(ttl), ttl); removed != 1 {
		t.Errorf("reap removed %d entries, want 1", removed)
	}
}

func TestCacheReapSkipsClean(t *testing.T) {
	c := newPartitionCache()
	now := time.Now()

	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, false)}, openSet(1), now)

	// No tombstones: reap is a no-op flag check.
	if removed := c.reap(now.Add(time.Hour), time.Minute); removed != 0 {
		t.Errorf("reap on a clean cache removed %d entries", removed)
	}
	if c.size() != 1 {
		t.Errorf("size = %d, want 1", c.size())
	}
}

func TestCacheReapKeepsDirtyWhileTombstonesRemain(t *testing.T) {
	c := newPartitionCache()
	t0 := time.Now()
	ttl := 10 * time.Minute

	c.merge([]domain.PartitionDescriptor{
		desc(1, 0, 4, true),
		desc(2, 5, 9, true),
	}, openSet(), t0)
	c.merge([]domain.PartitionDescriptor{
		desc(3, 0, 9, false),
	}, openSet(3), t0.Add(ttl))

	// Only the first pair of tombstones is due; the reap must leave the
	// cache dirty so a later pass collects anything tombstoned by the
	// second merge.
	c.merge([]domain.PartitionDescriptor{desc(4, 0, 9, true)}, openSet(3), t0.Add(ttl))
	if removed := c.reap(t0.Add(ttl), ttl); removed != 2 {
		t.Errorf("first reap removed %d entries, want 2", removed)
	}
	if removed := c.reap(t0.Add(2*ttl), ttl); removed != 1 {
		t.Errorf("second reap removed %d entries, want 1", removed)
	}
}

func TestCacheReopenClearsTombstone(t *testing.T) {
	c := newPartitionCache()
	t0 := time.Now()
	ttl := 10 * time.Minute

	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, false)}, openSet(1), t0)
	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, true)}, openSet(), t0.Add(time.Minute))

	// The same id shows up open again (for instance after the directory
	// briefly returned stale data). The tombstone must be cleared.
	c.merge([]domain.PartitionDescriptor{desc(1, 0, 9, false)}, openSet(1), t0.Add(2*time.Minute))

	if removed := c.reap(t0.Add(time.Hour), ttl); removed != 0 {
		t.Errorf("reap removed %d entries after reopen", removed)
	}
	if _, ok := c.get(1); !ok {
		t.Error("reopened entry must remain")
	}
}
