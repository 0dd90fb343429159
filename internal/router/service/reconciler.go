package service

import (
	"container/heap"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"lukechampine.com/uint128"
)

// hashInterval is one partition's claim on [start, end] during the sweep.
type hashInterval struct {
	start uint128.Uint128
	end   uint128.Uint128
	id    domain.PartitionID
}

// intervalHeap orders intervals by ending hash key descending, breaking
// ties by starting hash key descending, so the sweep always sees the
// range reaching furthest right first and, on equal ends, the narrower
// (more specific) range.
type intervalHeap []hashInterval

func (h intervalHeap) Len() int { return len(h) }

func (h intervalHeap) Less(i, j int) bool {
	if c := h[i].end.Cmp(h[j].end); c != 0 {
		return c > 0
	}
	return h[i].start.Cmp(h[j].start) > 0
}

func (h intervalHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *intervalHeap) Push(x any) { *h = append(*h, x.(hashInterval)) }

func (h *intervalHeap) Pop() any {
	old := *h
	n := len(old)
	iv := old[n-1]
	*h = old[:n-1]
	return iv
}

// buildDisjointCover turns a possibly-overlapping descriptor set into the
// minimal disjoint routing table covering the same hash-key space, plus
// the set of ids that are still open.
//
// Parent and child ranges coexist briefly during a repartition. The sweep
// claims the hash space from the top down: whichever range reaches
// furthest right owns its uncontested upper portion; an overlapped range
// is truncated below the claimed region and re-queued, or discarded when
// fully subsumed. Each descriptor is re-queued at most once, so the whole
// pass is O(n log n).
func buildDisjointCover(descriptors []domain.PartitionDescriptor) (routingTable, map[domain.PartitionID]struct{}) {
	open := make(map[domain.PartitionID]struct{}, len(descriptors))
	ivs := make(intervalHeap, 0, len(descriptors))
	for _, d := range descriptors {
		if !d.IsClosed() {
			open[d.ID] = struct{}{}
		}
		ivs = append(ivs, hashInterval{start: d.Range.Start, end: d.Range.End, id: d.ID})
	}
	heap.Init(&ivs)

	var table routingTable
	var frontier uint128.Uint128
	claimed := false
	for ivs.Len() > 0 {
		iv := heap.Pop(&ivs).(hashInterval)
		if !claimed || iv.end.Cmp(frontier) < 0 {
			table = append(table, routingEntry{endingHashKey: iv.end, id: iv.id})
			frontier = iv.start
			claimed = true
			continue
		}
		if iv.start.Cmp(frontier) < 0 {
			// The upper portion is already claimed; the range may still
			// own the segment below the frontier.
			iv.end = frontier.Sub64(1)
			heap.Push(&ivs, iv)
		}
	}

	// The sweep emitted from the top of the hash space down.
	for i, j := 0, len(table)-1; i < j; i, j = i+1, j-1 {
		table[i], table[j] = table[j], table[i]
	}
	return table, open
}
