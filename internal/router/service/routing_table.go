package service

import (
	"sort"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"lukechampine.com/uint128"
)

// routingEntry maps the top of a disjoint hash-key range to the partition
// owning it.
type routingEntry struct {
	endingHashKey uint128.Uint128
	id            domain.PartitionID
}

// routingTable is ordered ascending by endingHashKey; entries are
// pairwise disjoint, so the first entry whose end reaches a hash key owns
// it.
type routingTable []routingEntry

// lookup finds the partition responsible for h. The second return is
// false when h lies beyond every entry, which means the table fails to
// cover the hash space.
func (t routingTable) lookup(h uint128.Uint128) (domain.PartitionID, bool) {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].endingHashKey.Cmp(h) >= 0
	})
	if i == len(t) {
		return 0, false
	}
	return t[i].id, true
}
