package port

import (
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"lukechampine.com/uint128"
)

// RouterService is the lookup surface the record-producing layer consumes.
type RouterService interface {
	// ShardID maps a 128-bit hash-key value to the partition currently
	// responsible for it. It never blocks: on lock contention or while no
	// routing table is published it reports false instead of waiting.
	ShardID(hash uint128.Uint128) (domain.PartitionID, bool)

	// GetShard returns the cached descriptor for a partition id,
	// regardless of routing-table state. Recently closed partitions keep
	// resolving for a grace window.
	GetShard(id domain.PartitionID) (domain.PartitionDescriptor, bool)

	// Invalidate reports that a record was observed on a partition the
	// table did not predict. A rebuild is triggered only when the
	// observation postdates the current table and the prediction still
	// names an open partition (or no prediction was made).
	Invalidate(seenAt time.Time, predicted *domain.PartitionID)

	// Update triggers a rebuild. No-op while one is already in flight.
	Update()

	// Stats reports the current routing state for diagnostics.
	Stats() RouterStats
}

// RouterStats is a point-in-time snapshot of the router's state.
type RouterStats struct {
	State               string    `json:"state"`
	OpenShards          int       `json:"open_shards"`
	CachedShards        int       `json:"cached_shards"`
	UpdatedAt           time.Time `json:"updated_at"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
}
