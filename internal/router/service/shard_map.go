package service

import (
	"context"
	"sync"
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"github.com/anthanhphan/go-stream-router/internal/router/port"
	"github.com/anthanhphan/go-stream-router/pkg/resilience"
	"github.com/anthanhphan/gosdk/logger"
	"lukechampine.com/uint128"
)

const (
	DefaultMinBackoff     = 1000 * time.Millisecond
	DefaultMaxBackoff     = 30000 * time.Millisecond
	DefaultClosedShardTTL = 60000 * time.Millisecond
	DefaultPageLimit      = 1000
)

type mapState int

const (
	stateInvalid mapState = iota
	stateUpdating
	stateReady
)

func (s mapState) String() string {
	switch s {
	case stateUpdating:
		return "updating"
	case stateReady:
		return "ready"
	default:
		return "invalid"
	}
}

// Config carries the shard map's recognized options. Zero durations fall
// back to the defaults above.
type Config struct {
	StreamName     string
	StreamARN      string
	MinBackoff     time.Duration
	MaxBackoff     time.Duration
	ClosedShardTTL time.Duration
	PageLimit      int32
}

func (c *Config) applyDefaults() {
	if c.MinBackoff <= 0 {
		c.MinBackoff = DefaultMinBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = DefaultMaxBackoff
	}
	if c.ClosedShardTTL <= 0 {
		c.ClosedShardTTL = DefaultClosedShardTTL
	}
	if c.PageLimit <= 0 {
		c.PageLimit = DefaultPageLimit
	}
}

// ShardMap maintains the live hash-key -> partition routing table for one
// stream, rebuilt from the partition directory on demand and on failure
// observations. Lookups read the last published table while a rebuild may
// be in flight.
type ShardMap struct {
	cfg       Config
	directory port.DirectoryClient
	scheduler port.RetryScheduler
	metrics   port.MetricsSink
	executor  *resilience.WorkerPool

	// mu guards state, updatedAt, table, retry, backoff and the fetch
	// lifetime fields. cache carries its own lock.
	mu           sync.RWMutex
	state        mapState
	updatedAt    time.Time
	table        routingTable
	retry        port.RetryHandle
	backoff      *backoffController
	failures     int
	fetchCancel  context.CancelFunc
	fetchStarted time.Time

	// pending accumulates descriptors across pages of one fetch. Owned by
	// the single in-flight fetch goroutine; reset only while no fetch is
	// running.
	pending []domain.PartitionDescriptor

	cache *partitionCache

	stop      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
}

// NewShardMap wires a shard map against the directory client and retry
// scheduler. metrics may be nil for a no-op sink; executor may be nil to
// run fetch pipelines on plain goroutines.
func NewShardMap(cfg Config, directory port.DirectoryClient, scheduler port.RetryScheduler, metrics port.MetricsSink, executor *resilience.WorkerPool) *ShardMap {
	cfg.applyDefaults()
	if metrics == nil {
		metrics = port.NopMetricsSink{}
	}
	return &ShardMap{
		cfg:       cfg,
		directory: directory,
		scheduler: scheduler,
		metrics:   metrics,
		executor:  executor,
		backoff:   newBackoffController(cfg.MinBackoff, cfg.MaxBackoff),
		cache:     newPartitionCache(),
		stop:      make(chan struct{}),
	}
}

var _ port.RouterService = (*ShardMap)(nil)

// Start launches the reaper loop and triggers the first update.
func (s *ShardMap) Start() {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.reapLoop()
		s.Update()
	})
}

// Close cancels any in-flight fetch and pending retry and stops the
// reaper, waiting for it to exit.
func (s *ShardMap) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.mu.Lock()
		if s.retry != nil {
			s.retry.Cancel()
			s.retry = nil
		}
		if s.fetchCancel != nil {
			s.fetchCancel()
		}
		s.mu.Unlock()
		s.wg.Wait()
	})
}

// ShardID maps a hash-key value to the partition currently responsible.
// It sits on the record-emission hot path and never blocks: on lock
// contention, or while no table is published, it reports a miss instead
// of waiting.
func (s *ShardMap) ShardID(hash uint128.Uint128) (domain.PartitionID, bool) {
	if !s.mu.TryRLock() {
		s.metrics.LookupMiss()
		return 0, false
	}
	id, ok := domain.PartitionID(0), false
	if s.state == stateReady {
		id, ok = s.table.lookup(hash)
		if !ok {
			logger.Errorw("Could not map hash key to a shard, routing table does not cover it",
				"stream", s.cfg.StreamName, "hash_key", hash.String())
		}
	}
	s.mu.RUnlock()
	if !ok {
		s.metrics.LookupMiss()
	}
	return id, ok
}

// GetShard returns the cached descriptor for a partition id regardless of
// routing state. Recently closed partitions keep resolving until the
// reaper removes them.
func (s *ShardMap) GetShard(id domain.PartitionID) (domain.PartitionDescriptor, bool) {
	return s.cache.get(id)
}

// Invalidate reports that a record landed on a partition the table did
// not predict. The rebuild fires only when the observation postdates the
// current table, the table is ready, and the prediction (if any) still
// names an open partition; stale observations and mispredictions against
// already-closed partitions are ignored.
func (s *ShardMap) Invalidate(seenAt time.Time, predicted *domain.PartitionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !seenAt.After(s.updatedAt) || s.state != stateReady {
		return
	}
	if predicted != nil && !s.cache.isOpen(*predicted) {
		return
	}

	predictedShard := "none"
	if predicted != nil {
		predictedShard = predicted.String()
	}
	logger.Infow("Invalidating shard map",
		"stream", s.cfg.StreamName,
		"gap_ms", seenAt.Sub(s.updatedAt).Milliseconds(),
		"predicted_shard", predictedShard)
	s.metrics.InvalidationTriggered()
	s.updateLocked()
}

// Update triggers a rebuild. No-op while a fetch is already in flight.
func (s *ShardMap) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateLocked()
}

// Stats reports a point-in-time snapshot for diagnostics.
func (s *ShardMap) Stats() port.RouterStats {
	s.mu.RLock()
	state := s.state.String()
	updatedAt := s.updatedAt
	failures := s.failures
	s.mu.RUnlock()
	return port.RouterStats{
		State:               state,
		OpenShards:          s.cache.openCount(),
		CachedShards:        s.cache.size(),
		UpdatedAt:           updatedAt,
		ConsecutiveFailures: failures,
	}
}

func (s *ShardMap) updateLocked() {
	if s.state == stateUpdating {
		return
	}

	if s.retry != nil {
		s.retry.Cancel()
		s.retry = nil
	}
	s.pending = s.pending[:0]
	s.state = stateUpdating
	s.fetchStarted = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	s.fetchCancel = cancel

	logger.Infow("Updating shard map", "stream", s.cfg.StreamName)
	s.runAsync(ctx, func() { s.fetch(ctx) })
}

// runAsync moves the fetch pipeline off the caller's goroutine so that
// Update never blocks on directory I/O.
func (s *ShardMap) runAsync(ctx context.Context, job func()) {
	if s.executor != nil {
		if err := s.executor.Submit(ctx, job); err == nil {
			return
		}
	}
	go job()
}

// fetch drives the paginated directory listing. Any failed page aborts
// the whole fetch; the final page hands off to finishUpdate.
func (s *ShardMap) fetch(ctx context.Context) {
	in := &port.ListPartitionsInput{
		StreamName: s.cfg.StreamName,
		StreamARN:  s.cfg.StreamARN,
		PageLimit:  s.cfg.PageLimit,
	}
	for {
		out, err := s.directory.ListPartitions(ctx, in)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			de := port.AsDirectoryError(err)
			s.updateFail(de.Code, de.Message)
			return
		}

		s.pending = append(s.pending, out.Partitions...)

		s.mu.Lock()
		s.backoff.success()
		s.mu.Unlock()

		if out.NextToken == "" {
			break
		}
		in = &port.ListPartitionsInput{
			NextToken: out.NextToken,
			PageLimit: s.cfg.PageLimit,
		}
	}
	s.finishUpdate()
}

// finishUpdate reconciles the accumulated descriptors and publishes the
// new table and cache. The reconciliation runs outside the locks; only
// the structural swap holds them.
func (s *ShardMap) finishUpdate() {
	table, open := buildDisjointCover(s.pending)
	if len(table) == 0 {
		logger.Warnw("Directory returned no open shards, lookups will miss until the next update",
			"stream", s.cfg.StreamName)
	}

	now := time.Now()
	s.cache.merge(s.pending, open, now)

	s.mu.Lock()
	s.table = table
	s.state = stateReady
	s.updatedAt = now
	s.failures = 0
	s.fetchCancel = nil
	took := now.Sub(s.fetchStarted)
	s.mu.Unlock()

	s.metrics.UpdateSucceeded(len(open), took)
	logger.Infow("Successfully updated shard map",
		"stream", s.cfg.StreamName,
		"stream_arn", s.cfg.StreamARN,
		"shards", len(table),
		"open_shards", len(open),
		"took_ms", took.Milliseconds())
}

// updateFail parks the map in the invalid state and schedules a retry
// after the current backoff delay. Failure is never fatal: callers keep
// seeing the last good table until a retry converges.
func (s *ShardMap) updateFail(code, message string) {
	s.metrics.UpdateFailed(code)

	s.mu.Lock()
	s.state = stateInvalid
	s.failures++
	s.fetchCancel = nil
	delay := s.backoff.failure()
	if s.retry == nil {
		s.retry = s.scheduler.Schedule(delay, s.Update)
	} else {
		s.retry.Reschedule(delay)
	}
	s.mu.Unlock()

	logger.Errorw("Shard map update failed",
		"stream", s.cfg.StreamName,
		"stream_arn", s.cfg.StreamARN,
		"code", code,
		"message", message,
		"retry_in_ms", delay.Milliseconds())
}

// reapLoop wakes every half TTL and removes tombstoned cache entries once
// the table has been stable for a full TTL. The dirty flag inside the
// cache keeps no-op scans down to a flag check.
func (s *ShardMap) reapLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.ClosedShardTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.reapOnce(time.Now())
		}
	}
}

func (s *ShardMap) reapOnce(now time.Time) {
	s.mu.RLock()
	ready := s.state == stateReady
	stale := now.Sub(s.updatedAt) > s.cfg.ClosedShardTTL
	s.mu.RUnlock()
	if !ready || !stale {
		return
	}

	if removed := s.cache.reap(now, s.cfg.ClosedShardTTL); removed > 0 {
		s.metrics.ShardsReaped(removed)
		logger.Infow("Reaped closed shards from cache",
			"stream", s.cfg.StreamName, "removed", removed)
	}
}
