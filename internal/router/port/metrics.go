package port

import "time"

// MetricsSink receives routing-cache events. All calls must be cheap and
// non-blocking; the shard map invokes them while holding no locks.
type MetricsSink interface {
	UpdateSucceeded(openShards int, took time.Duration)
	UpdateFailed(code string)
	LookupMiss()
	InvalidationTriggered()
	ShardsReaped(n int)
}

// NopMetricsSink discards all events. Used when no sink is configured.
type NopMetricsSink struct{}

func (NopMetricsSink) UpdateSucceeded(int, time.Duration) {}
func (NopMetricsSink) UpdateFailed(string)                {}
func (NopMetricsSink) LookupMiss()                        {}
func (NopMetricsSink) InvalidationTriggered()             {}
func (NopMetricsSink) ShardsReaped(int)                   {}

var _ MetricsSink = NopMetricsSink{}
