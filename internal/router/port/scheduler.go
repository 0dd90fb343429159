package port

import "time"

//go:generate mockgen -destination=../service/mocks/scheduler_mock.go -package=mocks -source=scheduler.go

// RetryHandle is a pending scheduled callback. Cancel is a no-op once the
// callback has fired; Reschedule moves a still-pending callback to fire
// after the new delay instead.
type RetryHandle interface {
	Cancel()
	Reschedule(delay time.Duration)
}

// RetryScheduler runs a callback once after a delay. The shard map uses
// it to schedule update retries so that tests can substitute a manual
// clock.
type RetryScheduler interface {
	Schedule(delay time.Duration, fn func()) RetryHandle
}
