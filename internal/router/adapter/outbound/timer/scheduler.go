// Package timer implements the retry scheduler port on the runtime's
// timers.
package timer

import (
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/port"
)

type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

var _ port.RetryScheduler = (*Scheduler)(nil)

// Schedule runs fn once after delay. The callback runs on its own
// goroutine; cancellation after the callback started has no effect.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) port.RetryHandle {
	return &handle{timer: time.AfterFunc(delay, fn)}
}

type handle struct {
	timer *time.Timer
}

func (h *handle) Cancel() {
	h.timer.Stop()
}

func (h *handle) Reschedule(delay time.Duration) {
	h.timer.Reset(delay)
}
