package service

import "time"

// backoffController tracks the retry delay for failed directory fetches.
// Not safe for concurrent use; the shard map touches it under its state
// lock only.
type backoffController struct {
	min     time.Duration
	max     time.Duration
	current time.Duration
}

func newBackoffController(min, max time.Duration) *backoffController {
	return &backoffController{min: min, max: max, current: min}
}

// failure returns the delay to wait before the next retry, then grows the
// delay by x1.5 capped at max.
func (b *backoffController) failure() time.Duration {
	delay := b.current
	b.current = b.current * 3 / 2
	if b.current > b.max {
		b.current = b.max
	}
	return delay
}

// success resets the delay to the configured minimum.
func (b *backoffController) success() {
	b.current = b.min
}
