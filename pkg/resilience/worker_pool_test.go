package resilience

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolExecutesJobs(t *testing.T) {
	pool := NewWorkerPool(3, 6)

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		if err := pool.Submit(context.Background(), func() {
			count.Add(1)
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	pool.Close()
	pool.Wait()

	if got := count.Load(); got != 10 {
		t.Fatalf("expected 10 jobs executed, got %d", got)
	}
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Close()
	pool.Wait()
	if err := pool.Submit(context.Background(), func() {}); !errors.Is(err, ErrWorkerPoolClosed) {
		t.Fatalf("expected ErrWorkerPoolClosed, got %v", err)
	}
}

func TestWorkerPoolSubmitHonorsContext(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	defer func() {
		pool.Close()
		pool.Wait()
	}()

	// Occupy the single worker and fill the queue.
	block := make(chan struct{})
	if err := pool.Submit(context.Background(), func() { <-block }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	deadline := time.Now().Add(time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		err := pool.Submit(ctx, func() {})
		cancel()
		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Fatalf("expected DeadlineExceeded once full, got %v", err)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("queue never filled")
		}
	}

	close(block)
}

func TestWorkerPoolCloseDrainsQueue(t *testing.T) {
	pool := NewWorkerPool(1, 4)

	var count atomic.Int32
	gate := make(chan struct{})
	_ = pool.Submit(context.Background(), func() { <-gate; count.Add(1) })
	_ = pool.Submit(context.Background(), func() { count.Add(1) })
	_ = pool.Submit(context.Background(), func() { count.Add(1) })

	pool.Close()
	close(gate)
	pool.Wait()

	if got := count.Load(); got != 3 {
		t.Fatalf("expected queued jobs to run after Close, got %d", got)
	}
}

func TestWorkerPoolNilJob(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	defer func() {
		pool.Close()
		pool.Wait()
	}()

	if err := pool.Submit(context.Background(), nil); err != nil {
		t.Fatalf("nil job must be a no-op, got %v", err)
	}
}
