// Package queue implements a generic sequential task queue: strict FIFO with
// at most one in-flight job per queue instance. The feed pipeline runs two
// independent instances, one for comment fetching and one for language
// detection, so a page of N items produces N jobs per lane executed one at a
// time in arrival order.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// defaultDelay decouples job bursts from each other, not a correctness need
const defaultDelay = 100 * time.Millisecond

// Sequential is a FIFO queue draining one job at a time. A failed job is
// logged and swallowed, never stopping the drain. There is no priority,
// cancellation or backpressure limit; callers are responsible for not
// enqueueing unbounded work.
type Sequential[T any] struct {
	name  string
	delay time.Duration

	mu   sync.Mutex
	cond *sync.Cond
	jobs []job[T]
	busy bool
}

type job[T any] struct {
	payload T
	fn      func(ctx context.Context, payload T) error
}

// New creates a named sequential queue with the default inter-job delay
func New[T any](name string) *Sequential[T] {
	return NewWithDelay[T](name, defaultDelay)
}

// NewWithDelay creates a named sequential queue with a custom inter-job delay
func NewWithDelay[T any](name string, delay time.Duration) *Sequential[T] {
	q := &Sequential[T]{name: name, delay: delay}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends a job and starts draining if the queue is idle. The job
// function runs with the payload once its turn comes; its error, if any, is
// logged and discarded.
func (q *Sequential[T]) Enqueue(ctx context.Context, payload T, fn func(ctx context.Context, payload T) error) {
	q.mu.Lock()
	q.jobs = append(q.jobs, job[T]{payload: payload, fn: fn})
	start := !q.busy
	if start {
		q.busy = true
	}
	q.mu.Unlock()

	if start {
		go q.drain(ctx)
	}
}

// drain pops and runs jobs until the queue is empty, then goes idle
func (q *Sequential[T]) drain(ctx context.Context) {
	for {
		q.mu.Lock()
		if len(q.jobs) == 0 {
			q.busy = false
			q.cond.Broadcast()
			q.mu.Unlock()
			return
		}
		j := q.jobs[0]
		q.jobs = q.jobs[1:]
		q.mu.Unlock()

		if err := j.fn(ctx, j.payload); err != nil {
			lgr.Printf("[WARN] %s queue job failed: %v", q.name, err)
		}

		if q.delay > 0 {
			select {
			case <-time.After(q.delay):
			case <-ctx.Done():
				// context gone, flush the rest without the pacing delay
			}
		}
	}
}

// Len returns the number of jobs waiting, excluding the one in flight
func (q *Sequential[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// Wait blocks until the queue is fully drained and idle
func (q *Sequential[T]) Wait() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.busy || len(q.jobs) > 0 {
		q.cond.Wait()
	}
}
