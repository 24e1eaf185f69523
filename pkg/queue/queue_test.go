package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequential_FIFOOrder(t *testing.T) {
	q := NewWithDelay[int]("test", 0)

	var mu sync.Mutex
	var order []int

	for i := 0; i < 20; i++ {
		q.Enqueue(context.Background(), i, func(_ context.Context, n int) error {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			return nil
		})
	}
	q.Wait()

	require.Len(t, order, 20)
	for i, n := range order {
		assert.Equal(t, i, n, "jobs must run in arrival order")
	}
}

func TestSequential_FailedJobDoesNotStopDrain(t *testing.T) {
	q := NewWithDelay[string]("test", 0)

	var mu sync.Mutex
	var done []string

	q.Enqueue(context.Background(), "first", func(_ context.Context, s string) error {
		mu.Lock()
		done = append(done, s)
		mu.Unlock()
		return fmt.Errorf("job failed")
	})
	q.Enqueue(context.Background(), "second", func(_ context.Context, s string) error {
		mu.Lock()
		done = append(done, s)
		mu.Unlock()
		return nil
	})
	q.Wait()

	assert.Equal(t, []string{"first", "second"}, done, "failure is swallowed, drain continues")
}

func TestSequential_SingleInFlight(t *testing.T) {
	q := NewWithDelay[int]("test", 0)

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0

	for i := 0; i < 50; i++ {
		q.Enqueue(context.Background(), i, func(_ context.Context, _ int) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		})
	}
	q.Wait()

	assert.Equal(t, 1, maxInFlight, "at most one job in flight")
}

func TestSequential_WaitOnIdleQueue(t *testing.T) {
	q := New[int]("test")
	q.Wait() // must not block
	assert.Equal(t, 0, q.Len())
}

func TestSequential_EnqueueAfterDrain(t *testing.T) {
	q := NewWithDelay[int]("test", 0)

	var mu sync.Mutex
	count := 0
	incr := func(_ context.Context, _ int) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	}

	q.Enqueue(context.Background(), 1, incr)
	q.Wait()
	q.Enqueue(context.Background(), 2, incr)
	q.Wait()

	assert.Equal(t, 2, count, "queue restarts after going idle")
}
