// Package queue delivers transactional mail in the background, either through
// an in-process worker pool or through asynq on Redis.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"teamhub/internal/mail"
)

var (
	// ErrQueueFull is returned when the mail queue has no room left.
	ErrQueueFull = errors.New("mail queue is full")
	// ErrQueueClosed is returned once the mail queue is shut down.
	ErrQueueClosed = errors.New("mail queue is closed")
)

// MailJob is a message waiting for delivery and the attempts made so far.
type MailJob struct {
	Message    mail.Message
	RetryCount int
}

// MemoryQueue is a bounded in-process mail queue. It does not survive a
// restart; use the asynq driver when that matters.
type MemoryQueue struct {
	jobs     chan MailJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a queue holding at most capacity jobs.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan MailJob, capacity),
		capacity: capacity,
	}
}

// Dispatch queues msg for its first delivery attempt.
func (q *MemoryQueue) Dispatch(ctx context.Context, msg mail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := q.Enqueue(MailJob{Message: msg}); err != nil {
		return fmt.Errorf("dispatch %s mail: %w", msg.Kind, err)
	}
	return nil
}

// Enqueue adds job without blocking. The read lock keeps Close from closing
// the channel under a send.
func (q *MemoryQueue) Enqueue(job MailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a job is available, ctx is done or the queue is
// closed and drained.
func (q *MemoryQueue) Dequeue(ctx context.Context) (MailJob, error) {
	select {
	case <-ctx.Done():
		return MailJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return MailJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close stops intake. Jobs already queued can still be dequeued.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.jobs)
}

// Len reports the number of queued jobs.
func (q *MemoryQueue) Len() int { return len(q.jobs) }

// Capacity reports the queue bound.
func (q *MemoryQueue) Capacity() int { return q.capacity }
