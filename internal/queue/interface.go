package queue

import (
	"context"

	"teamhub/internal/mail"
)

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks teamhub/internal/queue Queue,Dispatcher

// Queue defines the interface for job queue operations.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(job MailJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (MailJob, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Dispatcher hands a message off for asynchronous delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg mail.Message) error
}

// DeliveryObserver is notified of every delivery outcome.
type DeliveryObserver func(kind, status string)

// Delivery statuses reported to a DeliveryObserver.
const (
	StatusSent     = "sent"
	StatusRetrying = "retrying"
	StatusFailed   = "failed"
)

// Ensure MemoryQueue implements Queue interface
var (
	_ Queue      = (*MemoryQueue)(nil)
	_ Dispatcher = (*MemoryQueue)(nil)
	_ Dispatcher = (*AsynqDispatcher)(nil)
)
