package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"teamhub/internal/mail"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskMailDelivery is the asynq task type carrying a mail.Message.
const TaskMailDelivery = "mail:deliver"

const defaultQueue = "default"

// AsynqDispatcher enqueues mail onto Redis for a separate worker process.
type AsynqDispatcher struct {
	client *asynq.Client
}

// NewAsynqDispatcher creates a dispatcher for the Redis server at redisURI (host:port).
func NewAsynqDispatcher(redisURI string) (*AsynqDispatcher, error) {
	opt, err := asynq.ParseRedisURI("redis://" + redisURI)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}
	return &AsynqDispatcher{client: asynq.NewClient(opt)}, nil
}

// Dispatch enqueues msg for delivery.
func (d *AsynqDispatcher) Dispatch(ctx context.Context, msg mail.Message) error {
	task, err := NewMailTask(msg)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task, asynq.Queue(defaultQueue), asynq.MaxRetry(MaxRetries)); err != nil {
		return fmt.Errorf("enqueue mail task: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// NewMailTask wraps msg in an asynq task.
func NewMailTask(msg mail.Message) (*asynq.Task, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal mail task: %w", err)
	}
	return asynq.NewTask(TaskMailDelivery, payload), nil
}

// NewMailHandler returns the asynq handler that delivers mail tasks through sender.
func NewMailHandler(sender mail.Sender, logger *zap.Logger, observe DeliveryObserver) asynq.HandlerFunc {
	if observe == nil {
		observe = func(string, string) {}
	}

	return func(ctx context.Context, t *asynq.Task) error {
		var msg mail.Message
		if err := json.Unmarshal(t.Payload(), &msg); err != nil {
			logger.Error("invalid mail task payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := sender.Send(ctx, msg); err != nil {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, ok := asynq.GetMaxRetry(ctx)
			if ok && retried >= maxRetry {
				observe(msg.Kind, StatusFailed)
			} else {
				observe(msg.Kind, StatusRetrying)
			}
			return err
		}

		observe(msg.Kind, StatusSent)
		return nil
	}
}

// Worker consumes mail tasks from Redis.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewWorker builds an asynq server that delivers mail through sender.
func NewWorker(redisURI string, concurrency int, sender mail.Sender, logger *zap.Logger, observe DeliveryObserver) (*Worker, error) {
	opt, err := asynq.ParseRedisURI("redis://" + redisURI)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{defaultQueue: 1},
		Logger:      logger.Sugar(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Warn("task failed", zap.String("type", task.Type()), zap.Error(err))
		}),
	})

	mux := asynq.NewServeMux()
	mux.Handle(TaskMailDelivery, NewMailHandler(sender, logger, observe))

	return &Worker{server: server, mux: mux}, nil
}

// Start runs the worker in the background.
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
