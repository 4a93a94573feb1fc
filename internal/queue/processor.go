package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"teamhub/internal/mail"

	"go.uber.org/zap"
)

const (
	// MaxRetries is the maximum number of delivery attempts for a message.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// SendTimeout bounds a single delivery attempt.
	SendTimeout = 30 * time.Second
)

// Processor delivers mail jobs from the queue.
type Processor struct {
	queue        Queue
	sender       mail.Sender
	logger       *zap.Logger
	observe      DeliveryObserver
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithDeliveryObserver reports each delivery outcome to fn.
func WithDeliveryObserver(fn DeliveryObserver) ProcessorOption {
	return func(p *Processor) { p.observe = fn }
}

// WithRetryDelay overrides the base retry delay.
func WithRetryDelay(d time.Duration) ProcessorOption {
	return func(p *Processor) { p.retryDelay = d }
}

// NewProcessor creates a new mail job processor.
func NewProcessor(queue Queue, sender mail.Sender, logger *zap.Logger, workerCount int, opts ...ProcessorOption) *Processor {
	p := &Processor{
		queue:       queue,
		sender:      sender,
		logger:      logger,
		observe:     func(string, string) {},
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.logger.Info("mail processor started", zap.Int("workers", p.workerCount))
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	p.logger.Info("mail processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				p.logger.Debug("mail worker shutting down", zap.Int("worker", id))
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job MailJob) {
	sendCtx, cancel := context.WithTimeout(ctx, SendTimeout)
	defer cancel()

	if err := p.sender.Send(sendCtx, job.Message); err != nil {
		p.logger.Warn("mail delivery failed",
			zap.String("kind", job.Message.Kind),
			zap.String("to", job.Message.To),
			zap.Int("attempt", job.RetryCount+1),
			zap.Error(err),
		)
		p.handleFailure(job)
		return
	}

	p.observe(job.Message.Kind, StatusSent)
}

func (p *Processor) handleFailure(job MailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		p.logger.Error("mail delivery abandoned",
			zap.String("kind", job.Message.Kind),
			zap.String("to", job.Message.To),
			zap.Int("attempts", job.RetryCount),
		)
		p.observe(job.Message.Kind, StatusFailed)
		return
	}

	p.observe(job.Message.Kind, StatusRetrying)
	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Waits on shutdownCh rather than ctx so a pending retry is dropped on Stop.
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case <-p.shutdownCh:
			p.logger.Warn("shutdown during retry delay, dropping message",
				zap.String("kind", job.Message.Kind),
				zap.String("to", job.Message.To),
			)
			p.observe(job.Message.Kind, StatusFailed)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				p.logger.Error("failed to re-enqueue mail job", zap.String("to", job.Message.To), zap.Error(err))
				p.observe(job.Message.Kind, StatusFailed)
			}
		}
	}()
}
