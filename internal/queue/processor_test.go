package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"teamhub/internal/mail"
	mailmocks "teamhub/internal/mail/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// outcomeRecorder collects DeliveryObserver calls.
type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *outcomeRecorder) observe(kind, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, kind+":"+status)
}

func (r *outcomeRecorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes...)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		processor := NewProcessor(NewMemoryQueue(10), mailmocks.NewMockSender(ctrl), zap.NewNop(), 3)
		processor.Start(context.Background())

		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		processor := NewProcessor(NewMemoryQueue(10), mailmocks.NewMockSender(ctrl), zap.NewNop(), 1)
		processor.Start(context.Background())

		processor.Stop()
		processor.Stop()
	})
}

func TestProcessor_ProcessJob(t *testing.T) {
	t.Run("delivers message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		sender := mailmocks.NewMockSender(ctrl)
		rec := &outcomeRecorder{}
		processor := NewProcessor(queue, sender, zap.NewNop(), 1, WithDeliveryObserver(rec.observe))

		job := testJob("a@example.com")
		sent := make(chan struct{})
		sender.EXPECT().Send(gomock.Any(), job.Message).DoAndReturn(func(context.Context, mail.Message) error {
			close(sent)
			return nil
		})

		_ = queue.Enqueue(job)
		processor.Start(context.Background())

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("message was not sent")
		}
		processor.Stop()

		assert.Equal(t, []string{mail.KindTeamInvitation + ":" + StatusSent}, rec.get())
	})

	t.Run("retries failed delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		sender := mailmocks.NewMockSender(ctrl)
		rec := &outcomeRecorder{}
		processor := NewProcessor(queue, sender, zap.NewNop(), 1,
			WithDeliveryObserver(rec.observe), WithRetryDelay(10*time.Millisecond))

		sent := make(chan struct{})
		gomock.InOrder(
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, mail.Message) error {
				close(sent)
				return nil
			}),
		)

		_ = queue.Enqueue(testJob("a@example.com"))
		processor.Start(context.Background())

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("message was not retried")
		}
		processor.Stop()

		assert.Equal(t, []string{
			mail.KindTeamInvitation + ":" + StatusRetrying,
			mail.KindTeamInvitation + ":" + StatusSent,
		}, rec.get())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		sender := mailmocks.NewMockSender(ctrl)
		rec := &outcomeRecorder{}
		processor := NewProcessor(queue, sender, zap.NewNop(), 1, WithDeliveryObserver(rec.observe))

		job := testJob("a@example.com")
		job.RetryCount = MaxRetries - 1

		attempted := make(chan struct{})
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, mail.Message) error {
			close(attempted)
			return assert.AnError
		})

		_ = queue.Enqueue(job)
		processor.Start(context.Background())

		<-attempted
		assert.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 10*time.Millisecond)
		processor.Stop()

		assert.Equal(t, []string{mail.KindTeamInvitation + ":" + StatusFailed}, rec.get())
	})

	t.Run("drops pending retry on shutdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		sender := mailmocks.NewMockSender(ctrl)
		rec := &outcomeRecorder{}
		processor := NewProcessor(queue, sender, zap.NewNop(), 1,
			WithDeliveryObserver(rec.observe), WithRetryDelay(time.Hour))

		attempted := make(chan struct{})
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, mail.Message) error {
			close(attempted)
			return assert.AnError
		})

		_ = queue.Enqueue(testJob("a@example.com"))
		processor.Start(context.Background())

		<-attempted
		assert.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 10*time.Millisecond)
		processor.Stop()

		assert.Equal(t, []string{
			mail.KindTeamInvitation + ":" + StatusRetrying,
			mail.KindTeamInvitation + ":" + StatusFailed,
		}, rec.get())
	})
}

func TestProcessor_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMemoryQueue(100)
	sender := mailmocks.NewMockSender(ctrl)
	rec := &outcomeRecorder{}
	processor := NewProcessor(queue, sender, zap.NewNop(), 5, WithDeliveryObserver(rec.observe))

	jobCount := 10
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(jobCount)

	for i := 0; i < jobCount; i++ {
		_ = queue.Enqueue(testJob("a@example.com"))
	}
	processor.Start(context.Background())

	assert.Eventually(t, func() bool { return len(rec.get()) == jobCount }, 2*time.Second, 10*time.Millisecond)
	processor.Stop()
}
