package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
)

// Job is one extraction pass request.
type Job struct {
	NoticeID uuid.UUID
	Mode     constants.ExtractionMode
	Attempt  int // 1-based; zero means first attempt
}

// Runner executes one pass; satisfied by pipeline.Processor.
type Runner interface {
	ProcessNotice(ctx context.Context, noticeID uuid.UUID, mode constants.ExtractionMode, attempts int) error
}

// Disposition tags how a finished job ended. Errors are classified, never
// blindly retried.
type Disposition string

const (
	DispositionSuccess   Disposition = "success"
	DispositionRetryable Disposition = "retryable"
	DispositionTerminal  Disposition = "terminal"
)

// Classify maps a pass error to its disposition. Missing rows and invalid
// input cannot heal on retry; everything else (providers, network, database
// hiccups) gets another attempt.
func Classify(err error) Disposition {
	switch {
	case err == nil:
		return DispositionSuccess
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrDuplicateHash):
		return DispositionTerminal
	default:
		return DispositionRetryable
	}
}

type ExtractQueue struct {
	runner      Runner
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration

	ch      chan Job
	wg      sync.WaitGroup
	senders sync.WaitGroup
	once    sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ExtractQueue)

func WithWorkers(n int) Option {
	return func(q *ExtractQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ExtractQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ExtractQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(q *ExtractQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithRetryBackoff(d time.Duration) Option {
	return func(q *ExtractQueue) {
		if d > 0 {
			q.backoff = d
		}
	}
}

func NewExtractQueue(runner Runner, logger *slog.Logger, opts ...Option) *ExtractQueue {
	q := &ExtractQueue{
		runner:      runner,
		logger:      logger,
		workers:     4,
		timeout:     5 * time.Minute,
		maxAttempts: 3,
		backoff:     5 * time.Second,
		ch:          make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ExtractQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.runOne(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ExtractQueue) runOne(workerID int, job Job) {
	attempt := job.Attempt
	if attempt < 1 {
		attempt = 1
	}

	ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
	ctx = common.WithNoticeID(ctx, job.NoticeID.String())
	ctx = common.WithRequestID(ctx, uuid.New().String())
	err := q.runner.ProcessNotice(ctx, job.NoticeID, job.Mode, attempt)
	cancel()

	switch Classify(err) {
	case DispositionSuccess:
		q.logger.Info("job done",
			"worker_id", workerID, "notice_id", job.NoticeID, "mode", string(job.Mode), "attempt", attempt)
	case DispositionTerminal:
		q.logger.Error("job failed terminally",
			"worker_id", workerID, "notice_id", job.NoticeID, "attempt", attempt, "error", err)
	case DispositionRetryable:
		if attempt >= q.maxAttempts {
			q.logger.Error("job attempts exhausted",
				"worker_id", workerID, "notice_id", job.NoticeID, "attempts", attempt, "error", err)
			return
		}
		q.logger.Warn("job will retry",
			"worker_id", workerID, "notice_id", job.NoticeID, "attempt", attempt, "error", err)
		// Re-enqueue off the worker goroutine: a worker blocked on its own
		// full channel would leave nobody to drain it.
		next := Job{NoticeID: job.NoticeID, Mode: job.Mode, Attempt: attempt + 1}
		go func() {
			time.Sleep(q.backoff)
			_ = q.Enqueue(context.Background(), next)
		}()
	}
}

func (q *ExtractQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "notice_id", job.NoticeID)
		return nil
	}
	select {
	case q.ch <- job:
		q.mu.Unlock()
		q.logger.Info("queued notice for extraction",
			"notice_id", job.NoticeID, "mode", string(job.Mode), "attempt", job.Attempt)
		return nil
	default:
	}

	// Full channel: register as an in-flight sender and block outside the
	// mutex, so workers keep draining and Shutdown keeps making progress.
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	q.logger.Warn("queue full, applying backpressure", "notice_id", job.NoticeID)
	q.ch <- job
	q.logger.Info("queued notice for extraction",
		"notice_id", job.NoticeID, "mode", string(job.Mode), "attempt", job.Attempt)
	return nil
}

func (q *ExtractQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// Senders already registered finish before the channel closes; anyone
	// arriving later sees closed and drops.
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
