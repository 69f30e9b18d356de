package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
)

type countingRunner struct {
	calls    atomic.Int32
	failures int32
	err      error
}

func (r *countingRunner) ProcessNotice(ctx context.Context, id uuid.UUID, mode constants.ExtractionMode, attempts int) error {
	n := r.calls.Add(1)
	if n <= r.failures {
		return r.err
	}
	return nil
}

type firstAttemptFailRunner struct {
	calls atomic.Int32
}

func (r *firstAttemptFailRunner) ProcessNotice(ctx context.Context, id uuid.UUID, mode constants.ExtractionMode, attempts int) error {
	r.calls.Add(1)
	if attempts == 1 {
		return errors.New("provider timeout")
	}
	return nil
}

func newTestQueue(r Runner) *ExtractQueue {
	return NewExtractQueue(r, slog.New(slog.DiscardHandler),
		WithWorkers(1),
		WithMaxAttempts(3),
		WithRetryBackoff(time.Millisecond),
		WithProcessTimeout(time.Second),
	)
}

func TestQueueRetriesThenSucceeds(t *testing.T) {
	r := &countingRunner{failures: 2, err: errors.New("provider timeout")}
	q := newTestQueue(r)

	require.NoError(t, q.Enqueue(context.Background(), Job{NoticeID: uuid.New(), Mode: constants.ModeFull}))

	assert.Eventually(t, func() bool { return r.calls.Load() == 3 },
		2*time.Second, 10*time.Millisecond, "two retryable failures then success")

	q.Shutdown(context.Background())
	assert.Equal(t, int32(3), r.calls.Load())
}

func TestQueueTerminalErrorIsNotRetried(t *testing.T) {
	r := &countingRunner{failures: 10, err: common.ErrNotFound}
	q := newTestQueue(r)

	require.NoError(t, q.Enqueue(context.Background(), Job{NoticeID: uuid.New(), Mode: constants.ModeFull}))
	q.Shutdown(context.Background())

	assert.Equal(t, int32(1), r.calls.Load())
}

func TestQueueAttemptsExhausted(t *testing.T) {
	r := &countingRunner{failures: 10, err: errors.New("still broken")}
	q := newTestQueue(r)

	require.NoError(t, q.Enqueue(context.Background(), Job{NoticeID: uuid.New(), Mode: constants.ModeDeathDate}))

	assert.Eventually(t, func() bool { return r.calls.Load() == 3 },
		2*time.Second, 10*time.Millisecond)
	q.Shutdown(context.Background())

	assert.Equal(t, int32(3), r.calls.Load(), "exactly maxAttempts passes, then the job is dropped")
}

func TestQueueBackpressureDoesNotDeadlock(t *testing.T) {
	// A single worker and a one-slot channel force every producer through
	// the blocking backpressure path at once.
	r := &countingRunner{}
	q := NewExtractQueue(r, slog.New(slog.DiscardHandler),
		WithWorkers(1),
		WithQueueSize(1),
		WithProcessTimeout(time.Second),
	)

	var producers sync.WaitGroup
	for i := 0; i < 8; i++ {
		producers.Add(1)
		go func() {
			defer producers.Done()
			_ = q.Enqueue(context.Background(), Job{NoticeID: uuid.New(), Mode: constants.ModeFull, Attempt: 1})
		}()
	}
	producers.Wait()

	q.Shutdown(context.Background())
	assert.Equal(t, int32(8), r.calls.Load())
}

func TestQueueRetryOnFullChannelKeepsDraining(t *testing.T) {
	// Every job fails its first attempt; with an in-worker re-enqueue this
	// saturates a one-slot channel and wedges the worker on its own send.
	r := &firstAttemptFailRunner{}
	q := NewExtractQueue(r, slog.New(slog.DiscardHandler),
		WithWorkers(1),
		WithQueueSize(1),
		WithMaxAttempts(2),
		WithRetryBackoff(time.Millisecond),
		WithProcessTimeout(time.Second),
	)

	for i := 0; i < 4; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{NoticeID: uuid.New(), Mode: constants.ModeFull}))
	}

	// 4 first attempts fail, 4 retries run; the queue must not deadlock.
	assert.Eventually(t, func() bool { return r.calls.Load() == 8 },
		5*time.Second, 10*time.Millisecond)
	q.Shutdown(context.Background())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, DispositionSuccess, Classify(nil))
	assert.Equal(t, DispositionTerminal, Classify(common.ErrNotFound))
	assert.Equal(t, DispositionTerminal, Classify(common.ErrDuplicateHash))
	assert.Equal(t, DispositionRetryable, Classify(errors.New("dial tcp: timeout")))
}
