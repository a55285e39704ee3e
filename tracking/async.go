package tracking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Sink persists conversion events.
type Sink interface {
	Append(ctx context.Context, e Event) error
}

// ErrClosed is returned by [AsyncTracker.Close] when it was already closed.
var ErrClosed = errors.New("tracker closed")

// AsyncTracker hands events to a sink from a single background goroutine.
// Track never blocks: when the buffer is full, or after Close, the event
// is dropped and counted.
type AsyncTracker struct {
	sink    Sink
	log     *zap.Logger
	events  chan Event
	done    chan struct{}
	cancel  context.CancelFunc
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// NewAsyncTracker starts a tracker with room for size pending events.
// Sink failures are logged to log, which may be nil.
func NewAsyncTracker(sink Sink, log *zap.Logger, size int) *AsyncTracker {
	if log == nil {
		log = zap.NewNop()
	}
	if size < 1 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &AsyncTracker{
		sink:   sink,
		log:    log,
		events: make(chan Event, size),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go t.run(ctx)
	return t
}

func (t *AsyncTracker) run(ctx context.Context) {
	defer close(t.done)
	for e := range t.events {
		if err := t.sink.Append(ctx, e); err != nil {
			t.log.Error("appending conversion event",
				zap.Stringer("id", e.ID),
				zap.String("pair", e.Pair()),
				zap.Error(err),
			)
		}
	}
}

func (t *AsyncTracker) Track(_ context.Context, e Event) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		t.drop(e, "tracker closed")
		return
	}
	select {
	case t.events <- e:
	default:
		t.drop(e, "buffer full")
	}
}

func (t *AsyncTracker) drop(e Event, reason string) {
	t.dropped.Add(1)
	t.log.Warn("dropping conversion event",
		zap.Stringer("id", e.ID),
		zap.String("pair", e.Pair()),
		zap.String("reason", reason),
	)
}

// Dropped returns the number of events that were never handed to the sink.
func (t *AsyncTracker) Dropped() int64 {
	return t.dropped.Load()
}

// Close stops accepting events and waits until the pending ones reach the sink.
// If ctx expires first, the pending sink call is cancelled and ctx.Err()
// is returned.
func (t *AsyncTracker) Close(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	t.closed = true
	close(t.events)
	t.mu.Unlock()

	select {
	case <-t.done:
		t.cancel()
		return nil
	case <-ctx.Done():
		t.cancel()
		<-t.done
		return ctx.Err()
	}
}
