package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// AsyncNotifierConfig holds configuration for the async notifier.
type AsyncNotifierConfig struct {
	// BufferSize is the size of the notification channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines delivering notifications.
	NumWorkers int
	// DeliverTimeout is the timeout for delivering a single notification.
	DeliverTimeout time.Duration
}

// DefaultAsyncNotifierConfig returns sensible defaults for the async notifier.
func DefaultAsyncNotifierConfig() AsyncNotifierConfig {
	return AsyncNotifierConfig{
		BufferSize:     1000,
		NumWorkers:     4,
		DeliverTimeout: 5 * time.Second,
	}
}

// AsyncNotifier wraps a Notifier with a buffered worker pool so notification
// persistence never blocks the request path. This prevents unbounded
// goroutine creation under high load.
type AsyncNotifier struct {
	inner          Notifier
	notifCh        chan model.Notification
	wg             sync.WaitGroup
	stopCh         chan struct{}
	deliverTimeout time.Duration

	// Metrics
	enqueued  int64
	dropped   int64
	delivered int64
}

// NewAsyncNotifier creates a new async notifier with the given configuration.
func NewAsyncNotifier(inner Notifier, cfg AsyncNotifierConfig) *AsyncNotifier {
	if inner == nil {
		return nil
	}

	an := &AsyncNotifier{
		inner:          inner,
		notifCh:        make(chan model.Notification, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		deliverTimeout: cfg.DeliverTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		an.wg.Add(1)
		go an.worker()
	}

	return an
}

// Notify enqueues the notification for async delivery. A full buffer drops
// the notification rather than blocking the caller.
func (an *AsyncNotifier) Notify(_ context.Context, n model.Notification) {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	select {
	case an.notifCh <- n:
		atomic.AddInt64(&an.enqueued, 1)
	default:
		atomic.AddInt64(&an.dropped, 1)
		log.Warn().Str("event", n.Event).Msg("Notification buffer full, dropping")
	}
}

// worker delivers notifications from the channel.
func (an *AsyncNotifier) worker() {
	defer an.wg.Done()

	for {
		select {
		case n, ok := <-an.notifCh:
			if !ok {
				return
			}
			an.deliver(n)
		case <-an.stopCh:
			// Drain remaining notifications before stopping
			for {
				select {
				case n := <-an.notifCh:
					an.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (an *AsyncNotifier) deliver(n model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), an.deliverTimeout)
	defer cancel()

	an.inner.Notify(ctx, n)
	atomic.AddInt64(&an.delivered, 1)
}

// Stop gracefully shuts down the async notifier, waiting for pending
// notifications to be delivered.
func (an *AsyncNotifier) Stop() {
	close(an.stopCh)
	an.wg.Wait()
	close(an.notifCh)
}

// Stats returns current async notifier statistics.
func (an *AsyncNotifier) Stats() (enqueued, dropped, delivered int64) {
	return atomic.LoadInt64(&an.enqueued),
		atomic.LoadInt64(&an.dropped),
		atomic.LoadInt64(&an.delivered)
}
