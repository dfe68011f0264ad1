package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/metrics"
)

var (
	// ErrQueueFull буфер событий заполнен, событие отброшено.
	ErrQueueFull = errors.New("event queue is full")
	// ErrQueueClosed очередь остановлена, событие отброшено.
	ErrQueueClosed = errors.New("event queue is closed")
)

// Queue передаёт события публикатору из одной фоновой горутины.
// Publish не блокируется: при заполненном буфере событие отбрасывается.
type Queue struct {
	next    Publisher
	log     *slog.Logger
	metrics *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	events chan Event
	done   chan struct{}
}

// NewQueue запускает фоновую публикацию с буфером на size событий.
func NewQueue(next Publisher, size int, log *slog.Logger, m *metrics.Metrics) *Queue {
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		next:    next,
		log:     log,
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, size),
		done:    make(chan struct{}),
	}
	go q.run()
	return q
}

// Publish ставит событие в очередь и сразу возвращается.
func (q *Queue) Publish(_ context.Context, ev Event) error {
	const op = "events.Queue.Publish"
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.metrics.IncPublishFailure()
		return fmt.Errorf("%s: %w", op, ErrQueueClosed)
	}
	select {
	case q.events <- ev:
		return nil
	default:
		q.metrics.IncPublishFailure()
		return fmt.Errorf("%s: %w", op, ErrQueueFull)
	}
}

func (q *Queue) run() {
	defer close(q.done)
	for ev := range q.events {
		if err := q.next.Publish(q.ctx, ev); err != nil {
			q.log.Warn("event delivery to broker failed",
				slog.String("type", string(ev.Type)),
				slog.String("event_id", ev.ID.String()),
				sl.Op("events.Queue.run"),
				sl.Err(err),
			)
		}
	}
}

// Shutdown перестаёт принимать события и ждёт отправки накопленных.
// Если ctx истекает раньше, оставшиеся события отбрасываются без ожидания
// зависшей отправки: её прерывает закрытие канала брокера.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.events)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		q.cancel()
		return nil
	case <-ctx.Done():
		q.cancel()
		return ctx.Err()
	}
}
