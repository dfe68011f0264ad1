// Package events публикует события жизненного цикла сессий в RabbitMQ.
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	librabbitmq "github.com/magabrotheeeer/access-gateway/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/access-gateway/internal/metrics"
	"github.com/magabrotheeeer/access-gateway/internal/rabbitmq"
)

// Type тип события, он же ключ маршрутизации.
type Type string

const (
	EntryOpened    Type = rabbitmq.RoutingEntryOpened
	EntryFinalized Type = rabbitmq.RoutingEntryFinalized
	PlateReported  Type = rabbitmq.RoutingPlateReported
)

// Event конверт события.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewEvent собирает событие с новым id и текущим временем.
func NewEvent(t Type, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher отправляет события. Ошибка публикации не должна влиять на запрос.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop публикатор для запуска без брокера.
type Nop struct{}

// Publish ничего не делает.
func (Nop) Publish(context.Context, Event) error { return nil }

// AMQPPublisher публикует события в обменник access.
// amqp.Channel не потокобезопасен, поэтому публикации сериализуются.
type AMQPPublisher struct {
	mu       sync.Mutex
	ch       librabbitmq.Channel
	exchange string
	metrics  *metrics.Metrics
}

// NewAMQPPublisher создаёт публикатор поверх открытого канала.
func NewAMQPPublisher(ch librabbitmq.Channel, m *metrics.Metrics) *AMQPPublisher {
	return &AMQPPublisher{
		ch:       ch,
		exchange: rabbitmq.AccessExchange,
		metrics:  m,
	}
}

// Publish отправляет событие с ключом маршрутизации, равным его типу.
// Ошибка считается в метриках, логирует её вызывающий.
func (p *AMQPPublisher) Publish(ctx context.Context, ev Event) error {
	const op = "events.AMQPPublisher.Publish"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	err := librabbitmq.PublishMessage(p.ch, p.exchange, string(ev.Type), ev.ID.String(), ev)
	p.mu.Unlock()
	if err != nil {
		p.metrics.IncPublishFailure()
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
