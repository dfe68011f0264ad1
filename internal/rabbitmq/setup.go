package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// AccessExchange topic-обменник событий жизненного цикла.
const AccessExchange = "access"

// Ключи маршрутизации событий.
const (
	RoutingEntryOpened    = "entry.opened"
	RoutingEntryFinalized = "entry.finalized"
	RoutingPlateReported  = "plate.reported"
)

// QueueConfig привязка очереди к обменнику по ключу.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// AuditQueues очереди аудита: все события сессий и отметок о номерах.
func AuditQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "access.audit", RoutingKey: "entry.*"},
		{QueueName: "access.audit", RoutingKey: "plate.*"},
	}
}

// SetupChannel открывает канал, объявляет обменник и привязывает очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		AccessExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			AccessExchange,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
