// Package accessevents запускает потребителя событий шлюза, который пишет
// журнал аудита по событиям сессий въезда и отметкам о номерах.
package accessevents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/access-gateway/internal/config"
	"github.com/magabrotheeeer/access-gateway/internal/events"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/rabbitmq"
)

// ErrBrokerNotConfigured возвращается, если в конфиге нет адреса RabbitMQ.
var ErrBrokerNotConfigured = errors.New("rabbitmq url is not configured")

// App потребитель очередей аудита.
type App struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queues []string
	logger *slog.Logger
}

// New подключается к брокеру и объявляет очереди аудита.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "accessevents.New"
	if cfg.RabbitMQURL == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrBrokerNotConfigured)
	}

	conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	queues := rabbitmq.AuditQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		conn:   conn,
		ch:     ch,
		queues: queueNames(queues),
		logger: logger,
	}, nil
}

// Run потребляет очереди до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	handler := events.AuditHandler(a.logger)
	for _, q := range a.queues {
		if err := rabbitmq.ConsumerMessage(ctx, a.ch, q, a.logger, handler); err != nil {
			a.logger.Error("failed to start consumer", slog.String("queue", q), sl.Err(err))
			a.close()
			return err
		}
		a.logger.Info("consumer started", slog.String("queue", q))
	}

	<-ctx.Done()
	a.logger.Info("access-events shutting down gracefully")
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}

// queueNames имена очередей без повторов, в порядке объявления.
func queueNames(queues []rabbitmq.QueueConfig) []string {
	seen := make(map[string]struct{}, len(queues))
	names := make([]string, 0, len(queues))
	for _, q := range queues {
		if _, ok := seen[q.QueueName]; ok {
			continue
		}
		seen[q.QueueName] = struct{}{}
		names = append(names, q.QueueName)
	}
	return names
}
