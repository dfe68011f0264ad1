package accessgateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/access-gateway/internal/actuator"
	"github.com/magabrotheeeer/access-gateway/internal/cache"
	"github.com/magabrotheeeer/access-gateway/internal/config"
	"github.com/magabrotheeeer/access-gateway/internal/events"
	"github.com/magabrotheeeer/access-gateway/internal/lib/jwt"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/metrics"
	"github.com/magabrotheeeer/access-gateway/internal/migrations"
	"github.com/magabrotheeeer/access-gateway/internal/rabbitmq"
	"github.com/magabrotheeeer/access-gateway/internal/services/device"
	"github.com/magabrotheeeer/access-gateway/internal/services/entry"
	"github.com/magabrotheeeer/access-gateway/internal/services/observation"
	"github.com/magabrotheeeer/access-gateway/internal/services/tariff"
	"github.com/magabrotheeeer/access-gateway/internal/storage/repository"
)

// shutdownTimeout общий бюджет на остановку HTTP-сервера и фоновых вызовов.
const shutdownTimeout = 15 * time.Second

// App HTTP-шлюз со всеми ресурсами, которыми он владеет.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	cache      *cache.Cache
	conn       *amqp.Connection
	ch         *amqp.Channel
	dispatcher *actuator.Dispatcher
	queue      *events.Queue
}

// New подключает хранилище, применяет миграции и собирает маршруты.
// Redis и RabbitMQ необязательны: пустой адрес отключает их.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "accessgateway.New"

	db, err := repository.New(cfg.StorageConnectionString, cfg.StoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{logger: logger, db: db}

	var tariffCache tariff.Cache
	if cfg.AddressRedis != "" {
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.closeResources()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.cache = c
		tariffCache = c
	} else {
		logger.Info("redis address is empty, tariff cache disabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	var publisher events.Publisher = events.Nop{}
	if cfg.RabbitMQURL != "" {
		conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
		if err != nil {
			app.closeResources()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.conn = conn
		ch, err := rabbitmq.SetupChannel(conn, rabbitmq.AuditQueues())
		if err != nil {
			app.closeResources()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.ch = ch
		app.queue = events.NewQueue(events.NewAMQPPublisher(ch, m), cfg.EventBuffer, logger, m)
		publisher = app.queue
	} else {
		logger.Info("rabbitmq url is empty, lifecycle events disabled")
	}

	client := actuator.NewClient(cfg.ActuatorBaseURL, cfg.ActuatorPath, cfg.ActuatorTimeout)
	app.dispatcher = actuator.NewDispatcher(client, cfg.ActuatorTimeout, logger, m)

	tariffService := tariff.NewService(db, tariffCache, cfg.TariffTTL, logger)
	entryService := entry.NewLifecycle(db, tariffService, app.dispatcher, logger,
		entry.WithPulse(cfg.ActuatorDuration),
		entry.WithPublisher(publisher),
		entry.WithMetrics(m),
	)

	deps := Deps{
		Log:           logger,
		Entries:       entryService,
		Devices:       device.NewService(db, logger),
		Tariffs:       tariffService,
		Observations:  observation.NewService(db, publisher, logger),
		Health:        db,
		HealthTimeout: cfg.StoreTimeout,
		Limiter:       rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		ExposeErrors:  cfg.ExposeErrors(),
	}
	if cfg.JWTSecretKey != "" {
		deps.Admin = jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	} else {
		logger.Warn("admin_auth.jwt_secret_key is empty, catalog writes are not protected")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, deps)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// Run обслуживает HTTP до отмены ctx, затем останавливает сервер,
// дожидается вызовов контроллера и отправки событий, затем закрывает брокер, кеш и базу.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down HTTP server gracefully")
	if err := a.server.Shutdown(timeoutCtx); err != nil {
		a.logger.Error("failed to shutdown HTTP server", sl.Err(err))
		runErr = errors.Join(runErr, err)
	}
	if err := a.dispatcher.Shutdown(timeoutCtx); err != nil {
		a.logger.Warn("actuator calls abandoned on shutdown", sl.Err(err))
	}
	if a.queue != nil {
		if err := a.queue.Shutdown(timeoutCtx); err != nil {
			a.logger.Warn("lifecycle events dropped on shutdown", sl.Err(err))
		}
	}
	a.closeResources()
	return runErr
}

func (a *App) closeResources() {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
