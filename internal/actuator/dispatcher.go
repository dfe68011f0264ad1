package actuator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/metrics"
)

// Activator выполняет одну команду контроллеру.
type Activator interface {
	Activate(ctx context.Context, cmd Command) error
}

// Dispatcher запускает команды в фоновых горутинах. Вызывающий никогда не ждёт
// результата: успех, таймаут и ошибка одинаково заканчиваются записью в лог.
type Dispatcher struct {
	activator Activator
	timeout   time.Duration
	log       *slog.Logger
	metrics   *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создаёт диспетчер с верхней границей timeout на одну команду.
func NewDispatcher(activator Activator, timeout time.Duration, log *slog.Logger, m *metrics.Metrics) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		activator: activator,
		timeout:   timeout,
		log:       log,
		metrics:   m,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Dispatch ставит команду в фон и сразу возвращается.
// После Shutdown команды отбрасываются, метод возвращает false.
func (d *Dispatcher) Dispatch(cmd Command) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn("actuator command dropped, dispatcher stopped",
			slog.Int64("entry_id", cmd.EntryID), slog.String("device_id", cmd.DeviceID))
		return false
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(cmd)
	return true
}

func (d *Dispatcher) run(cmd Command) {
	defer d.wg.Done()

	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()

	start := time.Now()
	err := d.activator.Activate(ctx, cmd)
	elapsed := time.Since(start)

	log := d.log.With(
		slog.String("op", "actuator.Dispatcher.run"),
		slog.Int64("entry_id", cmd.EntryID),
		slog.String("device_id", cmd.DeviceID),
		slog.Duration("elapsed", elapsed),
	)
	switch {
	case err == nil:
		d.metrics.ObserveActuator(metrics.ActuatorOK, elapsed)
		log.Info("actuator command delivered")
	case errors.Is(d.ctx.Err(), context.Canceled):
		d.metrics.ObserveActuator(metrics.ActuatorAbandoned, elapsed)
		log.Warn("actuator command abandoned on shutdown", sl.Err(err))
	default:
		d.metrics.ObserveActuator(metrics.ActuatorFailed, elapsed)
		log.Warn("actuator command failed", sl.Err(err))
	}
}

// Shutdown перестаёт принимать команды и ждёт завершения запущенных.
// Если ctx истекает раньше, оставшиеся команды отменяются.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}
