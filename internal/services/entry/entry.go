// Package entry содержит жизненный цикл сессии въезда: открытие, привязку
// тарифа и финализацию. Сервис не хранит состояние между вызовами, всё
// состояние сессий читается из хранилища.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/access-gateway/internal/actuator"
	"github.com/magabrotheeeer/access-gateway/internal/events"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/metrics"
	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

var (
	// ErrValidation входные данные неполны, хранилище не вызывалось.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream хранилище не смогло выполнить операцию.
	ErrUpstream = errors.New("upstream failure")
)

// Значения метки by для метрики финализации.
const (
	byDevice = "device"
	byUser   = "user"
)

// Store операции хранилища, которые нужны жизненному циклу.
type Store interface {
	OpenEntry(ctx context.Context, req models.RegisterEntryRequest) (*models.Entry, int, error)
	LatestEntryForUser(ctx context.Context, userID string) (*models.Entry, error)
	FinalizeEntry(ctx context.Context, deviceID string) (*models.Entry, error)
	FinalizeEntryByUser(ctx context.Context, userID string) (*models.Entry, error)
	SetAmountDue(ctx context.Context, entryID int64, amount decimal.Decimal) (*models.Entry, error)
	ListEntries(ctx context.Context, limit, offset int) ([]*models.EntryView, error)
}

// TariffLookup поиск тарифа по пункту оплаты и типу ТС.
type TariffLookup interface {
	Lookup(ctx context.Context, tollID int64, vehicleType string) (*models.Tariff, error)
}

// Dispatcher фоновая отправка команды контроллеру шлагбаума.
type Dispatcher interface {
	Dispatch(cmd actuator.Command) bool
}

// Lifecycle оркестратор сессий въезда.
type Lifecycle struct {
	store      Store
	tariffs    TariffLookup
	dispatcher Dispatcher
	publisher  events.Publisher
	metrics    *metrics.Metrics
	pulse      time.Duration
	log        *slog.Logger
}

// Option настраивает Lifecycle.
type Option func(*Lifecycle)

// WithPulse задаёт длительность сигнала на шлагбаум.
func WithPulse(d time.Duration) Option {
	return func(l *Lifecycle) {
		if d > 0 {
			l.pulse = d
		}
	}
}

// WithPublisher задаёт публикатор событий жизненного цикла.
func WithPublisher(p events.Publisher) Option {
	return func(l *Lifecycle) {
		if p != nil {
			l.publisher = p
		}
	}
}

// WithMetrics задаёт метрики.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Lifecycle) { l.metrics = m }
}

// NewLifecycle создаёт оркестратор. Без опций события не публикуются,
// а импульс равен actuator.DefaultPulse.
func NewLifecycle(store Store, tariffs TariffLookup, dispatcher Dispatcher, log *slog.Logger, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		store:      store,
		tariffs:    tariffs,
		dispatcher: dispatcher,
		publisher:  events.Nop{},
		pulse:      actuator.DefaultPulse,
		log:        log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RegisterEntry открывает сессию и после успешной записи отправляет команду шлагбауму.
// Ошибка контроллера на результат не влияет. Повторное открытие для пользователя
// с уже открытой сессией разрешено и только отмечается в логе и метрике.
func (l *Lifecycle) RegisterEntry(ctx context.Context, req models.RegisterEntryRequest) (*models.Entry, error) {
	const op = "services.entry.RegisterEntry"
	log := l.log.With(slog.String("op", op))

	req = models.RegisterEntryRequest{
		DeviceID:    strings.TrimSpace(req.DeviceID),
		UserID:      strings.TrimSpace(req.UserID),
		VehicleType: strings.TrimSpace(req.VehicleType),
		EntryLabel:  strings.TrimSpace(req.EntryLabel),
	}
	if missing := missingFields(req); len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: empty %s", op, ErrValidation, strings.Join(missing, ", "))
	}

	e, prior, err := l.store.OpenEntry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}

	l.metrics.IncOpened()
	if prior > 0 {
		l.metrics.IncDuplicateOpen()
		log.Warn("user already had open entries",
			slog.String("user_id", req.UserID),
			slog.Int("open_before", prior),
			slog.Int64("entry_id", e.ID),
		)
	}

	if !l.dispatcher.Dispatch(actuator.Command{EntryID: e.ID, DeviceID: e.DeviceID, Duration: l.pulse}) {
		log.Warn("gate signal not sent", slog.Int64("entry_id", e.ID))
	}

	l.publish(ctx, events.EntryOpened, e)
	log.Info("entry opened", slog.Int64("entry_id", e.ID), slog.String("device_id", e.DeviceID))
	return e, nil
}

func missingFields(req models.RegisterEntryRequest) []string {
	var missing []string
	if req.DeviceID == "" {
		missing = append(missing, "id_dispositivo")
	}
	if req.UserID == "" {
		missing = append(missing, "id_usuario")
	}
	if req.VehicleType == "" {
		missing = append(missing, "vehicle_type")
	}
	if req.EntryLabel == "" {
		missing = append(missing, "nombre_entrada")
	}
	return missing
}

// FinalizeByDevice закрывает самую позднюю открытую сессию устройства.
// Если открытых сессий нет, возвращает storage.ErrNotFound и ничего не меняет.
func (l *Lifecycle) FinalizeByDevice(ctx context.Context, deviceID string) (*models.Entry, error) {
	const op = "services.entry.FinalizeByDevice"
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, fmt.Errorf("%s: %w: empty id_dispositivo", op, ErrValidation)
	}

	e, err := l.store.FinalizeEntry(ctx, deviceID)
	if err != nil {
		return nil, classify(op, err)
	}
	l.finalized(ctx, op, byDevice, e)
	return e, nil
}

// FinalizeByUser закрывает самую позднюю открытую сессию пользователя.
func (l *Lifecycle) FinalizeByUser(ctx context.Context, userID string) (*models.Entry, error) {
	const op = "services.entry.FinalizeByUser"
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%s: %w: empty id_usuario", op, ErrValidation)
	}

	e, err := l.store.FinalizeEntryByUser(ctx, userID)
	if err != nil {
		return nil, classify(op, err)
	}
	l.finalized(ctx, op, byUser, e)
	return e, nil
}

func (l *Lifecycle) finalized(ctx context.Context, op, by string, e *models.Entry) {
	l.metrics.IncFinalized(by)
	l.publish(ctx, events.EntryFinalized, e)
	l.log.Info("entry finalized",
		slog.String("op", op),
		slog.Int64("entry_id", e.ID),
		slog.String("amount_due", e.AmountDue.String()),
	)
}

// AttachFare записывает в открытую сессию цену тарифа (toll_id, vehicle_type).
// Для закрытой сессии возвращает storage.ErrInvalidState.
func (l *Lifecycle) AttachFare(ctx context.Context, entryID int64, req models.AttachFareRequest) (*models.Entry, error) {
	const op = "services.entry.AttachFare"
	if entryID <= 0 || req.TollID <= 0 || strings.TrimSpace(req.VehicleType) == "" {
		return nil, fmt.Errorf("%s: %w: entry id, toll_id and vehicle_type are required", op, ErrValidation)
	}

	tariff, err := l.tariffs.Lookup(ctx, req.TollID, strings.TrimSpace(req.VehicleType))
	if err != nil {
		return nil, classify(op, err)
	}

	e, err := l.store.SetAmountDue(ctx, entryID, tariff.Amount)
	if err != nil {
		return nil, classify(op, err)
	}
	l.log.Info("fare attached",
		slog.String("op", op),
		slog.Int64("entry_id", e.ID),
		slog.Int64("tariff_id", tariff.ID),
	)
	return e, nil
}

// LatestForUser возвращает последнюю по времени открытия сессию пользователя.
func (l *Lifecycle) LatestForUser(ctx context.Context, userID string) (*models.Entry, error) {
	const op = "services.entry.LatestForUser"
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%s: %w: empty id_usuario", op, ErrValidation)
	}
	e, err := l.store.LatestEntryForUser(ctx, userID)
	if err != nil {
		return nil, classify(op, err)
	}
	return e, nil
}

// ListEntries возвращает журнал сессий, новые первыми.
func (l *Lifecycle) ListEntries(ctx context.Context, limit, offset int) ([]*models.EntryView, error) {
	const op = "services.entry.ListEntries"
	list, err := l.store.ListEntries(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
	return list, nil
}

func (l *Lifecycle) publish(ctx context.Context, t events.Type, e *models.Entry) {
	if err := l.publisher.Publish(context.WithoutCancel(ctx), events.NewEvent(t, e)); err != nil {
		l.log.Warn("lifecycle event not published",
			slog.String("type", string(t)),
			slog.Int64("entry_id", e.ID),
			sl.Err(err),
		)
	}
}

// classify оставляет известные ошибки хранилища как есть, остальные помечает ErrUpstream.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrInvalidState),
		errors.Is(err, storage.ErrDeviceUnknown),
		errors.Is(err, storage.ErrTollUnknown),
		errors.Is(err, storage.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
}
