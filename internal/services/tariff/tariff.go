// Package tariff управляет пунктами оплаты и тарифами. Тарифы кешируются в Redis,
// ошибки кеша только логируются.
package tariff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/access-gateway/internal/cache"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// ErrValidation некорректный тариф или пункт оплаты.
var ErrValidation = errors.New("validation failed")

// Repository операции хранилища с тарифами.
type Repository interface {
	CreateToll(ctx context.Context, name string) (*models.Toll, error)
	LookupTariff(ctx context.Context, tollID int64, vehicleType string) (*models.Tariff, error)
	CreateTariff(ctx context.Context, req models.TariffRequest) (*models.Tariff, error)
	UpdateTariff(ctx context.Context, id int64, amount decimal.Decimal) (*models.Tariff, error)
}

// Cache кеш значений по ключу.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service тарифы и пункты оплаты.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService создаёт сервис. cache может быть nil, тогда тарифы всегда читаются из хранилища.
func NewService(repo Repository, c Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   log,
	}
}

// Lookup возвращает тариф (tollID, vehicleType), сначала пробуя кеш.
func (s *Service) Lookup(ctx context.Context, tollID int64, vehicleType string) (*models.Tariff, error) {
	const op = "services.tariff.Lookup"
	vehicleType = strings.TrimSpace(vehicleType)
	if tollID <= 0 || vehicleType == "" {
		return nil, fmt.Errorf("%s: %w: toll_id and vehicle_type are required", op, ErrValidation)
	}

	key := cache.TariffKey(tollID, vehicleType)
	if s.cache != nil {
		var cached models.Tariff
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn("failed to read tariff from cache", slog.String("key", key), sl.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	t, err := s.repo.LookupTariff(ctx, tollID, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.store(ctx, key, t)
	return t, nil
}

// CreateTariff создаёт тариф. Повтор для той же пары отклоняется хранилищем.
func (s *Service) CreateTariff(ctx context.Context, req models.TariffRequest) (*models.Tariff, error) {
	const op = "services.tariff.CreateTariff"
	req.VehicleType = strings.TrimSpace(req.VehicleType)
	if req.VehicleType == "" {
		return nil, fmt.Errorf("%s: %w: vehicle_type is required", op, ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%s: %w: tariff must not be negative", op, ErrValidation)
	}

	t, err := s.repo.CreateTariff(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("tariff created", slog.Int64("id", t.ID), slog.Int64("toll_id", t.TollID), slog.String("vehicle_type", t.VehicleType))
	s.store(ctx, cache.TariffKey(t.TollID, t.VehicleType), t)
	return t, nil
}

// UpdateTariff меняет цену тарифа и сбрасывает его кеш.
func (s *Service) UpdateTariff(ctx context.Context, req models.TariffUpdateRequest) (*models.Tariff, error) {
	const op = "services.tariff.UpdateTariff"
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%s: %w: tariff must not be negative", op, ErrValidation)
	}

	t, err := s.repo.UpdateTariff(ctx, req.ID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s.cache != nil {
		key := cache.TariffKey(t.TollID, t.VehicleType)
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Warn("failed to invalidate tariff cache", slog.String("key", key), sl.Err(err))
		}
	}
	s.log.Info("tariff updated", slog.Int64("id", t.ID), slog.String("tariff", t.Amount.String()))
	return t, nil
}

// CreateToll создаёт пункт оплаты с уникальным именем.
func (s *Service) CreateToll(ctx context.Context, req models.TollRequest) (*models.Toll, error) {
	const op = "services.tariff.CreateToll"
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w: name is required", op, ErrValidation)
	}
	toll, err := s.repo.CreateToll(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("toll created", slog.Int64("id", toll.ID), slog.String("name", toll.Name))
	return toll, nil
}

func (s *Service) store(ctx context.Context, key string, t *models.Tariff) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, t, s.ttl); err != nil {
		s.log.Warn("failed to cache tariff", slog.String("key", key), sl.Err(err))
	}
}
