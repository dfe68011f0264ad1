// Package device регистрирует пограничные устройства.
package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// ErrValidation некорректное описание устройства.
var ErrValidation = errors.New("validation failed")

// Repository операции хранилища с устройствами.
type Repository interface {
	CreateDevice(ctx context.Context, d models.Device) (*models.Device, error)
	ListDevices(ctx context.Context) ([]*models.Device, error)
}

// Service реестр устройств.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создаёт сервис устройств.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create регистрирует устройство. Повторный id_dispositivo отклоняется хранилищем.
func (s *Service) Create(ctx context.Context, req models.DeviceRequest) (*models.Device, error) {
	const op = "services.device.Create"
	d := models.Device{
		ID:   strings.TrimSpace(req.ID),
		Zone: strings.TrimSpace(req.Zone),
		Name: strings.TrimSpace(req.Name),
		Type: models.DeviceType(req.Type),
	}
	if d.ID == "" || d.Zone == "" || d.Name == "" {
		return nil, fmt.Errorf("%s: %w: id_dispositivo, id_zona and nombre_dispositivo are required", op, ErrValidation)
	}
	switch d.Type {
	case models.DeviceBLE, models.DeviceCamera, models.DevicePlateReader:
	default:
		return nil, fmt.Errorf("%s: %w: unknown tipo_dispositivo %q", op, ErrValidation, req.Type)
	}

	created, err := s.repo.CreateDevice(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("device registered", slog.String("device_id", created.ID), slog.String("type", string(created.Type)))
	return created, nil
}

// List возвращает все устройства.
func (s *Service) List(ctx context.Context) ([]*models.Device, error) {
	const op = "services.device.List"
	list, err := s.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}
