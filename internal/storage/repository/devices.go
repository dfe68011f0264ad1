package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// CreateDevice регистрирует устройство. Повторный id_dispositivo даёт storage.ErrDuplicate.
func (s *Storage) CreateDevice(ctx context.Context, d models.Device) (*models.Device, error) {
	const op = "storage.CreateDevice"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO devices (id_dispositivo, id_zona, nombre_dispositivo, tipo_dispositivo)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query, d.ID, d.Zone, d.Name, string(d.Type)); err != nil {
		return nil, wrap(op, err)
	}
	return &d, nil
}

// ListDevices возвращает все зарегистрированные устройства.
func (s *Storage) ListDevices(ctx context.Context) ([]*models.Device, error) {
	const op = "storage.ListDevices"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `SELECT id_dispositivo, id_zona, nombre_dispositivo, tipo_dispositivo
										  FROM devices ORDER BY id_dispositivo`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Device, 0)
	for rows.Next() {
		var (
			d   models.Device
			typ string
		)
		if err := rows.Scan(&d.ID, &d.Zone, &d.Name, &typ); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		d.Type = models.DeviceType(typ)
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
