package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// CreateToll создаёт пункт оплаты. Повторное имя даёт storage.ErrDuplicate.
func (s *Storage) CreateToll(ctx context.Context, name string) (*models.Toll, error) {
	const op = "storage.CreateToll"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t := models.Toll{Name: name}
	err := s.DB.QueryRowContext(ctx, `INSERT INTO tolls (name) VALUES ($1) RETURNING id`, name).Scan(&t.ID)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}

// LookupTariff ищет тариф по паре (пункт оплаты, тип транспорта).
func (s *Storage) LookupTariff(ctx context.Context, tollID int64, vehicleType string) (*models.Tariff, error) {
	const op = "storage.LookupTariff"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var t models.Tariff
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, toll_id, vehicle_type, tariff FROM tariffs WHERE toll_id = $1 AND vehicle_type = $2`,
		tollID, vehicleType).Scan(&t.ID, &t.TollID, &t.VehicleType, &t.Amount)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}

// CreateTariff создаёт тариф. Пара (toll_id, vehicle_type) уникальна,
// повтор даёт storage.ErrDuplicate.
func (s *Storage) CreateTariff(ctx context.Context, req models.TariffRequest) (*models.Tariff, error) {
	const op = "storage.CreateTariff"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t := models.Tariff{TollID: req.TollID, VehicleType: req.VehicleType, Amount: req.Amount}
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO tariffs (toll_id, vehicle_type, tariff) VALUES ($1, $2, $3) RETURNING id`,
		req.TollID, req.VehicleType, req.Amount).Scan(&t.ID)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}

// UpdateTariff меняет цену тарифа по id.
func (s *Storage) UpdateTariff(ctx context.Context, id int64, amount decimal.Decimal) (*models.Tariff, error) {
	const op = "storage.UpdateTariff"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var t models.Tariff
	err := s.DB.QueryRowContext(ctx,
		`UPDATE tariffs SET tariff = $2 WHERE id = $1 RETURNING id, toll_id, vehicle_type, tariff`,
		id, amount).Scan(&t.ID, &t.TollID, &t.VehicleType, &t.Amount)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}
