package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

const entryColumns = `id, device_id, user_id, vehicle_type, entry_label, amount_due, status, opened_at, closed_at`

// Финальная сумма не может быть меньше уже привязанной: берётся максимум
// из текущей amount_due и тарифа пункта оплаты, имя которого совпадает с nombre_entrada.
const finalizeSet = `
	SET status = 'FINALIZED',
	    closed_at = now(),
	    amount_due = GREATEST(e.amount_due, COALESCE((
	        SELECT t.tariff FROM tariffs t
	        JOIN tolls tl ON tl.id = t.toll_id
	        WHERE tl.name = e.entry_label AND t.vehicle_type = e.vehicle_type
	    ), 0))`

func scanEntry(row rowScanner) (*models.Entry, error) {
	var (
		e        models.Entry
		userID   sql.NullString
		status   string
		closedAt sql.NullTime
	)
	if err := row.Scan(&e.ID, &e.DeviceID, &userID, &e.VehicleType, &e.EntryLabel,
		&e.AmountDue, &status, &e.OpenedAt, &closedAt); err != nil {
		return nil, err
	}
	e.UserID = nullableString(userID)
	e.Status = models.EntryStatus(status)
	e.ClosedAt = nullableTime(closedAt)
	return &e, nil
}

// OpenEntry вставляет новую открытую сессию и возвращает её вместе с числом
// сессий пользователя, которые уже были открыты до вставки.
func (s *Storage) OpenEntry(ctx context.Context, req models.RegisterEntryRequest) (*models.Entry, int, error) {
	const op = "storage.OpenEntry"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `WITH prior AS (
				SELECT count(*) AS n FROM entries WHERE user_id = $2 AND status = 'OPEN'
			  ), ins AS (
				INSERT INTO entries (device_id, user_id, vehicle_type, entry_label)
				VALUES ($1, $2, $3, $4)
				RETURNING ` + entryColumns + `
			  )
			  SELECT ins.*, prior.n FROM ins, prior`

	var (
		e        models.Entry
		userID   sql.NullString
		status   string
		closedAt sql.NullTime
		prior    int
	)
	err := s.DB.QueryRowContext(ctx, query, req.DeviceID, req.UserID, req.VehicleType, req.EntryLabel).
		Scan(&e.ID, &e.DeviceID, &userID, &e.VehicleType, &e.EntryLabel,
			&e.AmountDue, &status, &e.OpenedAt, &closedAt, &prior)
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	e.UserID = nullableString(userID)
	e.Status = models.EntryStatus(status)
	e.ClosedAt = nullableTime(closedAt)
	return &e, prior, nil
}

// LatestEntryForUser возвращает последнюю открытую по времени сессию пользователя.
// При равном opened_at побеждает более поздняя вставка.
func (s *Storage) LatestEntryForUser(ctx context.Context, userID string) (*models.Entry, error) {
	const op = "storage.LatestEntryForUser"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM entries
			  WHERE user_id = $1
			  ORDER BY opened_at DESC, id DESC
			  LIMIT 1`
	e, err := scanEntry(s.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, wrap(op, err)
	}
	return e, nil
}

// FinalizeEntry закрывает самую позднюю открытую сессию устройства одним оператором.
func (s *Storage) FinalizeEntry(ctx context.Context, deviceID string) (*models.Entry, error) {
	const op = "storage.FinalizeEntry"
	return s.finalize(ctx, op, "device_id", deviceID)
}

// FinalizeEntryByUser закрывает самую позднюю открытую сессию пользователя.
func (s *Storage) FinalizeEntryByUser(ctx context.Context, userID string) (*models.Entry, error) {
	const op = "storage.FinalizeEntryByUser"
	return s.finalize(ctx, op, "user_id", userID)
}

// column подставляется только из констант выше.
func (s *Storage) finalize(ctx context.Context, op, column, value string) (*models.Entry, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `UPDATE entries e` + finalizeSet + `
			  WHERE e.id = (
				SELECT id FROM entries
				WHERE ` + column + ` = $1 AND status = 'OPEN'
				ORDER BY opened_at DESC, id DESC
				LIMIT 1
				FOR UPDATE
			  ) AND e.status = 'OPEN'
			  RETURNING ` + prefixed("e", entryColumns)

	e, err := scanEntry(s.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		return nil, wrap(op, err)
	}
	return e, nil
}

// SetAmountDue записывает сумму к оплате в открытую сессию.
// Для закрытой сессии возвращает storage.ErrInvalidState.
func (s *Storage) SetAmountDue(ctx context.Context, entryID int64, amount decimal.Decimal) (*models.Entry, error) {
	const op = "storage.SetAmountDue"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `UPDATE entries SET amount_due = $2
			  WHERE id = $1 AND status = 'OPEN'
			  RETURNING ` + entryColumns
	e, err := scanEntry(s.DB.QueryRowContext(ctx, query, entryID, amount))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, wrap(op, err)
	}

	var status string
	err = s.DB.QueryRowContext(ctx, `SELECT status FROM entries WHERE id = $1`, entryID).Scan(&status)
	if err != nil {
		return nil, wrap(op, err)
	}
	return nil, fmt.Errorf("%s: %w: entry %d is %s", op, storage.ErrInvalidState, entryID, status)
}

// ListEntries возвращает журнал сессий, новые первыми, с последними номером
// и видеофрагментом, связанными с тем же пользователем.
func (s *Storage) ListEntries(ctx context.Context, limit, offset int) ([]*models.EntryView, error) {
	const op = "storage.ListEntries"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + prefixed("e", entryColumns) + `, p.plate_text, v.filename
			  FROM entries e
			  LEFT JOIN LATERAL (
				SELECT plate_text FROM plate_observations po
				WHERE po.linked_user_id = e.user_id
				ORDER BY po.observed_at DESC, po.id DESC LIMIT 1
			  ) p ON true
			  LEFT JOIN LATERAL (
				SELECT filename FROM video_clips vc
				WHERE vc.linked_user_id = e.user_id
				ORDER BY vc.captured_at DESC, vc.id DESC LIMIT 1
			  ) v ON true
			  ORDER BY e.opened_at DESC, e.id DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := make([]*models.EntryView, 0)
	for rows.Next() {
		var (
			item     models.EntryView
			userID   sql.NullString
			status   string
			closedAt sql.NullTime
			plate    sql.NullString
			clip     sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.DeviceID, &userID, &item.VehicleType, &item.EntryLabel,
			&item.AmountDue, &status, &item.OpenedAt, &closedAt, &plate, &clip); err != nil {
			return nil, wrap(op, err)
		}
		item.UserID = nullableString(userID)
		item.Status = models.EntryStatus(status)
		item.ClosedAt = nullableTime(closedAt)
		item.LastPlate = nullableString(plate)
		item.LastClip = nullableString(clip)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}
