package repository

import (
	"context"
	"database/sql"

	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// Пользователь для наблюдения берётся из последней сессии, открытой на том же устройстве.
const deviceUserSubquery = `(SELECT user_id FROM entries WHERE device_id = $2 ORDER BY opened_at DESC, id DESC LIMIT 1)`

// UpsertPlateObservation дописывает наблюдение номера. Неизвестное устройство
// даёт storage.ErrDeviceUnknown.
func (s *Storage) UpsertPlateObservation(ctx context.Context, plate, deviceID string, active bool) (*models.PlateObservation, error) {
	const op = "storage.UpsertPlateObservation"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO plate_observations (plate_text, device_id, linked_user_id, active)
			  VALUES ($1, $2, ` + deviceUserSubquery + `, $3)
			  RETURNING id, plate_text, device_id, linked_user_id, active, observed_at`
	var (
		p      models.PlateObservation
		linked sql.NullString
	)
	err := s.DB.QueryRowContext(ctx, query, plate, deviceID, active).
		Scan(&p.ID, &p.PlateText, &p.DeviceID, &linked, &p.Active, &p.ObservedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	p.LinkedUserID = nullableString(linked)
	return &p, nil
}

// UpsertVideoClip дописывает ссылку на видеофрагмент.
func (s *Storage) UpsertVideoClip(ctx context.Context, filename, deviceID string) (*models.VideoClip, error) {
	const op = "storage.UpsertVideoClip"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO video_clips (filename, device_id, linked_user_id)
			  VALUES ($1, $2, ` + deviceUserSubquery + `)
			  RETURNING id, filename, device_id, linked_user_id, captured_at`
	var (
		v      models.VideoClip
		linked sql.NullString
	)
	err := s.DB.QueryRowContext(ctx, query, filename, deviceID).
		Scan(&v.ID, &v.Filename, &v.DeviceID, &linked, &v.CapturedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	v.LinkedUserID = nullableString(linked)
	return &v, nil
}
