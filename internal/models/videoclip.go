package models

import "time"

// VideoClip ссылка на видеофрагмент с устройства. После записи не меняется.
type VideoClip struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"archivo"`
	DeviceID     string    `json:"id_dispositivo"`
	LinkedUserID *string   `json:"id_usuario_asociado"`
	CapturedAt   time.Time `json:"captured_at"`
}

// VideoClipRequest тело запроса на запись видеофрагмента.
type VideoClipRequest struct {
	DeviceID string `json:"id_dispositivo" validate:"required"`
	Filename string `json:"archivo" validate:"required"`
}
