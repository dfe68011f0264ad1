// Package models содержит доменные структуры шлюза контроля доступа:
// сессии въезда, устройства, тарифы, наблюдения номеров и видеофрагменты,
// а также структуры входящих JSON-запросов.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus состояние сессии въезда.
type EntryStatus string

const (
	// EntryOpen сессия открыта, транспорт на территории.
	EntryOpen EntryStatus = "OPEN"
	// EntryFinalized сессия закрыта, терминальное состояние.
	EntryFinalized EntryStatus = "FINALIZED"
)

// Entry одна сессия въезда от открытия до финализации.
// ClosedAt заполнено тогда и только тогда, когда Status == EntryFinalized.
type Entry struct {
	ID          int64           `json:"id"`
	DeviceID    string          `json:"id_dispositivo"`
	UserID      *string         `json:"id_usuario"`
	VehicleType string          `json:"vehicle_type"`
	EntryLabel  string          `json:"nombre_entrada"`
	AmountDue   decimal.Decimal `json:"total_pagado"`
	Status      EntryStatus     `json:"estado"`
	OpenedAt    time.Time       `json:"fecha_hora_ingreso"`
	ClosedAt    *time.Time      `json:"fecha_hora_salida"`
}

// IsOpen сообщает, открыта ли сессия.
func (e *Entry) IsOpen() bool {
	return e.Status == EntryOpen
}

// EntryView запись журнала вместе с последними связанными номером и видео.
type EntryView struct {
	Entry
	LastPlate *string `json:"placas,omitempty"`
	LastClip  *string `json:"archivo,omitempty"`
}

// RegisterEntryRequest тело запроса на регистрацию въезда.
type RegisterEntryRequest struct {
	DeviceID    string `json:"id_dispositivo" validate:"required"`
	UserID      string `json:"id_usuario" validate:"required"`
	VehicleType string `json:"vehicle_type" validate:"required"`
	EntryLabel  string `json:"nombre_entrada" validate:"required"`
}

// FinalizeByDeviceRequest тело запроса на финализацию по устройству.
type FinalizeByDeviceRequest struct {
	DeviceID string `json:"id_dispositivo" validate:"required"`
}

// FinalizeByUserRequest тело запроса на финализацию по пользователю.
type FinalizeByUserRequest struct {
	UserID string `json:"id_usuario" validate:"required"`
}

// AttachFareRequest тело запроса на привязку тарифа к открытой сессии.
type AttachFareRequest struct {
	TollID      int64  `json:"toll_id" validate:"required,gt=0"`
	VehicleType string `json:"vehicle_type" validate:"required"`
}
