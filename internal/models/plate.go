package models

import "time"

// PlateObservation номер, распознанный устройством. После записи не меняется.
type PlateObservation struct {
	ID           int64     `json:"id"`
	PlateText    string    `json:"placas"`
	DeviceID     string    `json:"id_dispositivo"`
	LinkedUserID *string   `json:"id_usuario_asociado"`
	Active       bool      `json:"estado"`
	ObservedAt   time.Time `json:"observed_at"`
}

// PlateRequest тело запроса на запись наблюдения номера.
// Estado по умолчанию true.
type PlateRequest struct {
	DeviceID  string `json:"id_dispositivo" validate:"required"`
	PlateText string `json:"placas" validate:"required"`
	Active    *bool  `json:"estado"`
}

// ReportType вид отметки о номере.
type ReportType string

const (
	ReportBlocked       ReportType = "BLOQUEADO"
	ReportSecurityAlert ReportType = "ALERTA_SEGURIDAD"
)

// ReportStatus состояние отметки о номере.
type ReportStatus string

const (
	ReportActive    ReportStatus = "ACTIVA"
	ReportResolved  ReportStatus = "RESUELTA"
	ReportCancelled ReportStatus = "CANCELADA"
)

// PlateReport рекомендательная отметка о номере, не влияет на сессии въезда.
type PlateReport struct {
	ID          int64        `json:"id"`
	PlateText   string       `json:"placas"`
	Type        ReportType   `json:"tipo_reporte"`
	Description string       `json:"descripcion"`
	Status      ReportStatus `json:"estado"`
	ReportedAt  time.Time    `json:"reported_at"`
}

// PlateReportRequest тело запроса на создание отметки.
type PlateReportRequest struct {
	PlateText   string `json:"placas" validate:"required"`
	Type        string `json:"tipo_reporte" validate:"required,oneof=BLOQUEADO ALERTA_SEGURIDAD"`
	Description string `json:"descripcion"`
	Status      string `json:"estado" validate:"required,oneof=ACTIVA RESUELTA CANCELADA"`
}

// PlateReportStatusRequest тело запроса на смену состояния отметки.
type PlateReportStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=ACTIVA RESUELTA CANCELADA"`
}
