package models

import "github.com/shopspring/decimal"

// Toll пункт оплаты, к которому привязаны тарифы.
type Toll struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TollRequest тело запроса на создание пункта оплаты.
type TollRequest struct {
	Name string `json:"name" validate:"required"`
}

// Tariff цена проезда для пары (пункт оплаты, тип транспорта).
type Tariff struct {
	ID          int64           `json:"id"`
	TollID      int64           `json:"toll_id"`
	VehicleType string          `json:"vehicle_type"`
	Amount      decimal.Decimal `json:"tariff"`
}

// TariffRequest тело запроса на создание тарифа.
type TariffRequest struct {
	TollID      int64           `json:"toll_id" validate:"required,gt=0"`
	VehicleType string          `json:"vehicle_type" validate:"required"`
	Amount      decimal.Decimal `json:"tariff"`
}

// TariffUpdateRequest тело запроса на изменение цены тарифа.
type TariffUpdateRequest struct {
	ID     int64           `json:"id" validate:"required,gt=0"`
	Amount decimal.Decimal `json:"tariff"`
}
