package models

// DeviceType тип пограничного устройства.
type DeviceType string

const (
	DeviceBLE         DeviceType = "BLE"
	DeviceCamera      DeviceType = "CAMARA"
	DevicePlateReader DeviceType = "LECTOR_PLACAS"
)

// Device физическое устройство на точке въезда.
type Device struct {
	ID   string     `json:"id_dispositivo"`
	Zone string     `json:"id_zona"`
	Name string     `json:"nombre_dispositivo"`
	Type DeviceType `json:"tipo_dispositivo"`
}

// DeviceRequest тело запроса на регистрацию устройства.
type DeviceRequest struct {
	ID   string `json:"id_dispositivo" validate:"required"`
	Zone string `json:"id_zona" validate:"required"`
	Name string `json:"nombre_dispositivo" validate:"required"`
	Type string `json:"tipo_dispositivo" validate:"required,oneof=BLE CAMARA LECTOR_PLACAS"`
}
