// Package storage объявляет ошибки хранилища, которые сервисы
// переводят в доменные ответы. Реализация хранилища находится в repository.
package storage

import "errors"

var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate нарушено ограничение уникальности.
	ErrDuplicate = errors.New("already exists")
	// ErrDeviceUnknown ссылка на несуществующее устройство.
	ErrDeviceUnknown = errors.New("device unknown")
	// ErrTollUnknown ссылка на несуществующий пункт оплаты.
	ErrTollUnknown = errors.New("toll unknown")
	// ErrInvalidState запись в состоянии, недопустимом для операции.
	ErrInvalidState = errors.New("invalid state")
)
