// Package jwt выпускает и проверяет HS256-токены операторов шлюза.
package jwt

import (
	"time"
)

// RoleAdmin роль, которой разрешено править справочники.
const RoleAdmin = "admin"

// Maker описывает выпуск и разбор токенов.
type Maker interface {
	GenerateToken(subject, role string) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализация Maker на общем секрете.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт Maker с секретом и временем жизни токена.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
