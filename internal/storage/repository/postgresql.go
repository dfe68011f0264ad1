// Package repository реализует хранилище шлюза на основе PostgreSQL:
// сессии въезда, устройства, пункты оплаты и тарифы, наблюдения номеров,
// видеофрагменты и отметки о номерах. Каждая операция записи атомарна
// и завершается до возврата.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DefaultTimeout верхняя граница одной операции, если не задана в конфиге.
const DefaultTimeout = 3 * time.Second

// Storage инкапсулирует пул соединений с PostgreSQL.
// Пул безопасен для конкурентного использования.
type Storage struct {
	DB      *sql.DB
	timeout time.Duration
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string, timeout time.Duration) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Storage{
		DB:      db,
		timeout: timeout,
	}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// withTimeout ограничивает операцию меньшим из дедлайна запроса и таймаута хранилища.
func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time
	return &v
}

// prefixed добавляет алиас таблицы к каждому столбцу списка.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, c := range parts {
		parts[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(parts, ", ")
}
