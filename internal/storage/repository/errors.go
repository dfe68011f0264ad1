package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

// Остальные внешние ключи схемы ссылаются на devices.
const tariffTollFK = "tariffs_toll_id_fkey"

// wrap переводит ошибки драйвера в ошибки пакета storage и добавляет op.
func wrap(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			if pgErr.ConstraintName == tariffTollFK {
				return fmt.Errorf("%s: %w: %s", op, storage.ErrTollUnknown, pgErr.ConstraintName)
			}
			return fmt.Errorf("%s: %w: %s", op, storage.ErrDeviceUnknown, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
