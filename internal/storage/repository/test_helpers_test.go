package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/access-gateway/internal/migrations"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// setupTestStorage поднимает PostgreSQL в контейнере и применяет миграции проекта.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("gateway"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateDevice регистрирует тестовое устройство
func (f *TestDataFactory) CreateDevice(t *testing.T, id string, typ models.DeviceType) {
	t.Helper()
	_, err := f.storage.CreateDevice(context.Background(), models.Device{
		ID: id, Zone: "Z1", Name: "device " + id, Type: typ,
	})
	require.NoError(t, err)
}

// OpenEntry открывает тестовую сессию
func (f *TestDataFactory) OpenEntry(t *testing.T, deviceID, userID, vehicleType, label string) *models.Entry {
	t.Helper()
	e, _, err := f.storage.OpenEntry(context.Background(), models.RegisterEntryRequest{
		DeviceID: deviceID, UserID: userID, VehicleType: vehicleType, EntryLabel: label,
	})
	require.NoError(t, err)
	return e
}

// SetOpenedAt переписывает время открытия сессии
func (f *TestDataFactory) SetOpenedAt(t *testing.T, id int64, at time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`UPDATE entries SET opened_at = $2 WHERE id = $1`, id, at)
	require.NoError(t, err)
}
