package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

func TestStorage_Catalog(t *testing.T) {
	s := setupTestStorage(t)
	factory := NewTestDataFactory(s)
	ctx := context.Background()

	t.Run("tariff lookup on empty table", func(t *testing.T) {
		_, err := s.LookupTariff(ctx, 5, "truck")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	toll, err := s.CreateToll(ctx, "Central")
	require.NoError(t, err)

	t.Run("tariff for unknown toll rejected", func(t *testing.T) {
		_, err := s.CreateTariff(ctx, models.TariffRequest{TollID: 424242, VehicleType: "car", Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, storage.ErrTollUnknown)
	})

	t.Run("tariff duplicate rejected", func(t *testing.T) {
		req := models.TariffRequest{TollID: toll.ID, VehicleType: "car", Amount: decimal.NewFromInt(10)}
		created, err := s.CreateTariff(ctx, req)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		_, err = s.CreateTariff(ctx, req)
		require.ErrorIs(t, err, storage.ErrDuplicate)

		got, err := s.LookupTariff(ctx, toll.ID, "car")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.True(t, decimal.NewFromInt(10).Equal(got.Amount))
	})

	t.Run("tariff update", func(t *testing.T) {
		got, err := s.LookupTariff(ctx, toll.ID, "car")
		require.NoError(t, err)

		updated, err := s.UpdateTariff(ctx, got.ID, decimal.RequireFromString("15.75"))
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("15.75").Equal(updated.Amount))

		_, err = s.UpdateTariff(ctx, 424242, decimal.NewFromInt(1))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("toll duplicate rejected", func(t *testing.T) {
		_, err := s.CreateToll(ctx, "North")
		require.NoError(t, err)
		_, err = s.CreateToll(ctx, "North")
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("devices", func(t *testing.T) {
		factory.CreateDevice(t, "cam1", models.DeviceCamera)
		factory.CreateDevice(t, "lp1", models.DevicePlateReader)

		_, err := s.CreateDevice(ctx, models.Device{ID: "cam1", Zone: "Z", Name: "again", Type: models.DeviceCamera})
		require.ErrorIs(t, err, storage.ErrDuplicate)

		list, err := s.ListDevices(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "cam1", list[0].ID)
		assert.Equal(t, models.DevicePlateReader, list[1].Type)
	})
}

func TestStorage_Observations(t *testing.T) {
	s := setupTestStorage(t)
	factory := NewTestDataFactory(s)
	ctx := context.Background()
	factory.CreateDevice(t, "lp1", models.DevicePlateReader)

	t.Run("plate without entry has no linked user", func(t *testing.T) {
		p, err := s.UpsertPlateObservation(ctx, "XYZ999", "lp1", true)
		require.NoError(t, err)
		assert.Nil(t, p.LinkedUserID)
		assert.True(t, p.Active)
	})

	t.Run("plate linked to latest entry on device", func(t *testing.T) {
		factory.OpenEntry(t, "lp1", "u9", "car", "GateA")
		p, err := s.UpsertPlateObservation(ctx, "XYZ999", "lp1", false)
		require.NoError(t, err)
		require.NotNil(t, p.LinkedUserID)
		assert.Equal(t, "u9", *p.LinkedUserID)

		v, err := s.UpsertVideoClip(ctx, "gate.mp4", "lp1")
		require.NoError(t, err)
		require.NotNil(t, v.LinkedUserID)
		assert.Equal(t, "u9", *v.LinkedUserID)
	})

	t.Run("unknown device", func(t *testing.T) {
		_, err := s.UpsertPlateObservation(ctx, "XYZ999", "ghost", true)
		require.ErrorIs(t, err, storage.ErrDeviceUnknown)

		_, err = s.UpsertVideoClip(ctx, "gate.mp4", "ghost")
		require.ErrorIs(t, err, storage.ErrDeviceUnknown)
	})

	t.Run("plate reports", func(t *testing.T) {
		r, err := s.CreatePlateReport(ctx, models.PlateReportRequest{
			PlateText: "XYZ999", Type: "BLOQUEADO", Description: "stolen", Status: "ACTIVA",
		})
		require.NoError(t, err)
		assert.NotZero(t, r.ID)

		updated, err := s.UpdatePlateReportStatus(ctx, r.ID, models.ReportResolved)
		require.NoError(t, err)
		assert.Equal(t, models.ReportResolved, updated.Status)
		assert.Equal(t, models.ReportBlocked, updated.Type)

		_, err = s.UpdatePlateReportStatus(ctx, 777777, models.ReportCancelled)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}
