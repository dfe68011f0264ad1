// Package observation принимает наблюдения номеров, видеофрагменты и отметки
// о номерах. Ни одна из этих записей не меняет сессии въезда.
package observation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/access-gateway/internal/events"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// ErrValidation некорректное наблюдение или отметка.
var ErrValidation = errors.New("validation failed")

// Repository операции хранилища с наблюдениями.
type Repository interface {
	UpsertPlateObservation(ctx context.Context, plate, deviceID string, active bool) (*models.PlateObservation, error)
	UpsertVideoClip(ctx context.Context, filename, deviceID string) (*models.VideoClip, error)
	CreatePlateReport(ctx context.Context, req models.PlateReportRequest) (*models.PlateReport, error)
	UpdatePlateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.PlateReport, error)
}

// Service наблюдения и отметки.
type Service struct {
	repo      Repository
	publisher events.Publisher
	log       *slog.Logger
}

// NewService создаёт сервис. publisher может быть nil.
func NewService(repo Repository, publisher events.Publisher, log *slog.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{repo: repo, publisher: publisher, log: log}
}

// RecordPlate записывает распознанный номер. Без estado наблюдение активно.
func (s *Service) RecordPlate(ctx context.Context, req models.PlateRequest) (*models.PlateObservation, error) {
	const op = "services.observation.RecordPlate"
	plate := strings.TrimSpace(req.PlateText)
	deviceID := strings.TrimSpace(req.DeviceID)
	if plate == "" || deviceID == "" {
		return nil, fmt.Errorf("%s: %w: placas and id_dispositivo are required", op, ErrValidation)
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	p, err := s.repo.UpsertPlateObservation(ctx, plate, deviceID, active)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// RecordClip записывает ссылку на видеофрагмент.
func (s *Service) RecordClip(ctx context.Context, req models.VideoClipRequest) (*models.VideoClip, error) {
	const op = "services.observation.RecordClip"
	filename := strings.TrimSpace(req.Filename)
	deviceID := strings.TrimSpace(req.DeviceID)
	if filename == "" || deviceID == "" {
		return nil, fmt.Errorf("%s: %w: archivo and id_dispositivo are required", op, ErrValidation)
	}

	v, err := s.repo.UpsertVideoClip(ctx, filename, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// Report создаёт отметку о номере и публикует событие plate.reported.
func (s *Service) Report(ctx context.Context, req models.PlateReportRequest) (*models.PlateReport, error) {
	const op = "services.observation.Report"
	req.PlateText = strings.TrimSpace(req.PlateText)
	if req.PlateText == "" {
		return nil, fmt.Errorf("%s: %w: placas is required", op, ErrValidation)
	}
	if !validReportType(models.ReportType(req.Type)) || !validReportStatus(models.ReportStatus(req.Status)) {
		return nil, fmt.Errorf("%s: %w: unknown tipo_reporte or estado", op, ErrValidation)
	}

	r, err := s.repo.CreatePlateReport(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), events.NewEvent(events.PlateReported, r)); err != nil {
		s.log.Warn("plate report event not published", slog.String("op", op), slog.Int64("report_id", r.ID), sl.Err(err))
	}
	s.log.Info("plate reported", slog.String("op", op), slog.Int64("report_id", r.ID), slog.String("type", string(r.Type)))
	return r, nil
}

// UpdateReportStatus меняет состояние отметки.
func (s *Service) UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.PlateReport, error) {
	const op = "services.observation.UpdateReportStatus"
	if id <= 0 || !validReportStatus(status) {
		return nil, fmt.Errorf("%s: %w: bad report id or estado", op, ErrValidation)
	}
	r, err := s.repo.UpdatePlateReportStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

func validReportType(t models.ReportType) bool {
	return t == models.ReportBlocked || t == models.ReportSecurityAlert
}

func validReportStatus(st models.ReportStatus) bool {
	switch st {
	case models.ReportActive, models.ReportResolved, models.ReportCancelled:
		return true
	}
	return false
}
