package repository

import (
	"context"

	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// CreatePlateReport сохраняет отметку о номере.
func (s *Storage) CreatePlateReport(ctx context.Context, req models.PlateReportRequest) (*models.PlateReport, error) {
	const op = "storage.CreatePlateReport"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r := models.PlateReport{
		PlateText:   req.PlateText,
		Type:        models.ReportType(req.Type),
		Description: req.Description,
		Status:      models.ReportStatus(req.Status),
	}
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO plate_reports (plate_text, report_type, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, reported_at`,
		req.PlateText, req.Type, req.Description, req.Status).Scan(&r.ID, &r.ReportedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &r, nil
}

// UpdatePlateReportStatus меняет состояние отметки. Единственное изменяемое поле отметки.
func (s *Storage) UpdatePlateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.PlateReport, error) {
	const op = "storage.UpdatePlateReportStatus"
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		r         models.PlateReport
		typ, stat string
	)
	err := s.DB.QueryRowContext(ctx,
		`UPDATE plate_reports SET status = $2 WHERE id = $1
		 RETURNING id, plate_text, report_type, description, status, reported_at`,
		id, string(status)).Scan(&r.ID, &r.PlateText, &typ, &r.Description, &stat, &r.ReportedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	r.Type = models.ReportType(typ)
	r.Status = models.ReportStatus(stat)
	return &r, nil
}
