// Package reportstatus реализует HTTP-обработчик смены состояния отметки.
package reportstatus

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/services/observation"
)

// Service описывает смену состояния отметки.
type Service interface {
	UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.PlateReport, error)
}

// Handler обрабатывает PATCH /license_plates/report/{id}.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить состояние отметки
// @Tags LicensePlates
// @Accept  json
// @Produce  json
// @Param id path int true "ID отметки"
// @Param request body models.PlateReportStatusRequest true "Состояние"
// @Success 200 {object} response.Response{data=models.PlateReport}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Отметка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /license_plates/report/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plate.reportstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Warn("failed to decode id from url", slog.String("id", chi.URLParam(r, "id")))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var req models.PlateReportStatusRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	rep, err := h.service.UpdateReportStatus(r.Context(), id, models.ReportStatus(req.Status))
	if err != nil {
		status := response.StatusFor(err, observation.ErrValidation)
		if status == http.StatusNotFound {
			log.Info("report not found", slog.Int64("id", id))
			render.Status(r, status)
			render.JSON(w, r, response.Error("report not found"))
			return
		}
		log.Error("failed to update report", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not update report", err))
		return
	}
	render.JSON(w, r, response.OKWithData("report updated", rep))
}
