// Package report реализует HTTP-обработчик отметки о номере.
package report

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/services/observation"
)

// Service описывает создание отметки.
type Service interface {
	Report(ctx context.Context, req models.PlateReportRequest) (*models.PlateReport, error)
}

// Handler обрабатывает POST /license_plates/report.
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
// @Summary Отметить номер
// @Description Отметка рекомендательная и не блокирует въезд.
// @Tags LicensePlates
// @Accept  json
// @Produce  json
// @Param request body models.PlateReportRequest true "Отметка"
// @Success 201 {object} response.Response{data=models.PlateReport}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /license_plates/report [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plate.report"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PlateReportRequest
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

	rep, err := h.service.Report(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, observation.ErrValidation)
		log.Error("failed to create report", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not create report", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("report created", rep))
}
