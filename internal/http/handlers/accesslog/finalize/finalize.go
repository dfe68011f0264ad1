// Package finalize реализует HTTP-обработчик финализации сессии по устройству.
package finalize

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
	"github.com/magabrotheeeer/access-gateway/internal/services/entry"
)

// Service описывает финализацию по устройству.
type Service interface {
	FinalizeByDevice(ctx context.Context, deviceID string) (*models.Entry, error)
}

// Handler обрабатывает POST /access-logs/finalizar-ingreso.
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
// @Summary Финализировать въезд по устройству
// @Description Закрывает самую позднюю открытую сессию устройства и возвращает итоговую сумму.
// @Tags AccessLogs
// @Accept  json
// @Produce  json
// @Param request body models.FinalizeByDeviceRequest true "Устройство"
// @Success 200 {object} response.Response{data=models.Entry}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Нет открытой сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /access-logs/finalizar-ingreso [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.finalize"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.FinalizeByDeviceRequest
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

	e, err := h.service.FinalizeByDevice(r.Context(), req.DeviceID)
	if err != nil {
		status := response.StatusFor(err, entry.ErrValidation)
		if status == http.StatusNotFound {
			log.Info("no open entry for device", slog.String("device_id", req.DeviceID))
			render.Status(r, status)
			render.JSON(w, r, response.Error("no open entry for device"))
			return
		}
		log.Error("failed to finalize entry", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not finalize entry", err))
		return
	}

	log.Info("entry finalized", slog.Int64("id", e.ID))
	render.JSON(w, r, response.OKWithData("entry finalized", e))
}
