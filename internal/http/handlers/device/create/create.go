// Package create реализует HTTP-обработчик регистрации устройства.
package create

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
	"github.com/magabrotheeeer/access-gateway/internal/services/device"
)

// Service описывает регистрацию устройства.
type Service interface {
	Create(ctx context.Context, req models.DeviceRequest) (*models.Device, error)
}

// Handler обрабатывает POST /devices/.
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
// @Summary Зарегистрировать устройство
// @Tags Devices
// @Accept  json
// @Produce  json
// @Param request body models.DeviceRequest true "Устройство"
// @Success 201 {object} response.Response{data=models.Device}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или устройство уже есть"
// @Failure 401 {object} response.ErrorResponse "Нужен admin-токен"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Security BearerAuth
// @Router /devices/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.device.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DeviceRequest
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

	d, err := h.service.Create(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, device.ErrValidation)
		if status == http.StatusBadRequest {
			log.Warn("device rejected", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "device already exists or is invalid", err))
			return
		}
		log.Error("failed to register device", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not register device", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("device registered", d))
}
