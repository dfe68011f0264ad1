// Package create реализует HTTP-обработчик записи распознанного номера.
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
	"github.com/magabrotheeeer/access-gateway/internal/services/observation"
)

// Service описывает запись наблюдения номера.
type Service interface {
	RecordPlate(ctx context.Context, req models.PlateRequest) (*models.PlateObservation, error)
}

// Handler обрабатывает POST /license_plates/.
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
// @Summary Записать распознанный номер
// @Description Номер связывается с пользователем последней сессии на устройстве, если она есть.
// @Tags LicensePlates
// @Accept  json
// @Produce  json
// @Param request body models.PlateRequest true "Наблюдение"
// @Success 201 {object} response.Response{data=models.PlateObservation}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или неизвестное устройство"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /license_plates/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plate.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PlateRequest
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

	p, err := h.service.RecordPlate(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, observation.ErrValidation)
		if status == http.StatusBadRequest {
			log.Warn("plate rejected", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "unknown device or invalid plate", err))
			return
		}
		log.Error("failed to record plate", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not record plate", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("plate recorded", p))
}
