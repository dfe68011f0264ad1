// Package update реализует HTTP-обработчик изменения цены тарифа.
package update

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
	"github.com/magabrotheeeer/access-gateway/internal/services/tariff"
)

// Service описывает изменение тарифа.
type Service interface {
	UpdateTariff(ctx context.Context, req models.TariffUpdateRequest) (*models.Tariff, error)
}

// Handler обрабатывает PUT /tariffs/.
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
// @Summary Изменить цену тарифа
// @Tags Tariffs
// @Accept  json
// @Produce  json
// @Param request body models.TariffUpdateRequest true "Новая цена"
// @Success 200 {object} response.Response{data=models.Tariff}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Нужен admin-токен"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Security BearerAuth
// @Router /tariffs/ [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.TariffUpdateRequest
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

	t, err := h.service.UpdateTariff(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, tariff.ErrValidation)
		switch status {
		case http.StatusNotFound:
			log.Info("tariff not found", slog.Int64("id", req.ID))
			render.Status(r, status)
			render.JSON(w, r, response.Error("tariff not found"))
		case http.StatusBadRequest:
			log.Warn("tariff update rejected", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "invalid tariff", err))
		default:
			log.Error("failed to update tariff", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "could not update tariff", err))
		}
		return
	}
	render.JSON(w, r, response.OKWithData("tariff updated", t))
}
