// Package create реализует HTTP-обработчик создания тарифа.
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
	"github.com/magabrotheeeer/access-gateway/internal/services/tariff"
)

// Service описывает создание тарифа.
type Service interface {
	CreateTariff(ctx context.Context, req models.TariffRequest) (*models.Tariff, error)
}

// Handler обрабатывает POST /tariffs/.
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
// @Summary Создать тариф
// @Description Пара (toll_id, vehicle_type) уникальна. Отрицательная цена отклоняется.
// @Tags Tariffs
// @Accept  json
// @Produce  json
// @Param request body models.TariffRequest true "Тариф"
// @Success 201 {object} response.Response{data=models.Tariff}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос, повтор или неизвестный пункт оплаты"
// @Failure 401 {object} response.ErrorResponse "Нужен admin-токен"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Security BearerAuth
// @Router /tariffs/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.TariffRequest
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

	t, err := h.service.CreateTariff(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, tariff.ErrValidation)
		if status != http.StatusInternalServerError {
			log.Warn("tariff rejected", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "tariff already exists, is invalid or references an unknown toll", err))
			return
		}
		log.Error("failed to create tariff", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not create tariff", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("tariff created", t))
}
