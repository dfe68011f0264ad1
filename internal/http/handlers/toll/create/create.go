// Package create реализует HTTP-обработчик создания пункта оплаты.
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

// Service описывает создание пункта оплаты.
type Service interface {
	CreateToll(ctx context.Context, req models.TollRequest) (*models.Toll, error)
}

// Handler обрабатывает POST /tolls/.
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
// @Summary Создать пункт оплаты
// @Tags Tolls
// @Accept  json
// @Produce  json
// @Param request body models.TollRequest true "Пункт оплаты"
// @Success 201 {object} response.Response{data=models.Toll}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или имя занято"
// @Failure 401 {object} response.ErrorResponse "Нужен admin-токен"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Security BearerAuth
// @Router /tolls/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.toll.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.TollRequest
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

	toll, err := h.service.CreateToll(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, tariff.ErrValidation)
		if status != http.StatusInternalServerError {
			log.Warn("toll rejected", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Error("toll already exists or is invalid"))
			return
		}
		log.Error("failed to create toll", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not create toll", err))
		return
	}

	log.Info("toll created", slog.Int64("toll_id", toll.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("toll created", toll))
}
