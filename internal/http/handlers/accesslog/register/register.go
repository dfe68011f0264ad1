// Package register реализует HTTP-обработчик регистрации въезда.
//
// Handler открывает сессию через жизненный цикл и отвечает 201 сразу после
// записи в хранилище. Сигнал шлагбауму уходит в фоне и на ответ не влияет.
package register

import (
	"context"
	"errors"
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

// Service описывает регистрацию въезда.
type Service interface {
	RegisterEntry(ctx context.Context, req models.RegisterEntryRequest) (*models.Entry, error)
}

// Handler обрабатывает POST /access-logs/registrar-ingreso.
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
// @Summary Зарегистрировать въезд
// @Description Открывает сессию въезда и отправляет сигнал шлагбауму. Ошибка контроллера на ответ не влияет.
// @Tags AccessLogs
// @Accept  json
// @Produce  json
// @Param request body models.RegisterEntryRequest true "Данные въезда"
// @Success 201 {object} response.Response{data=models.Entry}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /access-logs/registrar-ingreso [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterEntryRequest
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

	e, err := h.service.RegisterEntry(r.Context(), req)
	if err != nil {
		if errors.Is(err, entry.ErrValidation) {
			log.Warn("invalid entry", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Fail(r, "invalid entry", err))
			return
		}
		log.Error("failed to register entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(r, "could not register entry", err))
		return
	}

	log.Info("entry registered", slog.Int64("id", e.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("entry registered", e))
}
