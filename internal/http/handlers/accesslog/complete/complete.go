// Package complete реализует HTTP-обработчик финализации сессии по пользователю.
package complete

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

// Service описывает финализацию по пользователю.
type Service interface {
	FinalizeByUser(ctx context.Context, userID string) (*models.Entry, error)
}

// Handler обрабатывает PUT /access-logs/.
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
// @Summary Финализировать въезд по пользователю
// @Tags AccessLogs
// @Accept  json
// @Produce  json
// @Param request body models.FinalizeByUserRequest true "Пользователь"
// @Success 200 {object} response.Response{data=models.Entry}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Нет открытой сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /access-logs/ [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.complete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.FinalizeByUserRequest
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

	e, err := h.service.FinalizeByUser(r.Context(), req.UserID)
	if err != nil {
		status := response.StatusFor(err, entry.ErrValidation)
		if status == http.StatusNotFound {
			log.Info("no open entry for user", slog.String("user_id", req.UserID))
			render.Status(r, status)
			render.JSON(w, r, response.Error("no open entry for user"))
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
