// Package latest реализует HTTP-обработчик последней сессии пользователя.
package latest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/services/entry"
)

// Service описывает поиск последней сессии.
type Service interface {
	LatestForUser(ctx context.Context, userID string) (*models.Entry, error)
}

// Handler обрабатывает GET /access-logs/latest?id_usuario=.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Последняя сессия пользователя
// @Description Самая поздняя по времени открытия сессия, при равном времени побеждает более поздняя запись.
// @Tags AccessLogs
// @Produce  json
// @Param id_usuario query string true "Пользователь"
// @Success 200 {object} response.Response{data=models.Entry}
// @Failure 400 {object} response.ErrorResponse "Не указан пользователь"
// @Failure 404 {object} response.ErrorResponse "Сессий нет"
// @Router /access-logs/latest [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.latest"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := strings.TrimSpace(r.URL.Query().Get("id_usuario"))
	if userID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("field id_usuario is a required field"))
		return
	}

	e, err := h.service.LatestForUser(r.Context(), userID)
	if err != nil {
		status := response.StatusFor(err, entry.ErrValidation)
		if status == http.StatusNotFound {
			render.Status(r, status)
			render.JSON(w, r, response.Error("no entries for user"))
			return
		}
		log.Error("failed to read latest entry", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not read entry", err))
		return
	}

	render.JSON(w, r, response.OKWithData("latest entry", e))
}
