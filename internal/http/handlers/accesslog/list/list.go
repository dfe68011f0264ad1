// Package list реализует HTTP-обработчик журнала сессий въезда.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// Границы пагинации журнала.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Service описывает чтение журнала.
type Service interface {
	ListEntries(ctx context.Context, limit, offset int) ([]*models.EntryView, error)
}

// Handler обрабатывает GET /access-logs/.
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
// @Summary Журнал въездов
// @Description Возвращает сессии, новые первыми, с последними связанными номером и видео.
// @Tags AccessLogs
// @Produce  json
// @Param limit query int false "Размер страницы (по умолчанию 100, максимум 500)"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]models.EntryView}
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /access-logs/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	res, err := h.service.ListEntries(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list entries", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(r, "could not list entries", err))
		return
	}

	log.Info("list entries", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData("entries", res))
}
