// Package list реализует HTTP-обработчик списка устройств.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// Service описывает чтение реестра устройств.
type Service interface {
	List(ctx context.Context) ([]*models.Device, error)
}

// Handler обрабатывает GET /devices/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список устройств
// @Tags Devices
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.Device}
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /devices/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.device.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list devices", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(r, "could not list devices", err))
		return
	}
	render.JSON(w, r, response.OKWithData("devices", res))
}
