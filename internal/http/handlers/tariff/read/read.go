// Package read реализует HTTP-обработчик чтения тарифа.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
)

// Service описывает поиск тарифа.
type Service interface {
	Lookup(ctx context.Context, tollID int64, vehicleType string) (*models.Tariff, error)
}

// Handler обрабатывает GET /tariffs/?toll_id=&vehicle_type=.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Тариф для пункта оплаты и типа транспорта
// @Tags Tariffs
// @Produce  json
// @Param toll_id query int true "ID пункта оплаты"
// @Param vehicle_type query string true "Тип транспорта"
// @Success 200 {object} response.Response{data=models.Tariff}
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /tariffs/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tariff.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	tollID, err := strconv.ParseInt(q.Get("toll_id"), 10, 64)
	vehicleType := strings.TrimSpace(q.Get("vehicle_type"))
	if err != nil || tollID <= 0 || vehicleType == "" {
		log.Warn("invalid query", slog.String("toll_id", q.Get("toll_id")), slog.String("vehicle_type", vehicleType))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("toll_id and vehicle_type are required"))
		return
	}

	t, err := h.service.Lookup(r.Context(), tollID, vehicleType)
	if err != nil {
		status := response.StatusFor(err)
		if status == http.StatusNotFound {
			log.Info("tariff not found", slog.Int64("toll_id", tollID), slog.String("vehicle_type", vehicleType))
			render.Status(r, status)
			render.JSON(w, r, response.Error("tariff not found"))
			return
		}
		log.Error("failed to read tariff", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not read tariff", err))
		return
	}
	render.JSON(w, r, response.OKWithData("tariff", t))
}
