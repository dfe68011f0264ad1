// Package fare реализует HTTP-обработчик привязки тарифа к открытой сессии.
package fare

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/access-gateway/internal/http/response"
	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/services/entry"
	"github.com/magabrotheeeer/access-gateway/internal/services/tariff"
)

// Service описывает привязку тарифа.
type Service interface {
	AttachFare(ctx context.Context, entryID int64, req models.AttachFareRequest) (*models.Entry, error)
}

// Handler обрабатывает POST /access-logs/{id}/fare.
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
// @Summary Привязать тариф к сессии
// @Description Записывает цену тарифа в открытую сессию. Для закрытой сессии возвращает 409.
// @Tags AccessLogs
// @Accept  json
// @Produce  json
// @Param id path int true "ID сессии"
// @Param request body models.AttachFareRequest true "Тариф"
// @Success 200 {object} response.Response{data=models.Entry}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Нет сессии или тарифа"
// @Failure 409 {object} response.ErrorResponse "Сессия уже закрыта"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /access-logs/{id}/fare [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accesslog.fare"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Warn("failed to decode id from url", slog.String("id", chi.URLParam(r, "id")))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var req models.AttachFareRequest
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

	e, err := h.service.AttachFare(r.Context(), id, req)
	if err != nil {
		status := response.StatusFor(err, entry.ErrValidation, tariff.ErrValidation)
		switch status {
		case http.StatusNotFound:
			log.Info("entry or tariff not found", slog.Int64("entry_id", id))
			render.Status(r, status)
			render.JSON(w, r, response.Error("entry or tariff not found"))
		case http.StatusConflict:
			log.Info("entry already finalized", slog.Int64("entry_id", id))
			render.Status(r, status)
			render.JSON(w, r, response.Error("entry already finalized"))
		default:
			log.Error("failed to attach fare", sl.Err(err))
			render.Status(r, status)
			render.JSON(w, r, response.Fail(r, "could not attach fare", err))
		}
		return
	}

	log.Info("fare attached", slog.Int64("entry_id", e.ID))
	render.JSON(w, r, response.OKWithData("fare attached", e))
}
