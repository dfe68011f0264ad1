// Package create реализует HTTP-обработчик записи видеофрагмента.
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
	"github.com/magabrotheeeer/access-gateway/internal/services/observation"
)

// Service описывает запись видеофрагмента.
type Service interface {
	RecordClip(ctx context.Context, req models.VideoClipRequest) (*models.VideoClip, error)
}

// Handler обрабатывает POST /videoclips/.
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
// @Summary Записать видеофрагмент
// @Tags VideoClips
// @Accept  json
// @Produce  json
// @Param request body models.VideoClipRequest true "Видеофрагмент"
// @Success 201 {object} response.Response{data=models.VideoClip}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или неизвестное устройство"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /videoclips/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.videoclip.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.VideoClipRequest
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

	v, err := h.service.RecordClip(r.Context(), req)
	if err != nil {
		status := response.StatusFor(err, observation.ErrValidation)
		if status == http.StatusBadRequest {
			log.Warn("clip rejected", sl.Err(err))
		} else {
			log.Error("failed to record clip", sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, response.Fail(r, "could not record clip", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData("clip recorded", v))
}
