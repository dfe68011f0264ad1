// Package response содержит единый JSON-конверт ответов шлюза
// {ok, message, data, error} и сопоставление ошибок со статусами HTTP.
package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

// Response стандартный конверт ответа.
// Error заполняется только когда включена выдача деталей ошибок.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse структура ошибки для Swagger-документации.
type ErrorResponse struct {
	OK      bool   `json:"ok" example:"false"`
	Message string `json:"message" example:"invalid request body"`
}

// OK успешный ответ без данных.
func OK(msg string) Response {
	return Response{OK: true, Message: msg}
}

// OKWithData успешный ответ с данными.
func OKWithData(msg string, data any) Response {
	return Response{OK: true, Message: msg, Data: data}
}

// Error ответ с ошибкой без деталей.
func Error(msg string) Response {
	return Response{OK: false, Message: msg}
}

type exposeKey struct{}

// ExposeErrors middleware, которое разрешает или запрещает отдавать клиенту
// текст внутренних ошибок для всех запросов ниже по цепочке.
func ExposeErrors(expose bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), exposeKey{}, expose)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Fail ответ с ошибкой. Текст err попадает в поле error, только если
// это разрешено middleware ExposeErrors.
func Fail(r *http.Request, msg string, err error) Response {
	resp := Error(msg)
	if expose, _ := r.Context().Value(exposeKey{}).(bool); expose && err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// StatusFor сопоставляет ошибку со статусом HTTP. validation перечисляет
// ошибки валидации конкретного сервиса.
func StatusFor(err error, validation ...error) int {
	for _, v := range validation {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, storage.ErrDuplicate),
		errors.Is(err, storage.ErrDeviceUnknown),
		errors.Is(err, storage.ErrTollUnknown):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError формирует ответ по ошибкам валидатора.
// Каждое нарушение переводится в текст, тексты объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "gt", "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be %s %s", err.Field(), comparison(err.ActualTag()), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		OK:      false,
		Message: strings.Join(errsMsgs, ", "),
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
