package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	t.Run("up", func(t *testing.T) {
		h := New(log, pingerFunc(func(context.Context) error { return nil }), time.Second)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("down", func(t *testing.T) {
		h := New(log, pingerFunc(func(context.Context) error { return errors.New("refused") }), time.Second)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("ping gets deadline", func(t *testing.T) {
		var hasDeadline bool
		h := New(log, pingerFunc(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}), 50*time.Millisecond)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.True(t, hasDeadline)
	})
}
