package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/access-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/access-gateway/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAdminOnly(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", time.Hour)
	adminToken, err := maker.GenerateToken("ops", jwt.RoleAdmin)
	require.NoError(t, err)
	viewerToken, err := maker.GenerateToken("viewer", "viewer")
	require.NoError(t, err)
	foreignToken, err := jwt.NewJWTMaker("other", time.Hour).GenerateToken("ops", jwt.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{name: "missing header", authHeader: "", wantStatusCode: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic abc", wantStatusCode: http.StatusUnauthorized},
		{name: "bad signature", authHeader: "Bearer " + foreignToken, wantStatusCode: http.StatusUnauthorized},
		{name: "not admin", authHeader: "Bearer " + viewerToken, wantStatusCode: http.StatusUnauthorized},
		{name: "admin", authHeader: "Bearer " + adminToken, wantStatusCode: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "ops", r.Context().Value(middlewarectx.Operator))
				assert.Equal(t, jwt.RoleAdmin, r.Context().Value(middlewarectx.Role))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/tariffs/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			middlewarectx.AdminOnly(maker, newNoopLogger())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Contains(t, rr.Body.String(), `"ok":false`)
			}
		})
	}
}
