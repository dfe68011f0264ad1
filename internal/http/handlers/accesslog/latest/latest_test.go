package latest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

type MockService struct{ mock.Mock }

func (m *MockService) LatestForUser(ctx context.Context, userID string) (*models.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLatestHandler(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "found",
			query: "?id_usuario=user7",
			setupMock: func(m *MockService) {
				m.On("LatestForUser", mock.Anything, "user7").Return(&models.Entry{ID: 8, Status: models.EntryOpen}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":8`,
		},
		{
			name:  "not found",
			query: "?id_usuario=nobody",
			setupMock: func(m *MockService) {
				m.On("LatestForUser", mock.Anything, "nobody").Return(nil, storage.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "store failure",
			query: "?id_usuario=user7",
			setupMock: func(m *MockService) {
				m.On("LatestForUser", mock.Anything, "user7").Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing user",
			query:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "id_usuario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			w := httptest.NewRecorder()
			New(newNoopLogger(), mockService).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/access-logs/latest"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
