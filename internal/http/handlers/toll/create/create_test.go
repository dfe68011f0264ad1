package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/access-gateway/internal/models"
	"github.com/magabrotheeeer/access-gateway/internal/storage"
)

type MockService struct{ mock.Mock }

func (m *MockService) CreateToll(ctx context.Context, req models.TollRequest) (*models.Toll, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Toll), args.Error(1)
}

func TestCreateTollHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	req := models.TollRequest{Name: "GateA"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"GateA"}`,
			setupMock: func(m *MockService) {
				m.On("CreateToll", mock.Anything, req).Return(&models.Toll{ID: 1, Name: "GateA"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"name":"GateA"}`,
			setupMock: func(m *MockService) {
				m.On("CreateToll", mock.Anything, req).Return(nil, fmt.Errorf("op: %w", storage.ErrDuplicate)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"GateA"}`,
			setupMock: func(m *MockService) {
				m.On("CreateToll", mock.Anything, req).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockService)
			tt.setupMock(m)

			r := httptest.NewRequest(http.MethodPost, "/tolls/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			New(log, m).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.AssertExpectations(t)
		})
	}
}
