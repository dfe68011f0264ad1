package create

import (
	"context"
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

func (m *MockService) RecordPlate(ctx context.Context, req models.PlateRequest) (*models.PlateObservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlateObservation), args.Error(1)
}

func TestCreatePlateHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	user := "u9"

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "linked to user",
			body: `{"id_dispositivo":"lp1","placas":"ABC123"}`,
			setupMock: func(m *MockService) {
				m.On("RecordPlate", mock.Anything, models.PlateRequest{DeviceID: "lp1", PlateText: "ABC123"}).
					Return(&models.PlateObservation{PlateText: "ABC123", LinkedUserID: &user, Active: true}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id_usuario_asociado":"u9"`,
		},
		{
			name: "no open entry gives null user",
			body: `{"id_dispositivo":"lp1","placas":"ABC123"}`,
			setupMock: func(m *MockService) {
				m.On("RecordPlate", mock.Anything, mock.Anything).
					Return(&models.PlateObservation{PlateText: "ABC123", Active: true}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id_usuario_asociado":null`,
		},
		{
			name: "unknown device",
			body: `{"id_dispositivo":"ghost","placas":"ABC123"}`,
			setupMock: func(m *MockService) {
				m.On("RecordPlate", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("op: %w", storage.ErrDeviceUnknown)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing plate",
			body:           `{"id_dispositivo":"lp1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field PlateText is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockService)
			tt.setupMock(m)

			r := httptest.NewRequest(http.MethodPost, "/license_plates/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			New(log, m).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			m.AssertExpectations(t)
		})
	}
}
