package list

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
)

type MockService struct{ mock.Mock }

func (m *MockService) ListEntries(ctx context.Context, limit, offset int) ([]*models.EntryView, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EntryView), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListHandler(t *testing.T) {
	plate := "ABC123"
	list := []*models.EntryView{{Entry: models.Entry{ID: 2, Status: models.EntryOpen}, LastPlate: &plate}}

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "defaults",
			query: "",
			setupMock: func(m *MockService) {
				m.On("ListEntries", mock.Anything, DefaultLimit, 0).Return(list, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"placas":"ABC123"`,
		},
		{
			name:  "limit is capped",
			query: "?limit=10000&offset=20",
			setupMock: func(m *MockService) {
				m.On("ListEntries", mock.Anything, MaxLimit, 20).Return([]*models.EntryView{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"data":[]`,
		},
		{
			name:  "garbage params fall back",
			query: "?limit=abc&offset=-4",
			setupMock: func(m *MockService) {
				m.On("ListEntries", mock.Anything, DefaultLimit, 0).Return([]*models.EntryView{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "store failure",
			query: "",
			setupMock: func(m *MockService) {
				m.On("ListEntries", mock.Anything, DefaultLimit, 0).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not list entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			w := httptest.NewRecorder()
			New(newNoopLogger(), mockService).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/access-logs/"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
