package actuator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Activate(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]any
		gotType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "activate-led", time.Second)
	err := c.Activate(context.Background(), Command{EntryID: 42, DeviceID: "dev1", Duration: DefaultPulse})
	require.NoError(t, err)

	assert.Equal(t, "/activate-led", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "activate_led", gotBody["action"])
	assert.Equal(t, float64(3000), gotBody["duration"])
	assert.Equal(t, float64(42), gotBody["registro_id"])
	assert.Equal(t, "dev1", gotBody["dispositivo"])
}

func TestClient_ActivateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			timeout: time.Second,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
				w.WriteHeader(http.StatusOK)
			},
			timeout: 50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, "/activate-led", tt.timeout)
			err := c.Activate(context.Background(), Command{EntryID: 1, DeviceID: "dev1", Duration: DefaultPulse})
			require.ErrorIs(t, err, ErrActuator)
		})
	}

	t.Run("unreachable host", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "/activate-led", 200*time.Millisecond)
		err := c.Activate(context.Background(), Command{EntryID: 1, DeviceID: "dev1"})
		require.ErrorIs(t, err, ErrActuator)
	})
}
