// Package actuator отправляет команды контроллеру шлагбаума (ESP32) и
// выполняет их в фоне, не задерживая ответ клиенту шлюза.
package actuator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrActuator любая неудача вызова контроллера. Никогда не возвращается клиенту шлюза.
var ErrActuator = errors.New("actuator request failed")

// DefaultPulse длительность сигнала на шлагбаум.
const DefaultPulse = 3000 * time.Millisecond

// Command команда на открытие шлагбаума для записанной сессии.
type Command struct {
	EntryID  int64
	DeviceID string
	Duration time.Duration
}

type activateRequest struct {
	Action      string `json:"action"`
	Duration    int64  `json:"duration"`
	RegistroID  int64  `json:"registro_id"`
	Dispositivo string `json:"dispositivo"`
}

// Client HTTP-клиент контроллера. Один запрос на команду, без повторов.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient создаёт клиент для POST {baseURL}{path} с жёстким таймаутом.
func NewClient(baseURL, path string, timeout time.Duration) *Client {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Client{
		url:        strings.TrimRight(baseURL, "/") + path,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Activate отправляет команду activate_led. Любой не-2xx ответ считается ошибкой.
func (c *Client) Activate(ctx context.Context, cmd Command) error {
	const op = "actuator.Activate"

	req, err := c.newRequest(ctx, activateRequest{
		Action:      "activate_led",
		Duration:    cmd.Duration.Milliseconds(),
		RegistroID:  cmd.EntryID,
		Dispositivo: cmd.DeviceID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrActuator, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrActuator, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w: unexpected status %s", op, ErrActuator, resp.Status)
	}
	return nil
}
