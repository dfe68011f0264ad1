package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/access-gateway/internal/metrics"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewAMQPPublisher(ch, nil)

	ev := NewEvent(EntryOpened, map[string]any{"id": 7})
	require.NoError(t, p.Publish(context.Background(), ev))

	assert.Equal(t, "access", ch.exchange)
	assert.Equal(t, "entry.opened", ch.key)
	assert.Equal(t, ev.ID.String(), ch.msg.MessageId)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "entry.opened", decoded["type"])
}

func TestAMQPPublisher_FailureCounted(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := NewAMQPPublisher(ch, m)

	err := p.Publish(context.Background(), NewEvent(PlateReported, nil))
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventPublishFailure))
}

func TestAMQPPublisher_CanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := NewAMQPPublisher(ch, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Publish(ctx, NewEvent(EntryFinalized, nil)), context.Canceled)
	assert.Empty(t, ch.key)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), NewEvent(EntryOpened, nil)))
}

func TestAuditHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := AuditHandler(log)

	tests := []struct {
		name    string
		body    string
		wantLog string
	}{
		{name: "known event", body: `{"id":"1","type":"entry.finalized","payload":{"id":3}}`, wantLog: `"type":"entry.finalized"`},
		{name: "malformed body dropped", body: `not json`, wantLog: "malformed event dropped"},
		{name: "unknown type dropped", body: `{"id":"2","type":"other"}`, wantLog: "unknown event type dropped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			require.NoError(t, h([]byte(tt.body)))
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
