package events

import (
	"encoding/json"
	"log/slog"

	"github.com/magabrotheeeer/access-gateway/internal/lib/sl"
)

// AuditHandler пишет полученные события в структурированный лог.
// Битые сообщения и события неизвестного типа подтверждаются и отбрасываются.
func AuditHandler(log *slog.Logger) func([]byte) error {
	return func(body []byte) error {
		const op = "events.AuditHandler"
		var ev struct {
			ID         string          `json:"id"`
			Type       Type            `json:"type"`
			OccurredAt string          `json:"occurred_at"`
			Payload    json.RawMessage `json:"payload"`
		}
		if err := json.Unmarshal(body, &ev); err != nil {
			log.Error("malformed event dropped", sl.Op(op), slog.String("body", string(body)))
			return nil
		}
		switch ev.Type {
		case EntryOpened, EntryFinalized, PlateReported:
		default:
			log.Warn("unknown event type dropped", sl.Op(op), slog.String("type", string(ev.Type)))
			return nil
		}
		log.Info("audit",
			sl.Op(op),
			slog.String("event_id", ev.ID),
			slog.String("type", string(ev.Type)),
			slog.String("occurred_at", ev.OccurredAt),
			slog.String("payload", string(ev.Payload)),
		)
		return nil
	}
}
