package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Notifier delivers booking events to interested parties. Delivery is
// fire-and-forget: failures are logged and never block the caller.
type Notifier interface {
	BookingCreated(payload BookingEvent)
	BookingCancelled(payload BookingEvent)
}

type BookingEvent struct {
	BookingID    string `json:"booking_id"`
	BarbershopID string `json:"barbershop_id"`
	ServiceName  string `json:"service_name"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

type WebhookNotifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewWebhookNotifier(url string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (n *WebhookNotifier) BookingCreated(payload BookingEvent) {
	n.post("booking.created", payload)
}

func (n *WebhookNotifier) BookingCancelled(payload BookingEvent) {
	n.post("booking.cancelled", payload)
}

func (n *WebhookNotifier) post(event string, payload BookingEvent) {
	if n.url == "" {
		return
	}

	go func() {
		body, err := json.Marshal(map[string]any{
			"event": event,
			"data":  payload,
		})
		if err != nil {
			n.logger.Warn("failed to encode webhook payload", "event", event, "error", err)
			return
		}

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			n.logger.Warn("failed to build webhook request", "event", event, "error", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.logger.Warn("webhook delivery failed", "event", event, "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			n.logger.Warn("webhook rejected", "event", event, "status", resp.StatusCode)
		}
	}()
}

// NoopNotifier drops events; used in tests and when no webhook is configured.
type NoopNotifier struct{}

func (NoopNotifier) BookingCreated(BookingEvent)   {}
func (NoopNotifier) BookingCancelled(BookingEvent) {}
