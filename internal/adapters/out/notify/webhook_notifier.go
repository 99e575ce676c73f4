// Package notify delivers booking events to the facility team over a
// configured webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pipeyard/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// WebhookNotifier posts booking notifications as JSON to a webhook URL.
// The receiving side (yard chat integration, ops dashboard) is outside
// this system.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
	}
}

// webhookPayload is the wire format of a booking event.
type webhookPayload struct {
	Event           string `json:"event"`
	ReferenceID     string `json:"reference_id"`
	Company         string `json:"company"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	Direction       string `json:"direction"`
	LoadNumber      int    `json:"load_number"`
	Window          string `json:"window"`
	AfterHours      bool   `json:"after_hours"`
	SurchargeAmount int    `json:"surcharge_amount,omitempty"`
}

// NotifyLoadScheduled announces a fully provisioned load.
func (n *WebhookNotifier) NotifyLoadScheduled(ctx context.Context, notification ports.BookingNotification) error {
	return n.post(ctx, "load.scheduled", notification)
}

// NotifyScheduleFallback announces a booking captured without shipment
// records, asking the yard to schedule it by hand.
func (n *WebhookNotifier) NotifyScheduleFallback(ctx context.Context, notification ports.BookingNotification) error {
	return n.post(ctx, "load.schedule_fallback", notification)
}

func (n *WebhookNotifier) post(ctx context.Context, event string, notification ports.BookingNotification) error {
	payload := webhookPayload{
		Event:           event,
		ReferenceID:     notification.ReferenceID,
		Company:         notification.Company,
		ContactName:     notification.ContactName,
		ContactPhone:    notification.ContactPhone,
		Direction:       notification.Direction.String(),
		LoadNumber:      notification.LoadNumber,
		Window:          notification.Window,
		AfterHours:      notification.AfterHours,
		SurchargeAmount: notification.SurchargeAmount,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s notification: %w", event, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s notification request: %w", event, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s notification: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("post %s notification: webhook returned %s", event, resp.Status)
	}

	return nil
}
