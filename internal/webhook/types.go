package webhook

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// EventTypeWildcard is a special filter that matches all event types
const EventTypeWildcard = "*"

// WebhookEvent represents a webhook event to be delivered to clients
type WebhookEvent struct {
	// EventID is the ULID of the ledger event, stable across redeliveries
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "property.purchased")
	EventType string `json:"event_type"`
	// Timestamp is when the operation was committed
	Timestamp time.Time `json:"timestamp"`
	// Sequence is the commit order of the event
	Sequence uint64 `json:"sequence"`
	// Property is the address of the affected property record
	Property string `json:"property"`
	// Data contains the event-specific payload
	Data json.RawMessage `json:"data"`
}

// NewWebhookEvent builds the webhook body for a ledger event
func NewWebhookEvent(event *domain.LedgerEvent) WebhookEvent {
	return WebhookEvent{
		EventID:   event.EventID,
		EventType: string(event.Type),
		Timestamp: event.CreatedAt.UTC(),
		Sequence:  event.Sequence,
		Property:  event.Property.String(),
		Data:      event.Payload,
	}
}

// Endpoint is a webhook subscriber
type Endpoint struct {
	URL    string
	Secret string
	// EventTypes filters deliveries; empty or "*" receives everything
	EventTypes []string
}

// Matches reports whether the endpoint subscribes to eventType
func (e Endpoint) Matches(eventType string) bool {
	if len(e.EventTypes) == 0 {
		return true
	}
	return slices.Contains(e.EventTypes, EventTypeWildcard) || slices.Contains(e.EventTypes, eventType)
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Attempts is how many POSTs were made
	Attempts int
	// Error contains error details if delivery failed
	Error string
}
