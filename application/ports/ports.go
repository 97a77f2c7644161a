package ports

import (
	"context"
	"time"

	"orgchart-backend/domain/events"
)

// DeliveryKind distinguishes backend-managed agents from remote ones
type DeliveryKind string

const (
	// DeliveryBackend routes the message through the in-process agent
	// runner.
	DeliveryBackend DeliveryKind = "backend"
	// DeliveryRemote posts the message to the target agent's own
	// endpoint. Chosen only for collaboration edges whose target has a
	// remote endpoint configured.
	DeliveryRemote DeliveryKind = "remote"
)

// DeliveryRequest is the outbound payload handed to the delivery
// collaborator.
type DeliveryRequest struct {
	SessionID string
	FromID    string
	ToID      string
	Message   string
	ToType    DeliveryKind
	RemoteURL string
}

// DeliveryResult is what the collaborator reports back on success
type DeliveryResult struct {
	Response string
}

// MessageDeliverer performs the actual message send. The core only
// guarantees local bookkeeping after a successful delivery; it never
// retries on its own.
type MessageDeliverer interface {
	Deliver(ctx context.Context, req DeliveryRequest) (DeliveryResult, error)
}

// TelemetryEntry is one recorded session event
type TelemetryEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	FromID    string       `json:"fromId"`
	ToID      string       `json:"toId"`
	Message   string       `json:"message"`
	ToType    DeliveryKind `json:"toType"`
	RemoteURL string       `json:"remoteUrl,omitempty"`
	Response  string       `json:"response,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// TelemetryStore records per-session event logs for display. It is
// read-only for the state machine; only presentation consumes it.
type TelemetryStore interface {
	Record(sessionID string, entry TelemetryEntry)
	Session(sessionID string) []TelemetryEntry
}

// EventPublisher publishes domain events drained from the aggregate
type EventPublisher interface {
	Publish(ctx context.Context, evts []events.DomainEvent) error
}
