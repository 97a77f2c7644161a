package services

import (
	"context"
	"time"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/valueobjects"
	pkgerrors "orgchart-backend/pkg/errors"

	"go.uber.org/zap"
)

// MessagingService sends a simulated message from one agent to another.
// Delivery and local bookkeeping are two independently-failing steps
// with a strict ordering contract: the delivery collaborator is called
// first, and the message is appended to both endpoints' histories only
// after it succeeds. A failed delivery leaves no local history entry,
// so the per-agent history logs confirmed sends, not attempts; the
// telemetry log records both.
type MessagingService struct {
	chart     *aggregates.Chart
	deliverer ports.MessageDeliverer
	telemetry ports.TelemetryStore
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewMessagingService creates a new messaging service
func NewMessagingService(
	chart *aggregates.Chart,
	deliverer ports.MessageDeliverer,
	telemetry ports.TelemetryStore,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *MessagingService {
	return &MessagingService{
		chart:     chart,
		deliverer: deliverer,
		telemetry: telemetry,
		publisher: publisher,
		logger:    logger,
	}
}

// SendResult reports a confirmed delivery back to the caller
type SendResult struct {
	ToType    ports.DeliveryKind `json:"toType"`
	RemoteURL string             `json:"remoteUrl,omitempty"`
	Response  string             `json:"response,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// Send routes, delivers and records a message. Routing: the pair is
// treated as remote only when an edge between the two agents (either
// direction) carries the collaboration label AND the target agent has a
// remote endpoint configured; everything else is backend-managed.
func (s *MessagingService) Send(ctx context.Context, sessionID, fromID, toID, content string) (SendResult, error) {
	if fromID == "" || toID == "" || content == "" {
		return SendResult{}, pkgerrors.NewValidationError("from, to and content are required")
	}
	if _, ok := s.chart.Node(fromID); !ok {
		return SendResult{}, pkgerrors.NewNotFoundError("sender agent")
	}

	req := ports.DeliveryRequest{
		SessionID: sessionID,
		FromID:    fromID,
		ToID:      toID,
		Message:   content,
		ToType:    ports.DeliveryBackend,
	}

	if target, ok := s.chart.Node(toID); ok && target.Agent.LLMURL != "" {
		if edge, found := s.chart.EdgeBetween(fromID, toID); found && edge.Label == s.collaborationLabel() {
			req.ToType = ports.DeliveryRemote
			req.RemoteURL = target.Agent.LLMURL
		}
	}

	entry := ports.TelemetryEntry{
		Timestamp: time.Now(),
		FromID:    fromID,
		ToID:      toID,
		Message:   content,
		ToType:    req.ToType,
		RemoteURL: req.RemoteURL,
	}

	result, err := s.deliverer.Deliver(ctx, req)
	if err != nil {
		entry.Error = err.Error()
		s.telemetry.Record(sessionID, entry)
		s.logger.Warn("Message delivery failed",
			zap.String("fromID", fromID),
			zap.String("toID", toID),
			zap.String("toType", string(req.ToType)),
			zap.Error(err),
		)
		return SendResult{}, pkgerrors.NewDeliveryError("message delivery failed", err)
	}

	entry.Response = result.Response
	s.telemetry.Record(sessionID, entry)

	// Local bookkeeping happens only after the external call resolved.
	// Both sides get the same entry with one shared instant; a missing
	// recipient is skipped silently.
	timestamp := time.Now()
	s.chart.RecordMessage(fromID, toID, content, timestamp)

	evts := s.chart.GetUncommittedEvents()
	if len(evts) > 0 {
		s.chart.MarkEventsAsCommitted()
		if pubErr := s.publisher.Publish(ctx, evts); pubErr != nil {
			s.logger.Warn("Failed to publish domain events", zap.Error(pubErr))
		}
	}

	return SendResult{
		ToType:    req.ToType,
		RemoteURL: req.RemoteURL,
		Response:  result.Response,
		Timestamp: timestamp,
	}, nil
}

// collaborationLabel resolves the display label of the collaboration
// relationship from the chart's catalog. Edges store labels, not type
// ids, so routing compares labels the same way the editor did.
func (s *MessagingService) collaborationLabel() string {
	for _, relType := range s.chart.RelationshipTypes() {
		if relType.ID == valueobjects.RelationshipCollaboration {
			return relType.Label
		}
	}
	return "Collaboration"
}
