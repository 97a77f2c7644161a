package events

import (
	"context"

	domainevents "orgchart-backend/domain/events"

	"go.uber.org/zap"
)

// Handler is a subscriber for a single event type
type Handler func(ctx context.Context, event domainevents.DomainEvent)

// Publisher is a synchronous in-process event publisher. Subscribers
// run on the publishing goroutine in registration order; a subscriber
// that needs isolation should hand off internally.
type Publisher struct {
	handlers map[string][]Handler
	logger   *zap.Logger
}

// NewPublisher creates a publisher with no subscribers
func NewPublisher(logger *zap.Logger) *Publisher {
	return &Publisher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event type
func (p *Publisher) Subscribe(eventType string, handler Handler) {
	p.handlers[eventType] = append(p.handlers[eventType], handler)
}

// Publish implements ports.EventPublisher. Every event is logged at
// debug; registered subscribers run after.
func (p *Publisher) Publish(ctx context.Context, evts []domainevents.DomainEvent) error {
	for _, event := range evts {
		p.logger.Debug("Domain event",
			zap.String("type", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
			zap.Time("timestamp", event.GetTimestamp()),
		)

		for _, handler := range p.handlers[event.GetEventType()] {
			handler(ctx, event)
		}
	}
	return nil
}
