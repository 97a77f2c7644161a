package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"

	"go.uber.org/zap"
)

// publishChartEvents drains the aggregate's uncommitted events and
// hands them to the publisher. Publish failures are logged, not
// surfaced: the state change already happened and must not be undone by
// a notification problem.
func publishChartEvents(ctx context.Context, chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) error {
	evts := chart.GetUncommittedEvents()
	if len(evts) == 0 {
		return nil
	}
	chart.MarkEventsAsCommitted()

	if err := publisher.Publish(ctx, evts); err != nil {
		logger.Warn("Failed to publish domain events",
			zap.Int("count", len(evts)),
			zap.Error(err),
		)
	}
	return nil
}
