package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/pkg/utils"

	"go.uber.org/zap"
)

// DeleteNodeCommand removes a node, cascade-removes its edges and
// clears the selection.
type DeleteNodeCommand struct {
	NodeID string `json:"node_id" validate:"required"`
}

// Validate implements bus.Command
func (c DeleteNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteNodeHandler handles DeleteNodeCommand
type DeleteNodeHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeleteNodeHandler creates a new handler instance
func NewDeleteNodeHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *DeleteNodeHandler {
	return &DeleteNodeHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *DeleteNodeHandler) Handle(ctx context.Context, cmd DeleteNodeCommand) error {
	h.chart.DeleteNode(cmd.NodeID)
	h.logger.Info("Node deleted", zap.String("nodeID", cmd.NodeID))
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}
