package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/pkg/utils"

	"go.uber.org/zap"
)

// ConnectNodesCommand draws an edge between two nodes using the
// currently selected relationship type as the pen.
type ConnectNodesCommand struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// Validate implements bus.Command
func (c ConnectNodesCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// ConnectNodesHandler handles ConnectNodesCommand
type ConnectNodesHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewConnectNodesHandler creates a new handler instance
func NewConnectNodesHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *ConnectNodesHandler {
	return &ConnectNodesHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *ConnectNodesHandler) Handle(ctx context.Context, cmd ConnectNodesCommand) error {
	edge, err := h.chart.Connect(cmd.SourceID, cmd.TargetID)
	if err != nil {
		return err
	}

	h.logger.Info("Nodes connected",
		zap.String("edgeID", edge.ID),
		zap.String("label", edge.Label),
	)

	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}
