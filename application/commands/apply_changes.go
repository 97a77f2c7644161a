package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/valueobjects"

	"go.uber.org/zap"
)

// ApplyNodeChangesCommand folds a batch of low-level node change
// records from the rendering layer into the chart. Ids are not
// validated here or in the aggregate; records for unknown nodes are
// dropped silently.
type ApplyNodeChangesCommand struct {
	Changes []valueobjects.NodeChange `json:"changes"`
}

// Validate implements bus.Command. An empty batch is legal.
func (c ApplyNodeChangesCommand) Validate() error {
	return nil
}

// ApplyNodeChangesHandler handles ApplyNodeChangesCommand
type ApplyNodeChangesHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewApplyNodeChangesHandler creates a new handler instance
func NewApplyNodeChangesHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *ApplyNodeChangesHandler {
	return &ApplyNodeChangesHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *ApplyNodeChangesHandler) Handle(ctx context.Context, cmd ApplyNodeChangesCommand) error {
	h.chart.ApplyNodeChanges(cmd.Changes)
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}

// ApplyEdgeChangesCommand is the edge-side counterpart.
type ApplyEdgeChangesCommand struct {
	Changes []valueobjects.EdgeChange `json:"changes"`
}

// Validate implements bus.Command
func (c ApplyEdgeChangesCommand) Validate() error {
	return nil
}

// ApplyEdgeChangesHandler handles ApplyEdgeChangesCommand
type ApplyEdgeChangesHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewApplyEdgeChangesHandler creates a new handler instance
func NewApplyEdgeChangesHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *ApplyEdgeChangesHandler {
	return &ApplyEdgeChangesHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *ApplyEdgeChangesHandler) Handle(ctx context.Context, cmd ApplyEdgeChangesCommand) error {
	h.chart.ApplyEdgeChanges(cmd.Changes)
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}
