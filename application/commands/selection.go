package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/pkg/utils"

	"go.uber.org/zap"
)

// SelectNodeCommand moves the selection to a node. An empty or unknown
// id clears the selection.
type SelectNodeCommand struct {
	NodeID string `json:"node_id"`
}

// Validate implements bus.Command
func (c SelectNodeCommand) Validate() error {
	return nil
}

// ClearSelectionCommand resets the selection state machine.
type ClearSelectionCommand struct{}

// Validate implements bus.Command
func (c ClearSelectionCommand) Validate() error {
	return nil
}

// SetRelationshipCommand sets the pen applied to the next drawn
// connection. The id is stored without catalog validation.
type SetRelationshipCommand struct {
	RelationshipID string `json:"relationship_id" validate:"required"`
}

// Validate implements bus.Command
func (c SetRelationshipCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// SetUIFlagsCommand toggles the form-visibility flags owned by the
// store.
type SetUIFlagsCommand struct {
	ShowNodeForm *bool `json:"show_node_form,omitempty"`
	IsEditing    *bool `json:"is_editing,omitempty"`
}

// Validate implements bus.Command
func (c SetUIFlagsCommand) Validate() error {
	return nil
}

// SelectionHandler handles selection and UI state commands
type SelectionHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewSelectionHandler creates a new handler instance
func NewSelectionHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{chart: chart, publisher: publisher, logger: logger}
}

// HandleSelect executes SelectNodeCommand
func (h *SelectionHandler) HandleSelect(ctx context.Context, cmd SelectNodeCommand) error {
	if cmd.NodeID == "" {
		h.chart.ClearSelection()
	} else {
		h.chart.SelectNode(cmd.NodeID)
	}
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}

// HandleClear executes ClearSelectionCommand
func (h *SelectionHandler) HandleClear(ctx context.Context, cmd ClearSelectionCommand) error {
	h.chart.ClearSelection()
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}

// HandleSetRelationship executes SetRelationshipCommand
func (h *SelectionHandler) HandleSetRelationship(ctx context.Context, cmd SetRelationshipCommand) error {
	h.chart.SetSelectedRelationship(cmd.RelationshipID)
	return nil
}

// HandleSetUIFlags executes SetUIFlagsCommand
func (h *SelectionHandler) HandleSetUIFlags(ctx context.Context, cmd SetUIFlagsCommand) error {
	if cmd.ShowNodeForm != nil {
		h.chart.SetShowNodeForm(*cmd.ShowNodeForm)
	}
	if cmd.IsEditing != nil {
		h.chart.SetEditing(*cmd.IsEditing)
	}
	return nil
}
