package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/validators"
	"orgchart-backend/pkg/utils"

	"go.uber.org/zap"
)

// UpdateAgentCommand merges partial agent fields into the target node.
// Fields left nil are unchanged; history survives any update that does
// not explicitly replace it.
type UpdateAgentCommand struct {
	NodeID string               `json:"node_id" validate:"required"`
	Fields entities.AgentUpdate `json:"fields"`
}

// Validate implements bus.Command
func (c UpdateAgentCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// UpdateAgentHandler handles UpdateAgentCommand
type UpdateAgentHandler struct {
	chart     *aggregates.Chart
	validator *validators.AgentValidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdateAgentHandler creates a new handler instance
func NewUpdateAgentHandler(chart *aggregates.Chart, validator *validators.AgentValidator, publisher ports.EventPublisher, logger *zap.Logger) *UpdateAgentHandler {
	return &UpdateAgentHandler{chart: chart, validator: validator, publisher: publisher, logger: logger}
}

// Handle executes the command. An unknown node id is a silent no-op
// inside the aggregate.
func (h *UpdateAgentHandler) Handle(ctx context.Context, cmd UpdateAgentCommand) error {
	if err := h.validator.ValidateUpdate(cmd.Fields); err != nil {
		return err
	}

	h.chart.UpdateAgent(cmd.NodeID, cmd.Fields)
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}
