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

// AddAgentCommand inserts a new agent node at the default spawn
// position. The node id must be assigned by the caller before the
// command is sent.
type AddAgentCommand struct {
	NodeID       string   `json:"node_id" validate:"required"`
	Name         string   `json:"name" validate:"required,max=200"`
	Company      string   `json:"company" validate:"max=200"`
	Position     string   `json:"position" validate:"max=200"`
	Instructions string   `json:"instructions" validate:"max=10000"`
	Tools        []string `json:"tools" validate:"max=50"`
	Secrets      []string `json:"secrets" validate:"max=50"`
	Avatar       string   `json:"avatar"`
	LLMURL       string   `json:"llm_url" validate:"omitempty,url"`
	SystemPrompt string   `json:"system_prompt"`
	UserPrompt   string   `json:"user_prompt"`
}

// Validate implements bus.Command
func (c AddAgentCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// AddAgentHandler handles AddAgentCommand
type AddAgentHandler struct {
	chart     *aggregates.Chart
	validator *validators.AgentValidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewAddAgentHandler creates a new handler instance
func NewAddAgentHandler(chart *aggregates.Chart, validator *validators.AgentValidator, publisher ports.EventPublisher, logger *zap.Logger) *AddAgentHandler {
	return &AddAgentHandler{chart: chart, validator: validator, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *AddAgentHandler) Handle(ctx context.Context, cmd AddAgentCommand) error {
	agent := entities.Agent{
		ID:           cmd.NodeID,
		Name:         cmd.Name,
		Company:      cmd.Company,
		Position:     cmd.Position,
		Instructions: cmd.Instructions,
		Tools:        cmd.Tools,
		Secrets:      cmd.Secrets,
		Avatar:       cmd.Avatar,
		LLMURL:       cmd.LLMURL,
		SystemPrompt: cmd.SystemPrompt,
		UserPrompt:   cmd.UserPrompt,
	}

	if err := h.validator.ValidateAgent(agent); err != nil {
		return err
	}

	node, err := h.chart.AddAgent(agent)
	if err != nil {
		return err
	}

	h.logger.Info("Agent added",
		zap.String("nodeID", node.ID),
		zap.String("name", agent.Name),
	)

	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}
