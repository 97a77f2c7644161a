package handlers

import (
	"encoding/json"
	"net/http"

	"orgchart-backend/application/commands"
	"orgchart-backend/application/commands/bus"
	"orgchart-backend/application/queries"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/valueobjects"
	"orgchart-backend/pkg/common"
	pkgerrors "orgchart-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AgentHandler handles agent and node lifecycle requests
type AgentHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// CreateAgentRequest represents the request body for adding an agent.
// The id is optional; the server assigns one when omitted.
type CreateAgentRequest struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	Secrets      []string `json:"secrets,omitempty"`
	Avatar       string   `json:"avatar,omitempty"`
	LLMURL       string   `json:"llmUrl,omitempty"`
	SystemPrompt string   `json:"systemPrompt,omitempty"`
	UserPrompt   string   `json:"userPrompt,omitempty"`
}

// CreateAgent handles POST /agents
func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	nodeID := req.ID
	if nodeID == "" {
		nodeID = valueobjects.NewNodeID().String()
	}

	cmd := commands.AddAgentCommand{
		NodeID:       nodeID,
		Name:         req.Name,
		Company:      req.Company,
		Position:     req.Position,
		Instructions: req.Instructions,
		Tools:        req.Tools,
		Secrets:      req.Secrets,
		Avatar:       req.Avatar,
		LLMURL:       req.LLMURL,
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id": nodeID,
	})
}

// UpdateAgent handles PUT /agents/{nodeID}. Absent fields keep their
// current values; history is preserved unless the body provides one.
func (h *AgentHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	if nodeID == "" {
		common.RespondError(w, http.StatusBadRequest, "MISSING_ID", "Node ID is required")
		return
	}

	var fields entities.AgentUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.UpdateAgentCommand{NodeID: nodeID, Fields: fields}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id": nodeID,
	})
}

// DeleteNode handles DELETE /nodes/{nodeID}
func (h *AgentHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	if nodeID == "" {
		common.RespondError(w, http.StatusBadRequest, "MISSING_ID", "Node ID is required")
		return
	}

	cmd := commands.DeleteNodeCommand{NodeID: nodeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

// SelectNode handles POST /nodes/{nodeID}/select
func (h *AgentHandler) SelectNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")

	cmd := commands.SelectNodeCommand{NodeID: nodeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"selectedNodeId": nodeID,
	})
}

// ClearSelection handles POST /selection/clear
func (h *AgentHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	if err := h.commandBus.Send(r.Context(), commands.ClearSelectionCommand{}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

// GetConnections handles GET /nodes/{nodeID}/connections
func (h *AgentHandler) GetConnections(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")

	view, err := h.queryBus.Ask(r.Context(), queries.GetConnectionsQuery{NodeID: nodeID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}
