package handlers

import (
	"encoding/json"
	"net/http"

	"orgchart-backend/application/commands"
	"orgchart-backend/application/commands/bus"
	"orgchart-backend/application/queries"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/domain/core/valueobjects"
	"orgchart-backend/pkg/common"
	pkgerrors "orgchart-backend/pkg/errors"

	"go.uber.org/zap"
)

// ChartHandler serves the chart snapshot and the batched change feeds
type ChartHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewChartHandler creates a new chart handler
func NewChartHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// GetChart handles GET /chart
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	view, err := h.queryBus.Ask(r.Context(), queries.GetChartQuery{})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, view)
}

// NodeChangesRequest carries a batch of node change records
type NodeChangesRequest struct {
	Changes []valueobjects.NodeChange `json:"changes"`
}

// ApplyNodeChanges handles POST /chart/node-changes
func (h *ChartHandler) ApplyNodeChanges(w http.ResponseWriter, r *http.Request) {
	var req NodeChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.ApplyNodeChangesCommand{Changes: req.Changes}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"applied": len(req.Changes),
	})
}

// EdgeChangesRequest carries a batch of edge change records
type EdgeChangesRequest struct {
	Changes []valueobjects.EdgeChange `json:"changes"`
}

// ApplyEdgeChanges handles POST /chart/edge-changes
func (h *ChartHandler) ApplyEdgeChanges(w http.ResponseWriter, r *http.Request) {
	var req EdgeChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.ApplyEdgeChangesCommand{Changes: req.Changes}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"applied": len(req.Changes),
	})
}

// NodeFormRequest toggles the node creation form
type NodeFormRequest struct {
	Visible bool `json:"visible"`
}

// SetNodeForm handles POST /ui/node-form
func (h *ChartHandler) SetNodeForm(w http.ResponseWriter, r *http.Request) {
	var req NodeFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.SetUIFlagsCommand{ShowNodeForm: &req.Visible}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"showNodeForm": req.Visible,
	})
}

// EditingRequest toggles the edit-mode flag
type EditingRequest struct {
	Editing bool `json:"editing"`
}

// SetEditing handles POST /ui/editing
func (h *ChartHandler) SetEditing(w http.ResponseWriter, r *http.Request) {
	var req EditingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.SetUIFlagsCommand{IsEditing: &req.Editing}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"isEditing": req.Editing,
	})
}
