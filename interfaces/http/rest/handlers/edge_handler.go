package handlers

import (
	"encoding/json"
	"net/http"

	"orgchart-backend/application/commands"
	"orgchart-backend/application/commands/bus"
	"orgchart-backend/application/queries"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/valueobjects"
	"orgchart-backend/pkg/common"
	pkgerrors "orgchart-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EdgeHandler handles edge and relationship catalog requests
type EdgeHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// CreateEdgeRequest represents the request body for drawing a
// connection. The relationship applied is the currently selected pen,
// not a field of this request.
type CreateEdgeRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// CreateEdge handles POST /edges
func (h *EdgeHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	var req CreateEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.ConnectNodesCommand{SourceID: req.Source, TargetID: req.Target}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id": aggregates.EdgeID(req.Source, req.Target),
	})
}

// UpdateEdgeRequest represents the request body for retyping an edge.
// When relationshipType is set the label, animation and style are
// derived from the catalog; explicit fields win otherwise.
type UpdateEdgeRequest struct {
	RelationshipType string                  `json:"relationshipType,omitempty"`
	Label            *string                 `json:"label,omitempty"`
	Animated         *bool                   `json:"animated,omitempty"`
	Style            *valueobjects.EdgeStyle `json:"style,omitempty"`
}

// UpdateEdge handles PATCH /edges/{edgeID}
func (h *EdgeHandler) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	edgeID := chi.URLParam(r, "edgeID")
	if edgeID == "" {
		common.RespondError(w, http.StatusBadRequest, "MISSING_ID", "Edge ID is required")
		return
	}

	var req UpdateEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.UpdateEdgeCommand{
		EdgeID:           edgeID,
		RelationshipType: req.RelationshipType,
		Label:            req.Label,
		Animated:         req.Animated,
		Style:            req.Style,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id": edgeID,
	})
}

// DeleteEdge handles DELETE /edges/{edgeID}
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	edgeID := chi.URLParam(r, "edgeID")
	if edgeID == "" {
		common.RespondError(w, http.StatusBadRequest, "MISSING_ID", "Edge ID is required")
		return
	}

	cmd := commands.RemoveEdgeCommand{EdgeID: edgeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondNoContent(w)
}

// ListRelationshipTypes handles GET /relationship-types
func (h *EdgeHandler) ListRelationshipTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetChartQuery{})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	view, ok := result.(*queries.ChartView)
	if !ok {
		h.errors.Handle(w, r, pkgerrors.NewInternalError("unexpected chart view type"))
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"types":    view.RelationshipTypes,
		"selected": view.SelectedRelationship,
	})
}

// SetRelationshipRequest picks the pen for the next drawn connection
type SetRelationshipRequest struct {
	ID string `json:"id"`
}

// SetRelationship handles PUT /relationship-types/selected
func (h *EdgeHandler) SetRelationship(w http.ResponseWriter, r *http.Request) {
	var req SetRelationshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.SetRelationshipCommand{RelationshipID: req.ID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"selected": req.ID,
	})
}
