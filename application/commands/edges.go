package commands

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/valueobjects"
	"orgchart-backend/pkg/utils"

	"go.uber.org/zap"
)

// UpdateEdgeCommand re-labels an existing edge. When RelationshipType
// is set, label, color, dash pattern and animation are all derived from
// the catalog entry, snapshotting its current color; an id outside the
// catalog leaves the edge untouched, matching the editor's silent
// behavior. Otherwise the explicit partial fields are shallow-merged.
type UpdateEdgeCommand struct {
	EdgeID           string                  `json:"edge_id" validate:"required"`
	RelationshipType string                  `json:"relationship_type,omitempty"`
	Label            *string                 `json:"label,omitempty"`
	Animated         *bool                   `json:"animated,omitempty"`
	Style            *valueobjects.EdgeStyle `json:"style,omitempty"`
}

// Validate implements bus.Command
func (c UpdateEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// UpdateEdgeHandler handles UpdateEdgeCommand
type UpdateEdgeHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdateEdgeHandler creates a new handler instance
func NewUpdateEdgeHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *UpdateEdgeHandler {
	return &UpdateEdgeHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *UpdateEdgeHandler) Handle(ctx context.Context, cmd UpdateEdgeCommand) error {
	update := aggregates.EdgeUpdate{
		Label:    cmd.Label,
		Animated: cmd.Animated,
		Style:    cmd.Style,
	}

	if cmd.RelationshipType != "" {
		relType, ok := findRelationship(h.chart.RelationshipTypes(), cmd.RelationshipType)
		if !ok {
			return nil
		}
		label := relType.Label
		animated := relType.ID == valueobjects.RelationshipCollaboration
		style := valueobjects.StyleForRelationship(relType)
		update = aggregates.EdgeUpdate{Label: &label, Animated: &animated, Style: &style}
	}

	h.chart.UpdateEdge(cmd.EdgeID, update)
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}

// RemoveEdgeCommand removes an edge by id; a missing id is a no-op.
type RemoveEdgeCommand struct {
	EdgeID string `json:"edge_id" validate:"required"`
}

// Validate implements bus.Command
func (c RemoveEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// RemoveEdgeHandler handles RemoveEdgeCommand
type RemoveEdgeHandler struct {
	chart     *aggregates.Chart
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRemoveEdgeHandler creates a new handler instance
func NewRemoveEdgeHandler(chart *aggregates.Chart, publisher ports.EventPublisher, logger *zap.Logger) *RemoveEdgeHandler {
	return &RemoveEdgeHandler{chart: chart, publisher: publisher, logger: logger}
}

// Handle executes the command
func (h *RemoveEdgeHandler) Handle(ctx context.Context, cmd RemoveEdgeCommand) error {
	h.chart.RemoveEdge(cmd.EdgeID)
	return publishChartEvents(ctx, h.chart, h.publisher, h.logger)
}

func findRelationship(catalog []valueobjects.RelationshipType, id string) (valueobjects.RelationshipType, bool) {
	for _, relType := range catalog {
		if relType.ID == id {
			return relType, true
		}
	}
	return valueobjects.RelationshipType{}, false
}
