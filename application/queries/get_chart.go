package queries

import (
	"context"

	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/valueobjects"
)

// GetChartQuery asks for the full chart snapshot
type GetChartQuery struct{}

// Validate implements bus.Query
func (q GetChartQuery) Validate() error {
	return nil
}

// NodeView is a node snapshot with the derived selection flag. The
// flag is computed from the chart's single selected-node field at read
// time; it is not stored on nodes, so exactly one view (or none) can
// carry it.
type NodeView struct {
	entities.Node
	IsSelected bool `json:"isSelected"`
}

// ChartView is the full read model handed to the rendering layer
type ChartView struct {
	Nodes                []NodeView                      `json:"nodes"`
	Edges                []aggregates.Edge               `json:"edges"`
	RelationshipTypes    []valueobjects.RelationshipType `json:"relationshipTypes"`
	SelectedRelationship string                          `json:"selectedRelationship"`
	SelectedNodeID       string                          `json:"selectedNodeId,omitempty"`
	ShowNodeForm         bool                            `json:"showNodeForm"`
	IsEditing            bool                            `json:"isEditing"`
}

// GetChartHandler handles GetChartQuery
type GetChartHandler struct {
	chart *aggregates.Chart
}

// NewGetChartHandler creates a new handler instance
func NewGetChartHandler(chart *aggregates.Chart) *GetChartHandler {
	return &GetChartHandler{chart: chart}
}

// Handle builds the snapshot
func (h *GetChartHandler) Handle(ctx context.Context, query GetChartQuery) (*ChartView, error) {
	selectedID := h.chart.SelectedNodeID()

	nodes := h.chart.Nodes()
	views := make([]NodeView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, NodeView{
			Node:       node,
			IsSelected: selectedID != "" && node.ID == selectedID,
		})
	}

	return &ChartView{
		Nodes:                views,
		Edges:                h.chart.Edges(),
		RelationshipTypes:    h.chart.RelationshipTypes(),
		SelectedRelationship: h.chart.SelectedRelationship(),
		SelectedNodeID:       selectedID,
		ShowNodeForm:         h.chart.ShowNodeForm(),
		IsEditing:            h.chart.IsEditing(),
	}, nil
}
