package queries

import (
	"context"

	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/pkg/utils"
)

// GetConnectionsQuery asks for the edges touching a node, partitioned
// by direction. The partition is recomputed on every read and never
// cached; edges may have changed between renders.
type GetConnectionsQuery struct {
	NodeID string `json:"node_id" validate:"required"`
}

// Validate implements bus.Query
func (q GetConnectionsQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ConnectionsView partitions a node's edges into incoming and outgoing
type ConnectionsView struct {
	NodeID   string            `json:"nodeId"`
	Incoming []aggregates.Edge `json:"incoming"`
	Outgoing []aggregates.Edge `json:"outgoing"`
}

// GetConnectionsHandler handles GetConnectionsQuery
type GetConnectionsHandler struct {
	chart *aggregates.Chart
}

// NewGetConnectionsHandler creates a new handler instance
func NewGetConnectionsHandler(chart *aggregates.Chart) *GetConnectionsHandler {
	return &GetConnectionsHandler{chart: chart}
}

// Handle computes the partition. A self-loop edge shows up on both
// sides.
func (h *GetConnectionsHandler) Handle(ctx context.Context, query GetConnectionsQuery) (*ConnectionsView, error) {
	view := &ConnectionsView{
		NodeID:   query.NodeID,
		Incoming: []aggregates.Edge{},
		Outgoing: []aggregates.Edge{},
	}

	for _, edge := range h.chart.Edges() {
		if edge.Target == query.NodeID {
			view.Incoming = append(view.Incoming, edge)
		}
		if edge.Source == query.NodeID {
			view.Outgoing = append(view.Outgoing, edge)
		}
	}

	return view, nil
}
