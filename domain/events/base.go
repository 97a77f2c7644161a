package events

import (
	"time"
)

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// AgentAdded is raised when a new agent node is added to the chart
type AgentAdded struct {
	BaseEvent
	NodeID    string `json:"node_id"`
	AgentName string `json:"agent_name"`
}

// NewAgentAdded creates an AgentAdded event
func NewAgentAdded(chartID, nodeID, agentName string, timestamp time.Time) AgentAdded {
	return AgentAdded{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.agent_added",
			Timestamp:   timestamp,
		},
		NodeID:    nodeID,
		AgentName: agentName,
	}
}

// AgentUpdated is raised when an agent's fields are merged
type AgentUpdated struct {
	BaseEvent
	NodeID string `json:"node_id"`
}

// NewAgentUpdated creates an AgentUpdated event
func NewAgentUpdated(chartID, nodeID string, timestamp time.Time) AgentUpdated {
	return AgentUpdated{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.agent_updated",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
	}
}

// NodeRemoved is raised when a node is deleted, after its edges have
// been cascade-removed in the same step
type NodeRemoved struct {
	BaseEvent
	NodeID       string   `json:"node_id"`
	RemovedEdges []string `json:"removed_edges"`
}

// NewNodeRemoved creates a NodeRemoved event
func NewNodeRemoved(chartID, nodeID string, removedEdges []string, timestamp time.Time) NodeRemoved {
	return NodeRemoved{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.node_removed",
			Timestamp:   timestamp,
		},
		NodeID:       nodeID,
		RemovedEdges: removedEdges,
	}
}

// NodesConnected is raised when an edge is drawn between two nodes
type NodesConnected struct {
	BaseEvent
	EdgeID           string `json:"edge_id"`
	SourceID         string `json:"source_id"`
	TargetID         string `json:"target_id"`
	RelationshipType string `json:"relationship_type"`
}

// NewNodesConnected creates a NodesConnected event
func NewNodesConnected(chartID, edgeID, sourceID, targetID, relType string, timestamp time.Time) NodesConnected {
	return NodesConnected{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.nodes_connected",
			Timestamp:   timestamp,
		},
		EdgeID:           edgeID,
		SourceID:         sourceID,
		TargetID:         targetID,
		RelationshipType: relType,
	}
}

// EdgeUpdated is raised when an edge's label, style or animation change
type EdgeUpdated struct {
	BaseEvent
	EdgeID string `json:"edge_id"`
}

// NewEdgeUpdated creates an EdgeUpdated event
func NewEdgeUpdated(chartID, edgeID string, timestamp time.Time) EdgeUpdated {
	return EdgeUpdated{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.edge_updated",
			Timestamp:   timestamp,
		},
		EdgeID: edgeID,
	}
}

// EdgeRemoved is raised when an edge is removed on its own
type EdgeRemoved struct {
	BaseEvent
	EdgeID string `json:"edge_id"`
}

// NewEdgeRemoved creates an EdgeRemoved event
func NewEdgeRemoved(chartID, edgeID string, timestamp time.Time) EdgeRemoved {
	return EdgeRemoved{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.edge_removed",
			Timestamp:   timestamp,
		},
		EdgeID: edgeID,
	}
}

// SelectionChanged is raised when the selected node changes. NodeID is
// empty when the selection was cleared.
type SelectionChanged struct {
	BaseEvent
	NodeID string `json:"node_id,omitempty"`
}

// NewSelectionChanged creates a SelectionChanged event
func NewSelectionChanged(chartID, nodeID string, timestamp time.Time) SelectionChanged {
	return SelectionChanged{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.selection_changed",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
	}
}

// MessageRecorded is raised after a delivered message has been appended
// to the local histories of its endpoints
type MessageRecorded struct {
	BaseEvent
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

// NewMessageRecorded creates a MessageRecorded event
func NewMessageRecorded(chartID, fromID, toID string, timestamp time.Time) MessageRecorded {
	return MessageRecorded{
		BaseEvent: BaseEvent{
			AggregateID: chartID,
			EventType:   "chart.message_recorded",
			Timestamp:   timestamp,
		},
		FromID: fromID,
		ToID:   toID,
	}
}
