package entities

import (
	"orgchart-backend/domain/core/valueobjects"

	pkgerrors "orgchart-backend/pkg/errors"
)

// NodeType tags the visual variant of a node. There is currently a
// single variant; the tag exists so the rendering layer can register a
// custom renderer for it.
type NodeType string

const (
	NodeTypeAgent NodeType = "agentNode"
)

// Node wraps an Agent with its spatial position on the canvas. Whether
// a node is selected is not stored here: selection is derived from the
// chart's single selected-node field when snapshots are read.
type Node struct {
	ID       string                `json:"id"`
	Type     NodeType              `json:"type"`
	Position valueobjects.Position `json:"position"`
	Agent    Agent                 `json:"agent"`

	// Dimensions are reported by the rendering layer after measuring;
	// zero until the first dimension change arrives.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// NewNode creates a node for the given agent at a position. The agent
// id must be pre-assigned by the caller.
func NewNode(agent Agent, position valueobjects.Position) (*Node, error) {
	if agent.ID == "" {
		return nil, pkgerrors.NewValidationError("agent id must be assigned before adding a node")
	}

	agent.Normalize()

	return &Node{
		ID:       agent.ID,
		Type:     NodeTypeAgent,
		Position: position,
		Agent:    agent,
	}, nil
}

// Clone returns a deep copy of the node
func (n Node) Clone() Node {
	clone := n
	clone.Agent = n.Agent.Clone()
	return clone
}
