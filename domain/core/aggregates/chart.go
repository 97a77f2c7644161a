package aggregates

import (
	"fmt"
	"sync"
	"time"

	"orgchart-backend/domain/config"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/valueobjects"
	"orgchart-backend/domain/events"
	pkgerrors "orgchart-backend/pkg/errors"

	"github.com/google/uuid"
)

// ChartID represents a unique chart identifier
type ChartID string

// NewChartID creates a new random ChartID
func NewChartID() ChartID {
	return ChartID(uuid.New().String())
}

// String returns the string representation
func (id ChartID) String() string {
	return string(id)
}

// Edge represents a typed, styled connection between two nodes. Label,
// animation and style are snapshots taken from the relationship catalog
// at creation or re-label time; they never track later catalog changes.
type Edge struct {
	ID       string                 `json:"id"`
	Source   string                 `json:"source"`
	Target   string                 `json:"target"`
	Label    string                 `json:"label"`
	Animated bool                   `json:"animated"`
	Style    valueobjects.EdgeStyle `json:"style"`
}

// EdgeUpdate carries a partial set of edge fields. Nil pointers mean
// "leave unchanged".
type EdgeUpdate struct {
	Label    *string                 `json:"label,omitempty"`
	Animated *bool                   `json:"animated,omitempty"`
	Style    *valueobjects.EdgeStyle `json:"style,omitempty"`
}

// EdgeID derives the deterministic edge identifier for an ordered
// source/target pair. The relationship type is deliberately not part of
// the key: at most one edge per direction is representable, and callers
// are responsible for not connecting the same pair twice.
func EdgeID(sourceID, targetID string) string {
	return "e" + sourceID + "-" + targetID
}

// Chart is the aggregate root for the org chart: the single
// authoritative register of nodes, edges, selection, the relationship
// vocabulary, the drawing pen and the UI form flags. Each operation is
// atomic from the caller's perspective; a mutex serializes them since
// the HTTP host runs handlers on multiple goroutines.
type Chart struct {
	mu sync.Mutex

	id      ChartID
	cfg     *config.DomainConfig
	nodes   []*entities.Node
	edges   []*Edge
	catalog []valueobjects.RelationshipType

	selectedNodeID       string
	selectedRelationship string
	showNodeForm         bool
	isEditing            bool

	events []events.DomainEvent
}

// NewChart creates an empty chart with the built-in relationship
// catalog and the "direct" pen selected.
func NewChart(cfg *config.DomainConfig) *Chart {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &Chart{
		id:                   NewChartID(),
		cfg:                  cfg,
		nodes:                []*entities.Node{},
		edges:                []*Edge{},
		catalog:              valueobjects.DefaultRelationshipTypes(),
		selectedRelationship: "direct",
		events:               []events.DomainEvent{},
	}
}

// ID returns the chart's unique identifier
func (c *Chart) ID() ChartID {
	return c.id
}

// AddAgent inserts a new node for the agent at the default spawn
// position. The agent id must be pre-assigned by the caller; a
// colliding id is an explicit conflict error, never a silent overwrite.
func (c *Chart) AddAgent(agent entities.Agent) (entities.Node, error) {
	return c.AddAgentAt(agent, valueobjects.NewPosition(c.cfg.DefaultSpawnX, c.cfg.DefaultSpawnY))
}

// AddAgentAt inserts a new node for the agent at an explicit position.
func (c *Chart) AddAgentAt(agent entities.Agent, position valueobjects.Position) (entities.Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findNode(agent.ID) != nil {
		return entities.Node{}, pkgerrors.NewConflictError(fmt.Sprintf("node %q already exists", agent.ID))
	}
	if len(c.nodes) >= c.cfg.MaxNodesPerChart {
		return entities.Node{}, pkgerrors.NewValidationError("maximum nodes reached")
	}

	node, err := entities.NewNode(agent, position)
	if err != nil {
		return entities.Node{}, err
	}

	c.nodes = append(c.nodes, node)
	c.addEvent(events.NewAgentAdded(c.id.String(), node.ID, agent.Name, time.Now()))

	return node.Clone(), nil
}

// UpdateAgent merges the given fields into the target node's agent
// payload. History is preserved unless the update explicitly provides
// one. An unknown node id is a silent no-op, consistent with the
// store-wide validation-gap policy.
func (c *Chart) UpdateAgent(nodeID string, update entities.AgentUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := c.findNode(nodeID)
	if node == nil {
		return
	}

	node.Agent = node.Agent.Apply(update)
	c.addEvent(events.NewAgentUpdated(c.id.String(), nodeID, time.Now()))
}

// DeleteNode removes the node and every edge whose source or target
// references it, in the same atomic step, so no dangling edge is ever
// observable. The selection is cleared unconditionally, even if the
// deleted node was not the selected one.
func (c *Chart) DeleteNode(nodeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteNodeLocked(nodeID)
}

func (c *Chart) deleteNodeLocked(nodeID string) {
	idx := -1
	for i, node := range c.nodes {
		if node.ID == nodeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	var removedEdges []string
	kept := c.edges[:0]
	for _, edge := range c.edges {
		if edge.Source == nodeID || edge.Target == nodeID {
			removedEdges = append(removedEdges, edge.ID)
			continue
		}
		kept = append(kept, edge)
	}
	c.edges = kept

	c.nodes = append(c.nodes[:idx], c.nodes[idx+1:]...)
	c.selectedNodeID = ""

	c.addEvent(events.NewNodeRemoved(c.id.String(), nodeID, removedEdges, time.Now()))
}

// Connect synthesizes a new edge between the two nodes using the
// currently selected relationship type as the pen. The edge is appended
// unconditionally: there is no duplicate detection, and self-loops are
// accepted unless the domain config forbids them. Node existence is not
// cross-validated here; the rendering layer only offers live nodes as
// connection endpoints.
func (c *Chart) Connect(sourceID, targetID string) (Edge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sourceID == "" || targetID == "" {
		return Edge{}, pkgerrors.NewValidationError("source and target are required")
	}
	if !c.cfg.AllowSelfConnections && sourceID == targetID {
		return Edge{}, pkgerrors.NewValidationError("cannot connect a node to itself")
	}
	if len(c.edges) >= c.cfg.MaxEdgesPerChart {
		return Edge{}, pkgerrors.NewValidationError("maximum edges reached")
	}

	relType, ok := c.findRelationship(c.selectedRelationship)
	if !ok {
		// A pen holding an id outside the catalog would otherwise
		// produce an edge with no label or color; reject instead.
		return Edge{}, pkgerrors.NewValidationError(
			fmt.Sprintf("relationship type %q is not in the catalog", c.selectedRelationship))
	}

	edge := &Edge{
		ID:       EdgeID(sourceID, targetID),
		Source:   sourceID,
		Target:   targetID,
		Label:    relType.Label,
		Animated: relType.ID == valueobjects.RelationshipCollaboration,
		Style:    valueobjects.StyleForRelationship(relType),
	}

	c.edges = append(c.edges, edge)
	c.addEvent(events.NewNodesConnected(c.id.String(), edge.ID, sourceID, targetID, relType.ID, time.Now()))

	return *edge, nil
}

// UpdateEdge shallow-merges label, style and animation into the
// matching edge. A missing edge id is a no-op.
func (c *Chart) UpdateEdge(edgeID string, update EdgeUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	edge := c.findEdge(edgeID)
	if edge == nil {
		return
	}

	if update.Label != nil {
		edge.Label = *update.Label
	}
	if update.Animated != nil {
		edge.Animated = *update.Animated
	}
	if update.Style != nil {
		edge.Style = *update.Style
	}

	c.addEvent(events.NewEdgeUpdated(c.id.String(), edgeID, time.Now()))
}

// RemoveEdge removes the edge by id; a missing id is a no-op.
func (c *Chart) RemoveEdge(edgeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeEdgeLocked(edgeID)
}

func (c *Chart) removeEdgeLocked(edgeID string) {
	for i, edge := range c.edges {
		if edge.ID == edgeID {
			c.edges = append(c.edges[:i], c.edges[i+1:]...)
			c.addEvent(events.NewEdgeRemoved(c.id.String(), edgeID, time.Now()))
			return
		}
	}
}

// ApplyNodeChanges folds a batch of low-level change records from the
// rendering layer into the node collection. Unknown ids are ignored
// without error. A remove record cascades exactly like DeleteNode.
func (c *Chart) ApplyNodeChanges(changes []valueobjects.NodeChange) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, change := range changes {
		switch change.Kind {
		case valueobjects.NodeChangePosition:
			if node := c.findNode(change.NodeID); node != nil && change.Position != nil {
				node.Position = *change.Position
			}
		case valueobjects.NodeChangeDimensions:
			if node := c.findNode(change.NodeID); node != nil {
				if change.Width != nil {
					node.Width = *change.Width
				}
				if change.Height != nil {
					node.Height = *change.Height
				}
			}
		case valueobjects.NodeChangeRemove:
			c.deleteNodeLocked(change.NodeID)
		}
	}
}

// ApplyEdgeChanges folds a batch of edge change records; only removals
// exist today. Unknown ids are ignored.
func (c *Chart) ApplyEdgeChanges(changes []valueobjects.EdgeChange) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, change := range changes {
		if change.Kind == valueobjects.EdgeChangeRemove {
			c.removeEdgeLocked(change.EdgeID)
		}
	}
}

// SelectNode moves the selection to the given node. Selecting an id
// that is not in the chart clears the selection, which matches handing
// a null node to the original editor.
func (c *Chart) SelectNode(nodeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findNode(nodeID) == nil {
		nodeID = ""
	}
	c.selectedNodeID = nodeID
	c.addEvent(events.NewSelectionChanged(c.id.String(), nodeID, time.Now()))
}

// ClearSelection resets the selection state machine to Unselected.
func (c *Chart) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selectedNodeID = ""
	c.addEvent(events.NewSelectionChanged(c.id.String(), "", time.Now()))
}

// SetSelectedRelationship sets the pen for the next connection. The id
// is stored without catalog validation; Connect rejects an unresolvable
// pen when it is actually used.
func (c *Chart) SetSelectedRelationship(relationshipID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedRelationship = relationshipID
}

// RecordMessage appends the message to the histories of both endpoints
// with a single shared creation instant. A missing node is silently
// skipped for that side, so a deleted recipient loses its half of the
// record while the sender keeps its own.
func (c *Chart) RecordMessage(fromID, toID, content string, timestamp time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := entities.Message{From: fromID, To: toID, Content: content, Timestamp: timestamp}

	recorded := false
	for _, node := range c.nodes {
		if node.ID == fromID || node.ID == toID {
			node.Agent = node.Agent.AppendHistory(msg)
			recorded = true
		}
	}

	if recorded {
		c.addEvent(events.NewMessageRecorded(c.id.String(), fromID, toID, timestamp))
	}
}

// SetShowNodeForm toggles the node form visibility flag
func (c *Chart) SetShowNodeForm(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showNodeForm = show
}

// SetEditing toggles the editing flag
func (c *Chart) SetEditing(editing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isEditing = editing
}

// Nodes returns deep copies of all nodes in insertion order. Callers
// never hold references into aggregate state.
func (c *Chart) Nodes() []entities.Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	nodes := make([]entities.Node, 0, len(c.nodes))
	for _, node := range c.nodes {
		nodes = append(nodes, node.Clone())
	}
	return nodes
}

// Edges returns copies of all edges in insertion order
func (c *Chart) Edges() []Edge {
	c.mu.Lock()
	defer c.mu.Unlock()

	edges := make([]Edge, 0, len(c.edges))
	for _, edge := range c.edges {
		edges = append(edges, *edge)
	}
	return edges
}

// Node returns a deep copy of the node with the given id
func (c *Chart) Node(nodeID string) (entities.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node := c.findNode(nodeID); node != nil {
		return node.Clone(), true
	}
	return entities.Node{}, false
}

// SelectedNodeID returns the id of the selected node, or "" when the
// selection state machine is in Unselected.
func (c *Chart) SelectedNodeID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedNodeID
}

// SelectedNode returns a deep copy of the selected node, if any
func (c *Chart) SelectedNode() (entities.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node := c.findNode(c.selectedNodeID); node != nil {
		return node.Clone(), true
	}
	return entities.Node{}, false
}

// EdgeBetween returns the first edge connecting the two nodes in either
// direction. Message routing uses it to decide whether a pair
// collaborates.
func (c *Chart) EdgeBetween(a, b string) (Edge, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, edge := range c.edges {
		if (edge.Source == a && edge.Target == b) || (edge.Source == b && edge.Target == a) {
			return *edge, true
		}
	}
	return Edge{}, false
}

// RelationshipTypes returns a copy of the catalog
func (c *Chart) RelationshipTypes() []valueobjects.RelationshipType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]valueobjects.RelationshipType{}, c.catalog...)
}

// SelectedRelationship returns the current pen id
func (c *Chart) SelectedRelationship() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedRelationship
}

// ShowNodeForm returns the node form visibility flag
func (c *Chart) ShowNodeForm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showNodeForm
}

// IsEditing returns the editing flag
func (c *Chart) IsEditing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isEditing
}

// Validate checks aggregate invariants: no edge may reference a node
// that is not in the chart, and at most one node may be selected.
func (c *Chart) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	known := make(map[string]bool, len(c.nodes))
	for _, node := range c.nodes {
		known[node.ID] = true
	}
	for _, edge := range c.edges {
		if !known[edge.Source] {
			return fmt.Errorf("edge %s references missing source node %s", edge.ID, edge.Source)
		}
		if !known[edge.Target] {
			return fmt.Errorf("edge %s references missing target node %s", edge.ID, edge.Target)
		}
	}
	if c.selectedNodeID != "" && !known[c.selectedNodeID] {
		return fmt.Errorf("selection references missing node %s", c.selectedNodeID)
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (c *Chart) GetUncommittedEvents() []events.DomainEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := make([]events.DomainEvent, len(c.events))
	copy(drained, c.events)
	return drained
}

// MarkEventsAsCommitted clears all uncommitted events
func (c *Chart) MarkEventsAsCommitted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = []events.DomainEvent{}
}

// Private helpers; callers hold the mutex.

func (c *Chart) findNode(nodeID string) *entities.Node {
	if nodeID == "" {
		return nil
	}
	for _, node := range c.nodes {
		if node.ID == nodeID {
			return node
		}
	}
	return nil
}

func (c *Chart) findEdge(edgeID string) *Edge {
	for _, edge := range c.edges {
		if edge.ID == edgeID {
			return edge
		}
	}
	return nil
}

func (c *Chart) findRelationship(id string) (valueobjects.RelationshipType, bool) {
	for _, relType := range c.catalog {
		if relType.ID == id {
			return relType, true
		}
	}
	return valueobjects.RelationshipType{}, false
}

func (c *Chart) addEvent(event events.DomainEvent) {
	c.events = append(c.events, event)
}
