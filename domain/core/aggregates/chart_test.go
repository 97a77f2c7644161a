package aggregates

import (
	"testing"
	"time"

	"orgchart-backend/domain/config"
	"orgchart-backend/domain/core/entities"
	"orgchart-backend/domain/core/valueobjects"
	pkgerrors "orgchart-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChart(t *testing.T) *Chart {
	t.Helper()
	return NewChart(config.DefaultDomainConfig())
}

func addAgent(t *testing.T, chart *Chart, id, name string) entities.Node {
	t.Helper()
	node, err := chart.AddAgent(entities.Agent{ID: id, Name: name})
	require.NoError(t, err)
	return node
}

func TestChart_AddAgent_DefaultSpawnPosition(t *testing.T) {
	chart := newTestChart(t)

	node := addAgent(t, chart, "n1", "Alice")

	assert.Equal(t, "n1", node.ID)
	assert.Equal(t, entities.NodeTypeAgent, node.Type)
	assert.Equal(t, float64(250), node.Position.X)
	assert.Equal(t, float64(100), node.Position.Y)
	assert.Empty(t, node.Agent.History, "history starts as an empty sequence")
	assert.NotNil(t, node.Agent.History)
}

func TestChart_AddAgent_DuplicateIDConflicts(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "n1", "Alice")

	_, err := chart.AddAgent(entities.Agent{ID: "n1", Name: "Impostor"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsConflict(err))

	// The original node is untouched
	node, ok := chart.Node("n1")
	require.True(t, ok)
	assert.Equal(t, "Alice", node.Agent.Name)
}

func TestChart_AddAgent_ReturnsIndependentCopy(t *testing.T) {
	chart := newTestChart(t)

	node := addAgent(t, chart, "n1", "Alice")
	node.Agent.Name = "Mutated"
	node.Position.X = -1

	stored, ok := chart.Node("n1")
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.Agent.Name)
	assert.Equal(t, float64(250), stored.Position.X)
}

func TestChart_Nodes_PreserveInsertionOrder(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "c", "Carol")
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")

	nodes := chart.Nodes()

	require.Len(t, nodes, 3)
	assert.Equal(t, "c", nodes[0].ID)
	assert.Equal(t, "a", nodes[1].ID)
	assert.Equal(t, "b", nodes[2].ID)
}

func TestChart_UpdateAgent_PreservesHistory(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "n1", "Alice")
	chart.RecordMessage("n1", "n1", "note to self", time.Now())

	name := "Alice Cooper"
	chart.UpdateAgent("n1", entities.AgentUpdate{Name: &name})

	node, ok := chart.Node("n1")
	require.True(t, ok)
	assert.Equal(t, "Alice Cooper", node.Agent.Name)
	require.Len(t, node.Agent.History, 1)
	assert.Equal(t, "note to self", node.Agent.History[0].Content)
}

func TestChart_UpdateAgent_ReplacesHistoryWhenProvided(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "n1", "Alice")
	chart.RecordMessage("n1", "n1", "old", time.Now())

	replacement := []entities.Message{
		{From: "x", To: "n1", Content: "imported", Timestamp: time.Now()},
	}
	chart.UpdateAgent("n1", entities.AgentUpdate{History: &replacement})

	node, _ := chart.Node("n1")
	require.Len(t, node.Agent.History, 1)
	assert.Equal(t, "imported", node.Agent.History[0].Content)
}

func TestChart_UpdateAgent_UnknownNodeIsNoOp(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "n1", "Alice")

	name := "Ghost"
	chart.UpdateAgent("missing", entities.AgentUpdate{Name: &name})

	assert.Len(t, chart.Nodes(), 1)
	node, _ := chart.Node("n1")
	assert.Equal(t, "Alice", node.Agent.Name)
}

func TestChart_Connect_SnapshotsRelationshipStyle(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")

	edge, err := chart.Connect("a", "b")
	require.NoError(t, err)

	assert.Equal(t, "ea-b", edge.ID)
	assert.Equal(t, "Direct Report", edge.Label)
	assert.False(t, edge.Animated)
	assert.Equal(t, "#3B82F6", edge.Style.Stroke)
	assert.Equal(t, valueobjects.DefaultStrokeWidth, edge.Style.StrokeWidth)
	assert.Empty(t, edge.Style.StrokeDashArray)
}

func TestChart_Connect_CollaborationIsAnimatedAndDashed(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	chart.SetSelectedRelationship("collaboration")

	edge, err := chart.Connect("a", "b")
	require.NoError(t, err)

	assert.Equal(t, "Collaboration", edge.Label)
	assert.True(t, edge.Animated)
	assert.Equal(t, "#10B981", edge.Style.Stroke)
	assert.Equal(t, valueobjects.CollaborationDashPattern, edge.Style.StrokeDashArray)
}

func TestChart_Connect_AdvisoryIsSolidAndStatic(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	chart.SetSelectedRelationship("advisory")

	edge, err := chart.Connect("a", "b")
	require.NoError(t, err)

	assert.Equal(t, "Advisory", edge.Label)
	assert.False(t, edge.Animated)
	assert.Equal(t, "#F59E0B", edge.Style.Stroke)
	assert.Empty(t, edge.Style.StrokeDashArray)
}

func TestChart_Connect_StyleSurvivesPenChange(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")

	edge, err := chart.Connect("a", "b")
	require.NoError(t, err)

	// Changing the pen afterwards must not touch existing edges.
	chart.SetSelectedRelationship("collaboration")

	edges := chart.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, edge.Label, edges[0].Label)
	assert.Equal(t, edge.Style, edges[0].Style)
	assert.False(t, edges[0].Animated)
}

func TestChart_Connect_UnresolvablePenIsRejected(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	chart.SetSelectedRelationship("nonsense")

	_, err := chart.Connect("a", "b")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Empty(t, chart.Edges())
}

func TestChart_Connect_EmptyEndpointsRejected(t *testing.T) {
	chart := newTestChart(t)

	_, err := chart.Connect("", "b")
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = chart.Connect("a", "")
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestChart_Connect_SelfLoopAllowed(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")

	edge, err := chart.Connect("a", "a")

	require.NoError(t, err)
	assert.Equal(t, "ea-a", edge.ID)
}

func TestChart_Connect_SelfLoopForbiddenByConfig(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.AllowSelfConnections = false
	chart := NewChart(cfg)
	_, err := chart.AddAgent(entities.Agent{ID: "a", Name: "Alice"})
	require.NoError(t, err)

	_, err = chart.Connect("a", "a")

	assert.True(t, pkgerrors.IsValidation(err))
}

func TestChart_Edges_PreserveInsertionOrder(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	addAgent(t, chart, "c", "Carol")

	_, err := chart.Connect("b", "c")
	require.NoError(t, err)
	_, err = chart.Connect("a", "b")
	require.NoError(t, err)

	edges := chart.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "eb-c", edges[0].ID)
	assert.Equal(t, "ea-b", edges[1].ID)
}

func TestChart_DeleteNode_CascadesEdges(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	addAgent(t, chart, "c", "Carol")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)
	_, err = chart.Connect("b", "c")
	require.NoError(t, err)
	_, err = chart.Connect("a", "c")
	require.NoError(t, err)

	chart.DeleteNode("b")

	edges := chart.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "ea-c", edges[0].ID)
	require.NoError(t, chart.Validate())
}

func TestChart_DeleteNode_ClearsSelectionUnconditionally(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	chart.SelectNode("a")

	// Deleting a different node still drops the selection.
	chart.DeleteNode("b")

	assert.Empty(t, chart.SelectedNodeID())
	_, ok := chart.SelectedNode()
	assert.False(t, ok)
}

func TestChart_DeleteNode_UnknownIDIsNoOp(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	chart.SelectNode("a")

	chart.DeleteNode("missing")

	assert.Len(t, chart.Nodes(), 1)
	assert.Equal(t, "a", chart.SelectedNodeID(), "selection survives a no-op delete")
}

func TestChart_SelectNode_ExclusiveSelection(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")

	chart.SelectNode("a")
	assert.Equal(t, "a", chart.SelectedNodeID())

	chart.SelectNode("b")
	assert.Equal(t, "b", chart.SelectedNodeID())

	selected, ok := chart.SelectedNode()
	require.True(t, ok)
	assert.Equal(t, "b", selected.ID)
}

func TestChart_SelectNode_UnknownIDClearsSelection(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	chart.SelectNode("a")

	chart.SelectNode("missing")

	assert.Empty(t, chart.SelectedNodeID())
}

func TestChart_ClearSelection(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	chart.SelectNode("a")

	chart.ClearSelection()

	assert.Empty(t, chart.SelectedNodeID())
}

func TestChart_UpdateEdge_PartialMerge(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)

	label := "Collaboration"
	animated := true
	style := valueobjects.EdgeStyle{Stroke: "#10B981", StrokeWidth: 2, StrokeDashArray: "5,5"}
	chart.UpdateEdge("ea-b", EdgeUpdate{Label: &label, Animated: &animated, Style: &style})

	edges := chart.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "Collaboration", edges[0].Label)
	assert.True(t, edges[0].Animated)
	assert.Equal(t, style, edges[0].Style)

	// Source and target are immutable through updates
	assert.Equal(t, "a", edges[0].Source)
	assert.Equal(t, "b", edges[0].Target)
}

func TestChart_UpdateEdge_UnknownIDIsNoOp(t *testing.T) {
	chart := newTestChart(t)
	label := "x"
	chart.UpdateEdge("missing", EdgeUpdate{Label: &label})
	assert.Empty(t, chart.Edges())
}

func TestChart_RemoveEdge(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)

	chart.RemoveEdge("ea-b")
	assert.Empty(t, chart.Edges())

	// Removing again is a no-op
	chart.RemoveEdge("ea-b")
	assert.Empty(t, chart.Edges())

	// Nodes survive edge removal
	assert.Len(t, chart.Nodes(), 2)
}

func TestChart_ApplyNodeChanges(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)

	pos := valueobjects.NewPosition(10, 20)
	width := 180.0
	height := 90.0
	chart.ApplyNodeChanges([]valueobjects.NodeChange{
		{Kind: valueobjects.NodeChangePosition, NodeID: "a", Position: &pos},
		{Kind: valueobjects.NodeChangeDimensions, NodeID: "a", Width: &width, Height: &height},
		{Kind: valueobjects.NodeChangeRemove, NodeID: "b"},
		{Kind: valueobjects.NodeChangePosition, NodeID: "missing", Position: &pos},
	})

	nodes := chart.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, pos, nodes[0].Position)
	assert.Equal(t, width, nodes[0].Width)
	assert.Equal(t, height, nodes[0].Height)

	// The remove record cascaded the edge
	assert.Empty(t, chart.Edges())
	require.NoError(t, chart.Validate())
}

func TestChart_ApplyEdgeChanges(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)

	chart.ApplyEdgeChanges([]valueobjects.EdgeChange{
		{Kind: valueobjects.EdgeChangeRemove, EdgeID: "ea-b"},
		{Kind: valueobjects.EdgeChangeRemove, EdgeID: "missing"},
	})

	assert.Empty(t, chart.Edges())
}

func TestChart_RecordMessage_SymmetricHistory(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")

	sent := time.Now()
	chart.RecordMessage("a", "b", "hello", sent)

	from, _ := chart.Node("a")
	to, _ := chart.Node("b")

	require.Len(t, from.Agent.History, 1)
	require.Len(t, to.Agent.History, 1)
	assert.Equal(t, from.Agent.History[0], to.Agent.History[0], "both endpoints record the identical message")
	assert.Equal(t, "a", from.Agent.History[0].From)
	assert.Equal(t, "b", from.Agent.History[0].To)
	assert.Equal(t, "hello", from.Agent.History[0].Content)
	assert.True(t, from.Agent.History[0].Timestamp.Equal(sent))
}

func TestChart_RecordMessage_SelfMessageAppendsOnce(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")

	chart.RecordMessage("a", "a", "note", time.Now())

	node, _ := chart.Node("a")
	assert.Len(t, node.Agent.History, 1)
}

func TestChart_RecordMessage_MissingEndpointSkipped(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")

	chart.RecordMessage("a", "gone", "hello?", time.Now())

	node, _ := chart.Node("a")
	assert.Len(t, node.Agent.History, 1, "the surviving endpoint keeps its half of the record")
}

func TestChart_UIFlags(t *testing.T) {
	chart := newTestChart(t)

	assert.False(t, chart.ShowNodeForm())
	assert.False(t, chart.IsEditing())

	chart.SetShowNodeForm(true)
	chart.SetEditing(true)

	assert.True(t, chart.ShowNodeForm())
	assert.True(t, chart.IsEditing())
}

func TestChart_SelectedRelationship_DefaultsToDirect(t *testing.T) {
	chart := newTestChart(t)
	assert.Equal(t, "direct", chart.SelectedRelationship())
}

func TestChart_SetSelectedRelationship_StoresWithoutValidation(t *testing.T) {
	chart := newTestChart(t)

	chart.SetSelectedRelationship("not-a-real-type")

	assert.Equal(t, "not-a-real-type", chart.SelectedRelationship())
}

func TestChart_EdgeBetween_EitherDirection(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	addAgent(t, chart, "b", "Bob")
	_, err := chart.Connect("a", "b")
	require.NoError(t, err)

	edge, ok := chart.EdgeBetween("a", "b")
	require.True(t, ok)
	assert.Equal(t, "ea-b", edge.ID)

	reversed, ok := chart.EdgeBetween("b", "a")
	require.True(t, ok)
	assert.Equal(t, edge.ID, reversed.ID)

	_, ok = chart.EdgeBetween("a", "missing")
	assert.False(t, ok)
}

func TestChart_RelationshipTypes_CatalogIsFixed(t *testing.T) {
	chart := newTestChart(t)

	catalog := chart.RelationshipTypes()
	require.Len(t, catalog, 5)

	// Mutating the returned slice must not affect the chart
	catalog[0].Label = "Hacked"
	fresh := chart.RelationshipTypes()
	assert.Equal(t, "Direct Report", fresh[0].Label)
}

func TestChart_Events_DrainAndCommit(t *testing.T) {
	chart := newTestChart(t)
	addAgent(t, chart, "a", "Alice")
	chart.SelectNode("a")

	drained := chart.GetUncommittedEvents()
	require.Len(t, drained, 2)
	assert.Equal(t, "chart.agent_added", drained[0].GetEventType())
	assert.Equal(t, "chart.selection_changed", drained[1].GetEventType())

	chart.MarkEventsAsCommitted()
	assert.Empty(t, chart.GetUncommittedEvents())
}
