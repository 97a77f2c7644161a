package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orgchart-backend/infrastructure/config"
	"orgchart-backend/infrastructure/di"
	"orgchart-backend/interfaces/http/rest/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerAddress:         ":0",
		Environment:           "development",
		LogLevel:              "debug",
		LLMModel:              "gpt-4o-mini",
		RemoteDeliveryTimeout: 10 * time.Second,
		JWTIssuer:             "orgchart-backend",
		EnableCORS:            false,
	}

	container, err := di.InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)

	router := NewRouter(cfg, container.CommandBus, container.QueryBus, container.Messaging, container.Logger)
	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

// envelope mirrors the standard API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.True(t, env.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func TestRouter_HealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRouter_GetChart_ReturnsSeededState(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var chart struct {
		Nodes []struct {
			ID         string `json:"id"`
			IsSelected bool   `json:"isSelected"`
		} `json:"nodes"`
		Edges                []struct{ ID string } `json:"edges"`
		SelectedRelationship string                `json:"selectedRelationship"`
	}
	decodeEnvelope(t, resp, &chart)

	assert.Len(t, chart.Nodes, 5)
	assert.Len(t, chart.Edges, 5)
	assert.Equal(t, "direct", chart.SelectedRelationship)
	for _, node := range chart.Nodes {
		assert.False(t, node.IsSelected)
	}
}

func TestRouter_SessionHeaderIsEchoed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(middleware.SessionHeader), "server mints a session id when none is supplied")

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/v1/chart", nil)
	req.Header.Set(middleware.SessionHeader, "my-session")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "my-session", resp.Header.Get(middleware.SessionHeader))
}

func TestRouter_AgentLifecycle(t *testing.T) {
	server := newTestServer(t)

	// Create with a server-assigned id
	body := bytes.NewBufferString(`{"name":"New Hire","company":"Acme Corp"}`)
	resp, err := http.Post(server.URL+"/api/v1/agents", "application/json", body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeEnvelope(t, resp, &created)
	require.NotEmpty(t, created.ID)

	// Update it
	update := bytes.NewBufferString(`{"position":"Intern"}`)
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/v1/agents/"+created.ID, update)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Select it
	resp, err = http.Post(server.URL+"/api/v1/nodes/"+created.ID+"/select", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Delete it
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/api/v1/nodes/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_CreateAgent_MissingNameRejected(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/agents", "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_EdgeLifecycleUsesPen(t *testing.T) {
	server := newTestServer(t)

	// Pick the collaboration pen
	pen := bytes.NewBufferString(`{"id":"collaboration"}`)
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/v1/relationship-types/selected", pen)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Draw an edge between two seeded nodes
	resp, err = http.Post(server.URL+"/api/v1/edges", "application/json",
		bytes.NewBufferString(`{"source":"2","target":"3"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeEnvelope(t, resp, &created)
	assert.Equal(t, "e2-3", created.ID)

	// The new edge carries the collaboration snapshot
	resp, err = http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	var chart struct {
		Edges []struct {
			ID       string `json:"id"`
			Label    string `json:"label"`
			Animated bool   `json:"animated"`
		} `json:"edges"`
	}
	decodeEnvelope(t, resp, &chart)

	found := false
	for _, edge := range chart.Edges {
		if edge.ID == "e2-3" {
			found = true
			assert.Equal(t, "Collaboration", edge.Label)
			assert.True(t, edge.Animated)
		}
	}
	assert.True(t, found)

	// Remove it again
	req, _ = http.NewRequest(http.MethodDelete, server.URL+"/api/v1/edges/e2-3", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_ConnectWithUnknownPenRejected(t *testing.T) {
	server := newTestServer(t)

	pen := bytes.NewBufferString(`{"id":"imaginary"}`)
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/v1/relationship-types/selected", pen)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "setting the pen never validates")

	resp, err = http.Post(server.URL+"/api/v1/edges", "application/json",
		bytes.NewBufferString(`{"source":"1","target":"5"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "drawing with it fails")
}

func TestRouter_DeleteNodeCascades(t *testing.T) {
	server := newTestServer(t)

	// Node 1 has edges to 2 and 3 in the seed
	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/nodes/1", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	var chart struct {
		Nodes []struct{ ID string } `json:"nodes"`
		Edges []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"edges"`
	}
	decodeEnvelope(t, resp, &chart)

	assert.Len(t, chart.Nodes, 4)
	for _, edge := range chart.Edges {
		assert.NotEqual(t, "1", edge.Source)
		assert.NotEqual(t, "1", edge.Target)
	}
}

func TestRouter_Connections(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/nodes/1/connections")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		NodeID   string                `json:"nodeId"`
		Incoming []struct{ ID string } `json:"incoming"`
		Outgoing []struct{ ID string } `json:"outgoing"`
	}
	decodeEnvelope(t, resp, &view)

	assert.Equal(t, "1", view.NodeID)
	assert.Empty(t, view.Incoming)
	assert.Len(t, view.Outgoing, 2)
}

func TestRouter_RelationshipTypes(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/relationship-types")
	require.NoError(t, err)

	var view struct {
		Types    []struct{ ID string } `json:"types"`
		Selected string                `json:"selected"`
	}
	decodeEnvelope(t, resp, &view)

	assert.Len(t, view.Types, 5)
	assert.Equal(t, "direct", view.Selected)
}

func TestRouter_TelemetryUnknownSessionEmpty(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/telemetry/no-such-session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []json.RawMessage
	decodeEnvelope(t, resp, &entries)
	assert.Empty(t, entries)
}

func TestRouter_UIFlags(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/ui/node-form", "application/json",
		bytes.NewBufferString(`{"visible":true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	var chart struct {
		ShowNodeForm bool `json:"showNodeForm"`
	}
	decodeEnvelope(t, resp, &chart)
	assert.True(t, chart.ShowNodeForm)
}

func TestRouter_NodeChangesBatch(t *testing.T) {
	server := newTestServer(t)

	body := bytes.NewBufferString(`{"changes":[{"type":"position","id":"1","position":{"x":42,"y":7}}]}`)
	resp, err := http.Post(server.URL+"/api/v1/chart/node-changes", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/chart")
	require.NoError(t, err)
	var chart struct {
		Nodes []struct {
			ID       string `json:"id"`
			Position struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"position"`
		} `json:"nodes"`
	}
	decodeEnvelope(t, resp, &chart)

	for _, node := range chart.Nodes {
		if node.ID == "1" {
			assert.Equal(t, float64(42), node.Position.X)
			assert.Equal(t, float64(7), node.Position.Y)
		}
	}
}
