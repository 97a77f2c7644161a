package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeID_IsUnique(t *testing.T) {
	a := NewNodeID()
	b := NewNodeID()

	assert.False(t, a.IsZero())
	assert.False(t, a.Equals(b))
}

func TestNewNodeIDFromString(t *testing.T) {
	id, err := NewNodeIDFromString("4")
	require.NoError(t, err)
	assert.Equal(t, "4", id.String())

	_, err = NewNodeIDFromString("")
	assert.Error(t, err)
}

func TestNodeID_JSONRoundTrip(t *testing.T) {
	id, err := NewNodeIDFromString("node-7")
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"node-7"`, string(data))

	var decoded NodeID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, id.Equals(decoded))
}
