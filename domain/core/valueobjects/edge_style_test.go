package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForRelationship_SolidForNonCollaboration(t *testing.T) {
	style := StyleForRelationship(RelationshipType{ID: "direct", Label: "Direct Report", Color: "#3B82F6"})

	assert.Equal(t, "#3B82F6", style.Stroke)
	assert.Equal(t, DefaultStrokeWidth, style.StrokeWidth)
	assert.Empty(t, style.StrokeDashArray)
}

func TestStyleForRelationship_DashedForCollaboration(t *testing.T) {
	style := StyleForRelationship(RelationshipType{ID: RelationshipCollaboration, Label: "Collaboration", Color: "#10B981"})

	assert.Equal(t, "#10B981", style.Stroke)
	assert.Equal(t, CollaborationDashPattern, style.StrokeDashArray)
}

func TestDefaultRelationshipTypes_Vocabulary(t *testing.T) {
	catalog := DefaultRelationshipTypes()

	ids := make([]string, 0, len(catalog))
	for _, relType := range catalog {
		ids = append(ids, relType.ID)
	}

	assert.Equal(t, []string{"direct", "indirect", "collaboration", "advisory", "mentorship"}, ids)
}
