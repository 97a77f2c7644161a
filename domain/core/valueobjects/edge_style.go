package valueobjects

// EdgeStyle is the visual style snapshot taken from a relationship type
// at the moment an edge is created or re-labeled. It is never recomputed
// when the catalog changes.
type EdgeStyle struct {
	Stroke          string `json:"stroke"`
	StrokeWidth     int    `json:"strokeWidth"`
	StrokeDashArray string `json:"strokeDasharray,omitempty"`
}

// DefaultStrokeWidth is the fixed stroke width applied to every edge.
const DefaultStrokeWidth = 2

// CollaborationDashPattern is the dash pattern applied to collaboration
// edges only.
const CollaborationDashPattern = "5,5"

// StyleForRelationship derives the style snapshot for a relationship
// type. Collaboration edges get the dash pattern, everything else is a
// solid stroke.
func StyleForRelationship(relType RelationshipType) EdgeStyle {
	style := EdgeStyle{
		Stroke:      relType.Color,
		StrokeWidth: DefaultStrokeWidth,
	}
	if relType.ID == RelationshipCollaboration {
		style.StrokeDashArray = CollaborationDashPattern
	}
	return style
}

// Equals checks if two styles are equal
func (s EdgeStyle) Equals(other EdgeStyle) bool {
	return s == other
}
