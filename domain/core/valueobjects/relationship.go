package valueobjects

// RelationshipType is a catalog entry describing a named, colored edge
// category. The catalog is a fixed, process-wide, read-only vocabulary;
// entries are not user-editable.
type RelationshipType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// RelationshipCollaboration is the catalog id whose edges are animated,
// dashed, and eligible for remote agent-to-agent delivery.
const RelationshipCollaboration = "collaboration"

// DefaultRelationshipTypes returns the built-in relationship vocabulary.
func DefaultRelationshipTypes() []RelationshipType {
	return []RelationshipType{
		{ID: "direct", Label: "Direct Report", Color: "#3B82F6"},
		{ID: "indirect", Label: "Indirect Report", Color: "#8B5CF6"},
		{ID: RelationshipCollaboration, Label: "Collaboration", Color: "#10B981"},
		{ID: "advisory", Label: "Advisory", Color: "#F59E0B"},
		{ID: "mentorship", Label: "Mentorship", Color: "#EC4899"},
	}
}
