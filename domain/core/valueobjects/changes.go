package valueobjects

// The rendering layer reports low-level mutations (drags, removals,
// dimension updates) as batched change records. The domain folds them
// into its collections without validating ids: a change referencing an
// unknown id is ignored, never an error.

// NodeChangeKind identifies the kind of a node change record
type NodeChangeKind string

const (
	NodeChangePosition   NodeChangeKind = "position"
	NodeChangeRemove     NodeChangeKind = "remove"
	NodeChangeDimensions NodeChangeKind = "dimensions"
)

// NodeChange is a single change record for a node
type NodeChange struct {
	Kind     NodeChangeKind `json:"type"`
	NodeID   string         `json:"id"`
	Position *Position      `json:"position,omitempty"`
	Width    *float64       `json:"width,omitempty"`
	Height   *float64       `json:"height,omitempty"`
}

// EdgeChangeKind identifies the kind of an edge change record
type EdgeChangeKind string

const (
	EdgeChangeRemove EdgeChangeKind = "remove"
)

// EdgeChange is a single change record for an edge
type EdgeChange struct {
	Kind   EdgeChangeKind `json:"type"`
	EdgeID string         `json:"id"`
}
