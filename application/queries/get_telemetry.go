package queries

import (
	"context"

	"orgchart-backend/application/ports"
	"orgchart-backend/pkg/utils"
)

// GetTelemetryQuery asks for the recorded event log of a session
type GetTelemetryQuery struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Validate implements bus.Query
func (q GetTelemetryQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetTelemetryHandler handles GetTelemetryQuery
type GetTelemetryHandler struct {
	telemetry ports.TelemetryStore
}

// NewGetTelemetryHandler creates a new handler instance
func NewGetTelemetryHandler(telemetry ports.TelemetryStore) *GetTelemetryHandler {
	return &GetTelemetryHandler{telemetry: telemetry}
}

// Handle returns the session log; an unknown session yields an empty
// log, not an error.
func (h *GetTelemetryHandler) Handle(ctx context.Context, query GetTelemetryQuery) ([]ports.TelemetryEntry, error) {
	return h.telemetry.Session(query.SessionID), nil
}
