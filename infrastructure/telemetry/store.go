package telemetry

import (
	"sync"

	"orgchart-backend/application/ports"
)

// Store is an in-memory, per-session append-only event log. Sessions
// live for the process lifetime; there is no persistence, matching the
// rest of the editor state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]ports.TelemetryEntry
}

// NewStore creates an empty telemetry store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]ports.TelemetryEntry),
	}
}

// Record implements ports.TelemetryStore
func (s *Store) Record(sessionID string, entry ports.TelemetryEntry) {
	if sessionID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], entry)
}

// Session implements ports.TelemetryStore. An unknown session yields an
// empty log. The returned slice is a copy.
func (s *Store) Session(sessionID string) []ports.TelemetryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	out := make([]ports.TelemetryEntry, len(entries))
	copy(out, entries)
	return out
}
