package handlers

import (
	"net/http"

	"orgchart-backend/application/queries"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/pkg/common"
	pkgerrors "orgchart-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TelemetryHandler serves the per-session delivery event log
type TelemetryHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewTelemetryHandler creates a new telemetry handler
func NewTelemetryHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		queryBus: queryBus,
		errors:   errorHandler,
		logger:   logger,
	}
}

// GetSession handles GET /telemetry/{sessionID}. An unknown session
// yields an empty list, not an error.
func (h *TelemetryHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	entries, err := h.queryBus.Ask(r.Context(), queries.GetTelemetryQuery{SessionID: sessionID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, entries)
}
