package handlers

import (
	"encoding/json"
	"net/http"

	"orgchart-backend/application/services"
	"orgchart-backend/pkg/common"
	pkgerrors "orgchart-backend/pkg/errors"
	"orgchart-backend/pkg/session"

	"go.uber.org/zap"
)

// MessageHandler handles message delivery requests
type MessageHandler struct {
	messaging *services.MessagingService
	limiter   *session.DeliveryRateLimiter
	errors    *pkgerrors.ErrorHandler
	logger    *zap.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messaging *services.MessagingService, limiter *session.DeliveryRateLimiter, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messaging: messaging,
		limiter:   limiter,
		errors:    errorHandler,
		logger:    logger,
	}
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

// SendMessage handles POST /messages. Delivery happens first; the
// conversation history on both endpoints is written only after the
// delivery is confirmed.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	sessionID, _ := common.GetSessionID(r.Context())

	allowed, err := h.limiter.Allow(r.Context(), sessionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if !allowed {
		common.RespondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Delivery rate limit exceeded")
		return
	}

	result, err := h.messaging.Send(r.Context(), sessionID, req.From, req.To, req.Content)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
