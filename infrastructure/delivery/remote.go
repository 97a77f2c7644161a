package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "orgchart-backend/pkg/errors"

	"go.uber.org/zap"
)

// RemoteClient posts messages directly to a remote agent's own
// endpoint. Used only for collaboration pairs whose target has a
// remote URL configured; the endpoint itself is never validated
// beforehand.
type RemoteClient struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRemoteClient creates a client with the given per-request timeout
func NewRemoteClient(timeout time.Duration, logger *zap.Logger) *RemoteClient {
	return &RemoteClient{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// remotePayload is the body posted to remote agents
type remotePayload struct {
	FromID  string `json:"fromId"`
	Message string `json:"message"`
}

// Send posts the message and returns the remote agent's raw reply. A
// non-2xx status is a delivery failure.
func (c *RemoteClient) Send(ctx context.Context, remoteURL, fromID, message string) (string, error) {
	body, err := json.Marshal(remotePayload{FromID: fromID, Message: message})
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to encode remote payload").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, remoteURL, bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.NewValidationError("invalid remote URL: " + remoteURL)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.NewExternalError("remote agent", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.NewExternalError("remote agent", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Remote agent rejected message",
			zap.String("remoteURL", remoteURL),
			zap.Int("status", resp.StatusCode),
		)
		return "", pkgerrors.NewExternalError("remote agent",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return string(respBody), nil
}
