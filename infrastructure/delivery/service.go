package delivery

import (
	"context"

	"orgchart-backend/application/ports"
	pkgerrors "orgchart-backend/pkg/errors"

	"go.uber.org/zap"
)

// Service is the delivery collaborator: it performs the actual send for
// a routed message, dispatching to the in-process agent runner for
// backend-managed targets and to the target's own endpoint for remote
// ones.
type Service struct {
	runner *AgentRunner
	remote *RemoteClient
	logger *zap.Logger
}

// NewService creates a delivery service
func NewService(runner *AgentRunner, remote *RemoteClient, logger *zap.Logger) *Service {
	return &Service{runner: runner, remote: remote, logger: logger}
}

// Deliver implements ports.MessageDeliverer
func (s *Service) Deliver(ctx context.Context, req ports.DeliveryRequest) (ports.DeliveryResult, error) {
	switch req.ToType {
	case ports.DeliveryBackend:
		response, err := s.runner.Run(ctx, req.FromID, req.ToID, req.Message)
		if err != nil {
			return ports.DeliveryResult{}, err
		}
		return ports.DeliveryResult{Response: response}, nil

	case ports.DeliveryRemote:
		if req.RemoteURL == "" {
			return ports.DeliveryResult{}, pkgerrors.NewValidationError("remote delivery requires a remote URL")
		}
		response, err := s.remote.Send(ctx, req.RemoteURL, req.FromID, req.Message)
		if err != nil {
			return ports.DeliveryResult{}, err
		}
		return ports.DeliveryResult{Response: response}, nil

	default:
		return ports.DeliveryResult{}, pkgerrors.NewValidationError("unknown delivery kind: " + string(req.ToType))
	}
}
