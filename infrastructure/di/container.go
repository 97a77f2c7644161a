package di

import (
	"orgchart-backend/application/commands/bus"
	"orgchart-backend/application/ports"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/application/services"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Chart      *aggregates.Chart
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Messaging  *services.MessagingService
	Telemetry  ports.TelemetryStore
	Publisher  ports.EventPublisher
}
