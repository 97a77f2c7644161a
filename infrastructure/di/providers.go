package di

import (
	"context"

	"orgchart-backend/application/commands"
	"orgchart-backend/application/commands/bus"
	"orgchart-backend/application/ports"
	"orgchart-backend/application/queries"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/application/services"
	domainconfig "orgchart-backend/domain/config"
	"orgchart-backend/domain/core/aggregates"
	"orgchart-backend/domain/core/validators"
	"orgchart-backend/infrastructure/config"
	"orgchart-backend/infrastructure/delivery"
	infraevents "orgchart-backend/infrastructure/events"
	"orgchart-backend/infrastructure/seed"
	"orgchart-backend/infrastructure/telemetry"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig loads the domain rules for the environment
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return domainconfig.LoadDomainConfig(cfg.Environment)
}

// ProvideChart builds the seeded chart aggregate. There is no
// persistence; every process start begins from the seed data set.
func ProvideChart(domainCfg *domainconfig.DomainConfig) (*aggregates.Chart, error) {
	return seed.NewChart(domainCfg)
}

// ProvideAgentValidator creates the agent rule validator
func ProvideAgentValidator(domainCfg *domainconfig.DomainConfig) *validators.AgentValidator {
	return validators.NewAgentValidator(domainCfg)
}

// ProvideTelemetryStore creates the in-memory session event log
func ProvideTelemetryStore() ports.TelemetryStore {
	return telemetry.NewStore()
}

// ProvideEventPublisher creates the in-process event publisher
func ProvideEventPublisher(logger *zap.Logger) ports.EventPublisher {
	return infraevents.NewPublisher(logger)
}

// ProvideMessageDeliverer wires the delivery collaborator: the LLM
// runner for backend-managed agents and the HTTP client for remote
// ones.
func ProvideMessageDeliverer(cfg *config.Config, chart *aggregates.Chart, logger *zap.Logger) ports.MessageDeliverer {
	runner := delivery.NewAgentRunner(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, chart, logger)
	remote := delivery.NewRemoteClient(cfg.RemoteDeliveryTimeout, logger)
	return delivery.NewService(runner, remote, logger)
}

// ProvideMessagingService creates the messaging side-channel
func ProvideMessagingService(
	chart *aggregates.Chart,
	deliverer ports.MessageDeliverer,
	telemetryStore ports.TelemetryStore,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *services.MessagingService {
	return services.NewMessagingService(chart, deliverer, telemetryStore, publisher, logger)
}

// ProvideCommandBus creates the command bus with every chart command
// registered
func ProvideCommandBus(
	chart *aggregates.Chart,
	validator *validators.AgentValidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	pipeline := bus.NewPipeline(bus.LoggingMiddleware(logger))

	addAgent := commands.NewAddAgentHandler(chart, validator, publisher, logger)
	updateAgent := commands.NewUpdateAgentHandler(chart, validator, publisher, logger)
	deleteNode := commands.NewDeleteNodeHandler(chart, publisher, logger)
	connectNodes := commands.NewConnectNodesHandler(chart, publisher, logger)
	updateEdge := commands.NewUpdateEdgeHandler(chart, publisher, logger)
	removeEdge := commands.NewRemoveEdgeHandler(chart, publisher, logger)
	nodeChanges := commands.NewApplyNodeChangesHandler(chart, publisher, logger)
	edgeChanges := commands.NewApplyEdgeChangesHandler(chart, publisher, logger)
	selection := commands.NewSelectionHandler(chart, publisher, logger)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.AddAgentCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return addAgent.Handle(ctx, cmd.(commands.AddAgentCommand))
		})},
		{commands.UpdateAgentCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return updateAgent.Handle(ctx, cmd.(commands.UpdateAgentCommand))
		})},
		{commands.DeleteNodeCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return deleteNode.Handle(ctx, cmd.(commands.DeleteNodeCommand))
		})},
		{commands.ConnectNodesCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return connectNodes.Handle(ctx, cmd.(commands.ConnectNodesCommand))
		})},
		{commands.UpdateEdgeCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return updateEdge.Handle(ctx, cmd.(commands.UpdateEdgeCommand))
		})},
		{commands.RemoveEdgeCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return removeEdge.Handle(ctx, cmd.(commands.RemoveEdgeCommand))
		})},
		{commands.ApplyNodeChangesCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return nodeChanges.Handle(ctx, cmd.(commands.ApplyNodeChangesCommand))
		})},
		{commands.ApplyEdgeChangesCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return edgeChanges.Handle(ctx, cmd.(commands.ApplyEdgeChangesCommand))
		})},
		{commands.SelectNodeCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return selection.HandleSelect(ctx, cmd.(commands.SelectNodeCommand))
		})},
		{commands.ClearSelectionCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return selection.HandleClear(ctx, cmd.(commands.ClearSelectionCommand))
		})},
		{commands.SetRelationshipCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return selection.HandleSetRelationship(ctx, cmd.(commands.SetRelationshipCommand))
		})},
		{commands.SetUIFlagsCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			return selection.HandleSetUIFlags(ctx, cmd.(commands.SetUIFlagsCommand))
		})},
	}

	for _, registration := range registrations {
		if err := commandBus.Register(registration.cmd, pipeline.Execute(registration.handler)); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates the query bus with every read model
// registered
func ProvideQueryBus(chart *aggregates.Chart, telemetryStore ports.TelemetryStore) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	getChart := queries.NewGetChartHandler(chart)
	getConnections := queries.NewGetConnectionsHandler(chart)
	getTelemetry := queries.NewGetTelemetryHandler(telemetryStore)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetChartQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return getChart.Handle(ctx, q.(queries.GetChartQuery))
		})},
		{queries.GetConnectionsQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return getConnections.Handle(ctx, q.(queries.GetConnectionsQuery))
		})},
		{queries.GetTelemetryQuery{}, querybus.QueryHandlerFunc(func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return getTelemetry.Handle(ctx, q.(queries.GetTelemetryQuery))
		})},
	}

	for _, registration := range registrations {
		if err := queryBus.Register(registration.query, registration.handler); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}
