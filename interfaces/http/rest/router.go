package rest

import (
	"net/http"

	"orgchart-backend/application/commands/bus"
	querybus "orgchart-backend/application/queries/bus"
	"orgchart-backend/application/services"
	"orgchart-backend/infrastructure/config"
	"orgchart-backend/interfaces/http/rest/handlers"
	"orgchart-backend/interfaces/http/rest/middleware"
	pkgerrors "orgchart-backend/pkg/errors"
	"orgchart-backend/pkg/session"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// deliveriesPerMinute bounds outbound message fan-out per session
const deliveriesPerMinute = 30

// Router creates and configures the HTTP router
type Router struct {
	config     *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	messaging  *services.MessagingService
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	messaging *services.MessagingService,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:     cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		messaging:  messaging,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", middleware.SessionHeader},
			ExposedHeaders:   []string{"X-Request-ID", middleware.SessionHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, !rt.config.IsProduction())

	// Session tokens are optional; without a configured secret the
	// session id comes from the header or is minted per request.
	var validator *session.Validator
	if rt.config.JWTSecret != "" {
		v, err := session.NewValidator(session.Config{
			SecretKey: rt.config.JWTSecret,
			Issuer:    rt.config.JWTIssuer,
		})
		if err != nil {
			rt.logger.Error("Failed to build session validator", zap.Error(err))
		} else {
			validator = v
		}
	}

	deliveryLimiter := session.NewDeliveryRateLimiter(deliveriesPerMinute)

	chartHandler := handlers.NewChartHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
	agentHandler := handlers.NewAgentHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
	edgeHandler := handlers.NewEdgeHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
	messageHandler := handlers.NewMessageHandler(rt.messaging, deliveryLimiter, errorHandler, rt.logger)
	telemetryHandler := handlers.NewTelemetryHandler(rt.queryBus, errorHandler, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(validator, rt.logger))

		r.Route("/chart", func(r chi.Router) {
			r.Get("/", chartHandler.GetChart)
			r.Post("/node-changes", chartHandler.ApplyNodeChanges)
			r.Post("/edge-changes", chartHandler.ApplyEdgeChanges)
		})

		r.Route("/agents", func(r chi.Router) {
			r.Post("/", agentHandler.CreateAgent)
			r.Put("/{nodeID}", agentHandler.UpdateAgent)
		})

		r.Route("/nodes", func(r chi.Router) {
			r.Delete("/{nodeID}", agentHandler.DeleteNode)
			r.Post("/{nodeID}/select", agentHandler.SelectNode)
			r.Get("/{nodeID}/connections", agentHandler.GetConnections)
		})

		r.Post("/selection/clear", agentHandler.ClearSelection)

		r.Route("/edges", func(r chi.Router) {
			r.Post("/", edgeHandler.CreateEdge)
			r.Patch("/{edgeID}", edgeHandler.UpdateEdge)
			r.Delete("/{edgeID}", edgeHandler.DeleteEdge)
		})

		r.Route("/relationship-types", func(r chi.Router) {
			r.Get("/", edgeHandler.ListRelationshipTypes)
			r.Put("/selected", edgeHandler.SetRelationship)
		})

		r.Post("/messages", messageHandler.SendMessage)
		r.Get("/telemetry/{sessionID}", telemetryHandler.GetSession)

		r.Route("/ui", func(r chi.Router) {
			r.Post("/node-form", chartHandler.SetNodeForm)
			r.Post("/editing", chartHandler.SetEditing)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
