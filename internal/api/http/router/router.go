package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/careercoach-server/internal/api/http/handler"
	"github.com/dtroode/careercoach-server/internal/api/http/middleware"
	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/model"
	"github.com/dtroode/careercoach-server/internal/service"
)

// Router wires the HTTP API of the auth backend.
type Router struct {
	authService      *service.Auth
	federatedService *service.Federated
	contextManager   model.ContextManager
	metrics          *middleware.Metrics
	frontendURL      string
	logger           *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	federatedService *service.Federated,
	contextManager model.ContextManager,
	metrics *middleware.Metrics,
	frontendURL string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		federatedService: federatedService,
		contextManager:   contextManager,
		metrics:          metrics,
		frontendURL:      frontendURL,
		logger:           logger,
	}
}

// Register builds the handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecover(r.logger)

	mux := chi.NewRouter()
	mux.Use(
		middleware.RequestID,
		logging.Handle,
		r.metrics.Handle,
		recoverer.Handle,
		middleware.CORS(r.frontendURL),
		middleware.LimitBody(middleware.MaxBodyBytes),
	)
	mux.NotFound(handler.NotFound)
	mux.MethodNotAllowed(handler.MethodNotAllowed)

	health := handler.NewHealth(r.authService, r.logger)
	mux.Get("/healthz", health.Check)
	mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())

	mux.Route("/api", func(api chi.Router) {
		r.registerAuthRoutes(api)
		r.registerOAuthRoutes(api)
	})

	return mux
}

func (r *Router) registerAuthRoutes(api chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	api.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)
		protected.Get("/auth/me", authHandler.Me)
		protected.Post("/onboarding", authHandler.Onboarding)
	})
}

func (r *Router) registerOAuthRoutes(api chi.Router) {
	oauthHandler := handler.NewOAuth(r.federatedService, r.frontendURL, r.logger)

	api.Get("/auth/google", oauthHandler.Start)
	api.Get("/auth/google/callback", oauthHandler.Callback)
}
