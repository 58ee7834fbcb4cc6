package rest

import (
	"net/http"

	"focussync-backend/application/ports"
	"focussync-backend/application/services"
	"focussync-backend/infrastructure/config"
	"focussync-backend/interfaces/http/rest/handlers"
	"focussync-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg         *config.Config
	matchmaking *services.MatchmakingService
	sessions    *services.SessionService
	profiles    *services.ProfileService
	store       ports.StoreHealth
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	matchmaking *services.MatchmakingService,
	sessions *services.SessionService,
	profiles *services.ProfileService,
	store ports.StoreHealth,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:         cfg,
		matchmaking: matchmaking,
		sessions:    sessions,
		profiles:    profiles,
		store:       store,
		logger:      logger,
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

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	diagnostics := handlers.NewDiagnosticsHandler(rt.cfg, rt.store, rt.logger)
	router.Get("/", diagnostics.Root)
	router.Get("/test", diagnostics.TestStore)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Matchmaking queue
	queueHandler := handlers.NewQueueHandler(rt.matchmaking, rt.logger)
	router.Post("/queue/join", queueHandler.JoinQueue)

	// Session lifecycle
	sessionHandler := handlers.NewSessionHandler(rt.sessions, rt.logger)
	router.Route("/session", func(r chi.Router) {
		r.Post("/end", sessionHandler.EndSession)
		r.Get("/{sessionID}", sessionHandler.GetSession)
	})

	// User profiles
	profileHandler := handlers.NewProfileHandler(rt.profiles, rt.logger)
	router.Route("/profiles", func(r chi.Router) {
		r.Post("/", profileHandler.CreateProfile)
		r.Get("/{name}", profileHandler.GetProfile)
	})

	// Signaling placeholder, to be replaced by a real provider
	signalingHandler := handlers.NewSignalingHandler()
	router.Get("/signaling/token", signalingHandler.GetToken)

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
	if rt.store != nil {
		if err := rt.store.Ping(req.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"not ready"}`))
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
