// Package api provides the HTTP API server and handlers for the Horner
// reading-plan application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hornerapp/horner-server/internal/sse"
	"github.com/hornerapp/horner-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store      *store.Store
	services   *Services
	sseHandler *sse.Handler
	sseManager *sse.Manager
	router     *chi.Mux
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, services *Services, sseHandler *sse.Handler, sseManager *sse.Manager, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Account-ID"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("Horner API", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:      store,
		services:   services,
		sseHandler: sseHandler,
		sseManager: sseManager,
		router:     router,
		api:        api,
		logger:     logger,
	}

	s.registerHealthRoutes()
	s.registerPlanRoutes()
	s.registerReadingRoutes()
	s.registerProgressRoutes()
	s.registerSyncRoutes()
	s.registerSettingsRoutes()

	// SSE streams outside huma: the typed API cannot model a long-lived
	// event stream response.
	router.Get("/api/v1/events", s.sseHandler.ServeHTTP)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
