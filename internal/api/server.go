package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/api/handlers"
	"example.com/festivals-morocco/services/events/internal/catalog"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/search"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

// Server represents the HTTP server
type Server struct {
	config     config.Config
	router     *gin.Engine
	httpServer *http.Server
	provider   *catalog.Provider
	elastic    *search.ElasticClient
	metrics    *metrics.Metrics
	tracer     tracing.Tracer
}

// NewServer creates a new HTTP server. elastic may be nil; the search
// endpoint is only registered when it is present.
func NewServer(cfg config.Config, provider *catalog.Provider, elastic *search.ElasticClient, m *metrics.Metrics, tracer tracing.Tracer) *Server {
	server := &Server{
		config:   cfg,
		provider: provider,
		elastic:  elastic,
		metrics:  m,
		tracer:   tracer,
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.setupRouter()
	server.router = router

	httpServer := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}
	server.httpServer = httpServer

	return server
}

// setupRouter configures the HTTP router
func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())
	router.Use(CORS(s.config.CorsOrigins))

	// The API is GET-only; anything else on a known route is rejected
	// explicitly rather than treated as an unknown path.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(EdgeCache())

	eventsHandler := handlers.NewEventsHandler(s.provider, s.metrics, s.tracer)
	eventsHandler.RegisterRoutes(v1)

	if s.elastic != nil {
		searchHandler := handlers.NewSearchHandler(s.elastic, s.tracer)
		searchHandler.RegisterRoutes(v1)
	}

	metricsHandler := handlers.NewMetricsHandler(s.metrics, s.tracer)
	metricsHandler.RegisterRoutes(router)

	return router
}

// Router exposes the configured handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Info().Str("address", s.config.ServerAddress).Msg("Starting HTTP server")

	if err := s.httpServer.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "HTTP server error")
	}

	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "HTTP server shutdown error")
	}

	log.Info().Msg("HTTP server shut down successfully")
	return nil
}
