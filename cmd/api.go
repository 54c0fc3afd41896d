package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/api"
	"example.com/festivals-morocco/services/events/internal/cache"
	"example.com/festivals-morocco/services/events/internal/catalog"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/search"
	"example.com/festivals-morocco/services/events/internal/sheets"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long:  `Start the HTTP API server that serves the event catalog`,
	RunE:  runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return err
	}

	// Configure logging
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize tracer
	tracer, err := tracing.NewTracer(cfg.Tracing)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		tracer = tracing.Disabled()
	}

	// Initialize metrics
	metricsCollector := metrics.NewMetrics()

	// Initialize the snapshot provider with its optional backends
	provider, redisCache := buildProvider(cfg, metricsCollector)
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize Elasticsearch client when search is enabled
	elasticClient := buildElastic(cfg)

	// Initialize and start the server
	server := api.NewServer(cfg, provider, elasticClient, metricsCollector, tracer)

	// Start the server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	// Wait for termination signal
	<-ctx.Done()

	// Shutdown the server
	if err := server.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Shutting down API server")
	return nil
}

// buildProvider wires the snapshot provider from config. Both the remote
// sheet and the Redis warm copy are optional; the provider serves the
// embedded seed data when neither is available.
func buildProvider(cfg config.Config, m *metrics.Metrics) (*catalog.Provider, *cache.RedisCache) {
	var fetcher catalog.RowFetcher
	if cfg.Sheets.Enabled && cfg.Sheets.SheetID != "" {
		fetcher = sheets.NewClient(cfg.Sheets)
		log.Info().Str("sheet_id", cfg.Sheets.SheetID).Str("tab", cfg.Sheets.Tab).Msg("Sheet source enabled")
	} else {
		log.Info().Msg("Sheet source disabled, serving embedded seed data")
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis, cfg.Sheets.SheetID)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis cache, continuing without caching")
		redisCache = nil
	}

	var snapshotCache catalog.SnapshotCache
	if redisCache != nil && redisCache.Enabled() {
		snapshotCache = redisCache
	}

	provider := catalog.NewProvider(fetcher, snapshotCache, m, cfg.Sheets.Tab, cfg.Snapshot.TTL)
	return provider, redisCache
}

// buildElastic creates the search client when enabled, or nil.
func buildElastic(cfg config.Config) *search.ElasticClient {
	if !cfg.Elastic.Enabled {
		return nil
	}
	elasticClient, err := search.NewElasticClient(cfg.Elastic)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Elasticsearch client, continuing without search functionality")
		return nil
	}
	return elasticClient
}
