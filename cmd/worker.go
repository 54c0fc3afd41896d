package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"example.com/festivals-morocco/services/events/config"
	"example.com/festivals-morocco/services/events/internal/metrics"
	"example.com/festivals-morocco/services/events/internal/tracing"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background worker",
	Long:  `Start the background worker that refreshes the event snapshot on a schedule and pushes it to the search index`,
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
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

	// Create an error group to manage goroutines
	g, ctx := errgroup.WithContext(ctx)

	// Initialize tracer
	tracer, err := tracing.NewTracer(cfg.Tracing)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		tracer = tracing.Disabled()
	}
	defer tracer.Close()

	// Initialize metrics
	metricsCollector := metrics.NewMetrics()

	// Initialize the snapshot provider and its optional backends
	provider, redisCache := buildProvider(cfg, metricsCollector)
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	elasticClient := buildElastic(cfg)

	refresh := func() {
		txn := tracer.StartTransaction("worker-snapshot-refresh")
		defer tracer.EndTransaction(txn)

		store := provider.Refresh(ctx)
		if elasticClient == nil {
			return
		}

		span := tracer.StartSpan("elastic-index", txn)
		err := elasticClient.IndexEvents(ctx, store.Events())
		span.End()
		if err != nil {
			log.Error().Err(err).Msg("Failed to index events")
			tracer.RecordError(txn, err)
			metricsCollector.RecordError("elastic_index")
			return
		}
		metricsCollector.RecordSuccess("elastic_index")
	}

	// Warm the snapshot immediately so the first scheduled run is a refresh,
	// not a cold start.
	refresh()

	// Start the snapshot refresh cron job
	g.Go(func() error {
		log.Info().Dur("interval", cfg.Snapshot.TTL).Msg("Starting snapshot refresh job")

		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return err
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(cfg.Snapshot.TTL),
			gocron.NewTask(refresh),
		)
		if err != nil {
			return err
		}

		scheduler.Start()

		// Wait for context cancellation
		<-ctx.Done()

		return scheduler.Shutdown()
	})

	// Wait for any goroutine to exit
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Worker error")
		return err
	}

	log.Info().Msg("Worker shutting down gracefully")
	return nil
}
