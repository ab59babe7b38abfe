package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/tracts/internal/census"
	"github.com/UnknownOlympus/tracts/internal/config"
	"github.com/UnknownOlympus/tracts/internal/metrics"
	"github.com/UnknownOlympus/tracts/internal/output"
	"github.com/UnknownOlympus/tracts/internal/plan"
	"github.com/UnknownOlympus/tracts/internal/repository"
	"github.com/UnknownOlympus/tracts/internal/retry"
	"github.com/UnknownOlympus/tracts/internal/service"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env).With("run_id", uuid.NewString())

	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.ErrorContext(ctx, "Extraction failed", "error", err)
		os.Exit(1)
	}
}

// run executes one extraction: load centroids, write the header, fetch every variable,
// write the rows. The output file is closed before run returns, on success or failure.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (err error) {
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	defer func() {
		if errMetrics := metrics.WriteTextfile(cfg.MetricsFile, reg); errMetrics != nil {
			logger.WarnContext(ctx, "Failed to write metrics file", "error", errMetrics)
		}
	}()

	var repo repository.Interface
	if cfg.Database.Enabled() {
		dtb, errDB := repository.NewDatabase(ctx,
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if errDB != nil {
			return fmt.Errorf("failed to connect to DB: %w", errDB)
		}
		defer dtb.Close()
		repo = repository.NewRepository(dtb, logger)
	}

	// Centroids are loaded but not yet joined into the output rows.
	centroids, err := service.LoadCentroids(ctx, logger, cfg.CoordsFiles, repo)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "Centroid table ready", "entries", len(centroids))

	provider, err := census.NewProvider(census.ProviderConfig{
		Type:      census.ProviderType(cfg.Dataset),
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit,
		Timeout:   cfg.Timeout,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create census provider: %w", err)
	}

	logger.InfoContext(ctx, "Census provider initialized", "dataset", cfg.Dataset, "year", cfg.Year)

	writer, err := output.Open(cfg.OutputPath, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if errClose := writer.Close(); errClose != nil && err == nil {
			err = errClose
		}
	}()

	if err = writer.WriteHeader(plan.Variables); err != nil {
		return err
	}

	extraction := service.NewExtractionService(
		logger,
		provider,
		cfg.Dataset,
		appMetrics,
		retry.Policy{MaxAttempts: cfg.MaxAttempts, Backoff: cfg.Backoff},
		retry.Sleep,
		cfg.Year,
		plan.Areas,
		plan.Variables,
	)

	table, err := extraction.Run(ctx)
	if err != nil {
		return err
	}

	return writer.WriteTable(plan.Variables, table)
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr; stdout carries the data rows.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
