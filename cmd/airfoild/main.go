// Command airfoild serves NACA airfoil profiles over HTTP and, when Kafka is
// enabled, answers profile requests consumed from a topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/naca-airfoil-service/internal/adapter/cache"
	httpadapter "github.com/couchcryptid/naca-airfoil-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/naca-airfoil-service/internal/adapter/kafka"
	"github.com/couchcryptid/naca-airfoil-service/internal/config"
	"github.com/couchcryptid/naca-airfoil-service/internal/domain"
	"github.com/couchcryptid/naca-airfoil-service/internal/observability"
	"github.com/couchcryptid/naca-airfoil-service/internal/pipeline"
)

// alwaysReady is the readiness checker used when no pipeline is running.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	opts := []domain.GeneratorOption{domain.WithLimits(domain.Limits{
		MaxChord:      cfg.MaxChord,
		MaxPoints:     cfg.MaxPoints,
		DefaultPoints: cfg.DefaultPoints,
	})}
	if cfg.StrictSixSeries {
		opts = append(opts, domain.WithStrictSixSeries())
	}

	// Instrumentation sits inside the cache so hits are not timed as generations.
	var generator domain.ProfileGenerator = observability.NewInstrumentedGenerator(domain.NewGenerator(opts...), metrics, logger)
	if cfg.CacheSize > 0 {
		generator = cache.NewCachedGenerator(generator, cfg.CacheSize, metrics)
		logger.Info("profile cache enabled", "size", cfg.CacheSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		ready  httpadapter.ReadinessChecker = alwaysReady{}
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(generator, logger)

		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, generator, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
