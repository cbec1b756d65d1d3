package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-png/trackers-api/internal/api"
	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/repository"
	"github.com/Black-png/trackers-api/internal/seeder"
	"github.com/Black-png/trackers-api/internal/service"
	"github.com/Black-png/trackers-api/migrations"
	"github.com/Black-png/trackers-api/pkg/broker"
	"github.com/Black-png/trackers-api/pkg/config"
	"github.com/Black-png/trackers-api/pkg/job"
	"github.com/Black-png/trackers-api/pkg/logger"
	"github.com/Black-png/trackers-api/pkg/metrics"
	"github.com/Black-png/trackers-api/pkg/postgres"
)

const (
	ReadTimeout       = 3 * time.Second
	WriteTimeout      = 5 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 1 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	startCtx := ctx

	if cfg.Seed.Timeout > 0 {
		var startCancel context.CancelFunc

		startCtx, startCancel = context.WithTimeout(ctx, cfg.Seed.Timeout)
		defer startCancel()
	}

	pool, err := postgres.Connect(startCtx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	db := postgres.OpenDB(pool)
	defer db.Close()

	err = postgres.EnsureMigrations(startCtx, l, db, migrations.FS, cfg.Seed.MigrateOnStart)
	panicOnErr("migrations", err)

	c, err := catalog.Load()
	panicOnErr("load catalog", err)

	seedMetrics := metrics.NewSeed()
	repo := repository.New(pool)
	sd := seeder.New(repo, c, seedMetrics, l)

	gate := service.GateFunc(func(ctx context.Context) (bool, error) {
		return postgres.AllMigrationsApplied(ctx, db, migrations.FS)
	})

	var events service.Events

	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.SeededTopic)
		defer producer.Close()

		events = producer
	}

	s := service.New(repo, gate, sd, events)

	if cfg.Seed.Enabled {
		_, err = s.Seed(startCtx)
		panicOnErr("seed reference data", err)
	} else {
		l.Warn("reference data seeding disabled")
		s.SkipSeed()
	}

	h := api.NewHandler(s, cfg.Errors.ExposeDetails)
	mw := api.NewMiddleware(cfg.Errors.ExposeDetails, cfg.Errors.LogStack)
	router := api.NewRouter(h, mw, seedMetrics.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	go func() {
		l.Info("http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	jobs := job.NewScheduler(l)
	if cfg.Seed.Enabled {
		jobs.Register("reseed", cfg.Seed.Interval, func(ctx context.Context) error {
			_, err := s.Seed(ctx)
			return err
		})
	}

	jobs.Start(ctx)

	waitSignal(ctx, l, server)
	jobs.Wait()
}

func waitSignal(ctx context.Context, l *slog.Logger, server *http.Server) {
	<-ctx.Done()

	l.Info("got OS signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
