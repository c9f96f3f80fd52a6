package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcapi "github.com/adamanr/hrdesk/internal/api/grpc"
	api "github.com/adamanr/hrdesk/internal/api/http"
	"github.com/adamanr/hrdesk/internal/config"
	"github.com/adamanr/hrdesk/internal/controllers"
	"github.com/adamanr/hrdesk/internal/database"
	logging "github.com/adamanr/hrdesk/internal/utils"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
)

const (
	healthInterval  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Secrets may come from a local .env file; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.GetConfig(config.Path(), bootLogger)
	if err != nil {
		return err
	}

	logger := logging.SetupLogger(cfg.Server.LogFile, os.Stdout, slog.LevelInfo, "hrdesk")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := database.NewRedisConn(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	pool, err := database.NewPool(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err = database.Migrate(ctx, pool, logger); err != nil {
			logger.Error("Failed to migrate database", slog.String("error", err.Error()))
			return err
		}
	}

	if err = database.SeedHR(ctx, pool, cfg, logger); err != nil {
		logger.Error("Failed to seed HR account", slog.String("error", err.Error()))
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := api.NewServer(&controllers.Dependens{
		DB:     pool,
		Redis:  rdb,
		Logger: logger,
		Config: cfg,
	})

	s := &http.Server{
		Handler: api.NewRouter(server, logger, api.RouterOptions{
			CORSOrigin: cfg.Server.CORSOrigin,
			TrustProxy: cfg.Server.TrustProxy,
			Registry:   registry,
			Ready:      database.Ready{Postgres: pool, Redis: rdb},
			LoginRate:  rate.Limit(cfg.Server.LoginRate),
			LoginBurst: cfg.Server.LoginBurst,
		}),
		Addr:              cfg.Server.Host,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 2)

	var grpcServer *grpcapi.Server
	if cfg.Server.GRPCHost != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCHost)
		if err != nil {
			return err
		}

		grpcServer = grpcapi.NewServer(pool, logger)
		go grpcServer.Watch(ctx, healthInterval)
		go func() { errCh <- grpcServer.Serve(lis) }()
	}

	go func() {
		logger.Info("Server is starting", slog.String("address", cfg.Server.Host))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Server stopped", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Error shutting down HTTP server", slog.String("error", shutdownErr.Error()))
		return shutdownErr
	}

	return err
}
