package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/settings-loader/internal/checker"
	"github.com/BuzzLyutic/settings-loader/internal/db"
	"github.com/BuzzLyutic/settings-loader/internal/dbconfig"
	"github.com/BuzzLyutic/settings-loader/internal/handler"
	"github.com/BuzzLyutic/settings-loader/internal/settings"
)

// Alias -> environment prefix. REPLICA_* variables configure the replica
// alias when present.
var databaseAliases = map[string]string{
	"default": "DB",
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	base, err := settings.Get()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	logger.Info("settings loaded",
		zap.String("env", base.Env),
		zap.Bool("debug", base.Debug),
	)

	if os.Getenv("REPLICA_ENGINE") != "" {
		databaseAliases["replica"] = "REPLICA"
	}

	manager := dbconfig.NewManager(base.BaseDir, logger)

	configs := make(map[string]dbconfig.Config, len(databaseAliases))
	for alias, prefix := range databaseAliases {
		cfg, cerr := manager.Configuration(prefix)
		if cerr != nil {
			logger.Warn("database alias not configured",
				zap.String("alias", alias), zap.Error(cerr))
			continue
		}
		configs[alias] = cfg
	}

	ctx := context.Background()
	results := checker.New(logger, 3).Run(ctx, configs)
	logger.Info("connectivity checks finished", zap.Int("checked", len(results)))

	// Keep a pool open for the default alias when it is PostgreSQL.
	if cfg, ok := configs["default"]; ok && cfg.Engine() == "postgresql" {
		pool, perr := db.Open(ctx, cfg)
		if perr != nil {
			logger.Warn("failed to open default pool", zap.Error(perr))
		} else {
			defer pool.Close()
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := handler.NewConfigHandler(base, manager, databaseAliases, logger)
	h.Routes(r)

	srv := http.Server{
		Addr:         base.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
