package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/fastbites/fastbites-api/internal/api"
	"github.com/fastbites/fastbites-api/internal/infrastructure/config"
	"github.com/fastbites/fastbites-api/internal/infrastructure/db/postgres"
	"github.com/fastbites/fastbites-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log.Info().Str("env", cfg.Env).Msg("starting Fast Bites API")

	// Database unavailability at startup is non-fatal: the service comes up
	// and data-dependent routes fail per-request until corrected.
	var db *gorm.DB
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set; persistence disabled")
	} else {
		conn, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed; data routes will error until corrected")
		} else {
			db = conn
			if err := postgres.MigrateUsers(db); err != nil {
				log.Error().Err(err).Msg("users table migration failed")
			}
		}
	}

	e := api.NewRouter(db, cfg, log)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("addr", addr).Msg("server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
