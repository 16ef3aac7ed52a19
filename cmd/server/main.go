// Package main is the entry point for the railway reservation service.
//
//	@title						RailReserve API
//	@version					1.0.0
//	@description				Train search, seat selection, mock payment and e-ticket issuance for a single-operator reservation desk.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/rail-reserve/railway-reservation-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/rail-reserve/railway-reservation-system/docs"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/document"
	railhttp "github.com/rail-reserve/railway-reservation-system/internal/adapter/http"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/middleware"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage"
	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/config"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
	"github.com/rail-reserve/railway-reservation-system/internal/repository"
	"github.com/rail-reserve/railway-reservation-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

func main() {
	cfg := config.MustLoad()
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	e, closer, err := newServer(ctx, cfg, appLog)
	cancel()
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to initialize server")
	}
	defer func() {
		if err := closer.Close(); err != nil {
			appLog.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// setupLogger builds the application logger and points the global zerolog
// logger at it.
func setupLogger(cfg *config.Config) *logger.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	appLog := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  "railreserve",
	})
	log.Logger = appLog.Logger

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return appLog
}

// newServer loads the catalog and stores and wires the HTTP surface.
func newServer(ctx context.Context, cfg *config.Config, appLog *logger.Logger) (*echo.Echo, io.Closer, error) {
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		var err error
		if cat, err = catalog.Load(cfg.Catalog.Path); err != nil {
			return nil, nil, err
		}
	}
	stats := cat.Stats()
	appLog.Info().Int("stations", stats.Stations).Int("trains", stats.Trains).Msg("Catalog loaded")
	if unpriced := cat.UnpricedClasses(); len(unpriced) > 0 {
		appLog.Warn().Strs("classes", unpriced).Msg("Classes without a base fare use the fallback fare")
	}

	kv, closer, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	saveRetry := retry.StorageConfig.WithMaxAttempts(cfg.Storage.SaveAttempts)
	repoCfg := &repository.Config{Retry: &saveRetry, Logger: appLog}

	occupancy, err := repository.NewOccupancyStore(ctx, kv, repoCfg)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	tickets, err := repository.NewTicketStore(ctx, kv, repoCfg)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	clock := timeutil.NewRealClock()
	search := usecase.NewSearchUseCase(cat, usecase.NewAvailabilityGenerator(nil), appLog)
	booking := usecase.NewBookingService(usecase.BookingDeps{
		Catalog:   cat,
		Search:    search,
		Occupancy: occupancy,
		Tickets:   tickets,
		Clock:     clock,
		Logger:    appLog,
	})

	handler := railhttp.NewHandler(railhttp.HandlerDeps{
		Catalog:  cat,
		Search:   search,
		Booking:  booking,
		Sessions: usecase.NewSessionRegistry(clock, cfg.Session.TTL),
		Renderer: document.NewTicketRenderer(cat),
		Logger:   appLog,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	recovery := middleware.DefaultRecoveryConfig()
	recovery.DisablePrintStack = cfg.IsProduction()
	middleware.Setup(e, appLog.Logger, recovery)

	railhttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, closer, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
