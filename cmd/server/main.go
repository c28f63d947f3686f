package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jayramanidev/portfolio/internal/catalog"
	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/handler"
	"github.com/jayramanidev/portfolio/internal/mail"
	"github.com/jayramanidev/portfolio/internal/repository"
	"github.com/jayramanidev/portfolio/internal/router"
	"github.com/jayramanidev/portfolio/internal/service"
	"github.com/jayramanidev/portfolio/internal/session"
	"github.com/jayramanidev/portfolio/internal/weather"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting portfolio API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize catalogue loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var catalogLoader catalog.Loader = fileLoader

	if cfg.Catalog.S3.Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.Catalog.S3.Bucket, cfg.Catalog.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			catalogLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Catalog.S3.Key, logger)
		}
	} else {
		logger.Info().Msg("using local file system for the catalogue (S3 disabled)")
	}

	cat, err := catalogLoader.Load(ctx, cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	// Initialize session store: Redis when configured, in-memory otherwise
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessions session.Store

	if cfg.Session.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.Session.RedisAddr, cfg.Session.RedisPassword, sessionTTL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize redis session store: %w", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		logger.Info().Str("addr", cfg.Session.RedisAddr).Msg("using redis session store")
	} else {
		memStore := session.NewMemoryStore(sessionTTL, logger)
		defer memStore.Close()
		sessions = memStore
		logger.Info().Msg("using in-memory session store")
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(cat, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(sessions, productRepo, cfg.Pricing, logger)
	checkoutService := service.NewCheckoutService(cartService, logger)

	weatherClient := weather.NewClient(cfg.Weather, logger)
	weatherCache := weather.NewCache(time.Duration(cfg.Weather.CacheTTLSeconds) * time.Second)
	weatherService := weather.NewService(weatherClient, weatherCache, logger)

	mailer := mail.NewSMTPMailer(cfg.SMTP, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	weatherHandler := handler.NewWeatherHandler(weatherService, logger)
	contactHandler := handler.NewContactHandler(mailer, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, checkoutHandler, weatherHandler, contactHandler, cfg.Session, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
