// ABOUTME: Main entry point for the Moodboards API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodboard-app-api/api"
	"moodboard-app-api/api/handlers"
	"moodboard-app-api/core/history"
	"moodboard-app-api/core/interfaces"
	"moodboard-app-api/core/moodboard"
	"moodboard-app-api/core/notify"
	"moodboard-app-api/core/services"
	"moodboard-app-api/infrastructure/cache/memory"
	"moodboard-app-api/infrastructure/cache/redis"
	"moodboard-app-api/infrastructure/cache/sqlite"
	stdhttp "moodboard-app-api/infrastructure/http/standard"
	"moodboard-app-api/infrastructure/imagegen/replicate"
	logrusLogger "moodboard-app-api/infrastructure/logger/logrus"
	redisstorage "moodboard-app-api/infrastructure/storage/redis"
	sqlitestorage "moodboard-app-api/infrastructure/storage/sqlite"
	"moodboard-app-api/pkg/config"
	"moodboard-app-api/pkg/featureflags"
	"moodboard-app-api/web"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusLogger.NewLogger(logrusLogger.Options{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		JSONFormat: cfg.Log.JSONFormat,
	})
	logger.Info("Starting Moodboards API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"model":      cfg.Replicate.Model,
	})

	flags := featureflags.NewEnvManager("")

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = sqliteCache
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create image generator
	generator, err := replicate.NewClient(cfg.Replicate.Token, cfg.Replicate.Model, logger)
	if err != nil {
		log.Fatalf("Failed to create Replicate client: %v", err)
	}

	// Create services
	moodboardService := moodboard.NewService(deps, generator)
	moodboardService.SetCacheTTL(time.Duration(cfg.Cache.TTLSeconds) * time.Second)

	ctx := context.Background()
	if flags.IsEnabledWithDefault(ctx, featureflags.PaletteExtraction, true) {
		moodboardService.SetPaletteService(services.NewPaletteService(deps))
	}

	// Create history service
	var historyService *history.Service
	if cfg.History.Backend != "none" && flags.IsEnabledWithDefault(ctx, featureflags.HistoryEnabled, true) {
		var storage interfaces.HistoryStorage
		switch cfg.History.Backend {
		case "redis":
			store, err := redisstorage.NewHistoryStore(cfg.Cache.Redis, 0)
			if err != nil {
				logger.Error("Failed to create Redis history store", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				storage = store
			}
		default:
			store, err := sqlitestorage.NewHistoryStore(cfg.History.SQLitePath)
			if err != nil {
				logger.Error("Failed to create SQLite history store", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				storage = store
			}
		}
		if storage != nil {
			historyService = history.NewService(storage, logger)
		}
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:        logger,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	}
	if flags.IsEnabledWithDefault(ctx, featureflags.RateLimitEnabled, true) {
		apiConfig.RateLimit = cfg.RateLimit.Requests
		apiConfig.RateWindow = time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create the embed relay when a target origin is configured
	var relay *handlers.EmbedRelay
	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	if cfg.Embed.TargetOrigin != "" && flags.IsEnabledWithDefault(ctx, featureflags.EmbedRelayEnabled, true) {
		relay, err = handlers.NewEmbedRelay(notify.Config{
			TargetOrigin:    cfg.Embed.TargetOrigin,
			PayloadField:    cfg.Embed.PayloadField,
			RequireEmbedded: cfg.Embed.RequireEmbedded,
			RequireDataURI:  cfg.Embed.RequireDataURI,
			Selector:        cfg.Embed.Selector,
		}, logger)
		if err != nil {
			log.Fatalf("Failed to create embed relay: %v", err)
		}
		go relay.Run(relayCtx)
		relay.RegisterRoutes(router)
	}

	// Create and register handlers
	var recorder handlers.HistoryRecorder
	if historyService != nil {
		recorder = historyService
	}
	var publisher handlers.ImagePublisher
	if relay != nil {
		publisher = relay
	}
	generateHandler := handlers.NewGenerateHandler(moodboardService, recorder, publisher)
	generateHandler.RegisterRoutes(humaAPI)

	if flags.IsEnabledWithDefault(ctx, featureflags.VenueLookupEnabled, true) {
		venueHandler := handlers.NewVenueHandler(services.NewVenueService(deps))
		venueHandler.RegisterRoutes(humaAPI)
	}

	if historyService != nil {
		historyHandler := handlers.NewHistoryHandler(historyService)
		historyHandler.RegisterRoutes(humaAPI)
	}

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Serve the embedded front end at the root
	router.Handle("/*", web.Handler())

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // generation polls the model for minutes
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	stopRelay()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    __  ___                ____                       __
   /  |/  /___  ____  ____/ / /_  ____  ____ __________/ /____
  / /|_/ / __ \/ __ \/ __  / __ \/ __ \/ __ '/ ___/ __  / ___/
 / /  / / /_/ / /_/ / /_/ / /_/ / /_/ / /_/ / /  / /_/ (__  )
/_/  /_/\____/\____/\__,_/_.___/\____/\__,_/_/   \__,_/____/
	`)
}
