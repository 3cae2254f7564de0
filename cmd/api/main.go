// ABOUTME: Main entry point for the News Verify API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsverify-api/api"
	"newsverify-api/api/handlers"
	"newsverify-api/core/interfaces"
	"newsverify-api/core/reader"
	"newsverify-api/core/verify"
	"newsverify-api/infrastructure/cache/memory"
	rediscache "newsverify-api/infrastructure/cache/redis"
	sqlitecache "newsverify-api/infrastructure/cache/sqlite"
	stdhttp "newsverify-api/infrastructure/http/standard"
	logruslogger "newsverify-api/infrastructure/logger/logrus"
	"newsverify-api/infrastructure/model/httpscorer"
	"newsverify-api/infrastructure/search/google"
	"newsverify-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(cfg.LogLevel)
	logger.Info("Starting News Verify API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"search":     cfg.HasSearchCredentials(),
		"model_url":  cfg.Model.URL,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// A nil search provider puts the verification engine in its fail-open
	// neutral mode; missing credentials are never an error.
	var searchProvider interfaces.SearchProvider
	if cfg.HasSearchCredentials() {
		searchProvider = google.NewClient(cfg.Search.APIKey, cfg.Search.CSEID, httpClient, logger)
	} else {
		logger.Warn("search credentials missing, verification will return neutral scores", nil)
	}

	verifier := verify.NewEngine(deps, searchProvider)
	extractor := reader.NewService(deps)
	modelScorer := httpscorer.NewClient(cfg.Model.URL, httpClient)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	})

	predictHandler := handlers.NewPredictHandler(modelScorer, verifier, extractor)
	predictHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend from configuration, falling back to
// memory when an external backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		cache, err := rediscache.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return cache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		cache, err := sqlitecache.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return cache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}
