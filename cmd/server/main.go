package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/api"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/config"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/service"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/session"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/storefront"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting storefront API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Bool("storefront_configured", cfg.Storefront.ShopDomain != "" && cfg.Storefront.AccessToken != ""),
	)

	// Cart-session store; without Redis every session starts cartless
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, cart sessions will not persist", zap.Error(err))
			rdb = nil
		}
		cancel()
	} else {
		logger.Warn("REDIS_ADDR not set, cart sessions will not persist")
	}
	sessions := session.New(rdb, 0, logger)

	// Storefront client and services
	client := storefront.NewClient(cfg.Storefront, logger)
	catalogSvc := service.NewCatalogService(client, nil, logger)
	cartSvc := service.NewCartService(client, sessions, logger)

	// Initialize router
	router := api.NewRouter(cfg, catalogSvc, cartSvc, logger)

	// CORS for the browser frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("Server exited")
}
