package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/services/items/internal/config"
	"github.com/bookstore/services/items/internal/db"
	httpserver "github.com/bookstore/services/items/internal/http"
	"github.com/bookstore/services/items/internal/repo"
	"github.com/bookstore/services/items/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	log.Info("Items service starting")

	log.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Initializing database...")
	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	itemRepo := repo.NewItemRepository(database, log)
	metrics := httpserver.NewMetrics(itemRepo)
	router := httpserver.NewRouter(
		httpserver.NewItemsHandler(itemRepo, log),
		httpserver.NewInfoHandler(database, log),
		metrics,
		log,
	)

	server := &http.Server{
		Addr:         config.ListenAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to serve HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		log.Error("Database close error", zap.Error(err))
	}

	log.Info("Server stopped")
}
