package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Pungieee/smart-property-pms/config"
	_ "github.com/Pungieee/smart-property-pms/docs"
	"github.com/Pungieee/smart-property-pms/internal/api"
	"github.com/Pungieee/smart-property-pms/internal/dataset"
)

// @title Smart Property PMS API
// @version 1.0
// @description Demonstration property management backend serving portfolio, sales, and maintenance views.
// @BasePath /
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load configuration from the environment
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Apply the configured log level
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown log level, keeping info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	gin.SetMode(cfg.GinMode)

	// Load the dataset snapshot
	logger.Infof("Using dataset at: %s", cfg.DatasetPath)
	store := dataset.Load(cfg.DatasetPath, logger)

	// Wire middleware and routes
	router := gin.New()
	api.SetupRoutes(router, store, logger, cfg)

	logger.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"units": store.Len(),
		"roles": config.Roles(),
	}).Info("Starting server")

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	// Serve until interrupted
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.WithError(err).Fatal("Server failed to start")
	case sig := <-quit:
		logger.Infof("Received %s, shutting down", sig)
	}

	// Drain in-flight requests before exiting
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}

	logger.Info("Server stopped")
}
