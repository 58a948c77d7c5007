package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"estate-site-backend/config"
	_ "estate-site-backend/docs" // Important for Swagger
	v1 "estate-site-backend/internal/delivery/http/v1"
	"estate-site-backend/internal/metrics"
	"estate-site-backend/internal/usecase"
	"estate-site-backend/pkg/email"
	"estate-site-backend/pkg/logger"
	"estate-site-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title           Estate Site Backend API
// @version         1.0
// @description     Contact form relay for the real-estate marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()
	zlog.Info("Starting estate site backend", zap.String("port", cfg.Port))

	// 3. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 4. Setup Email Sender
	sender := email.NewSender(cfg, zlog)
	if !sender.IsConfigured() {
		zlog.Warn("Email provider not configured - contact form will be unavailable", zap.String("provider", sender.Name()))
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, validation.New(), usecase.ContactSettings{
		From:            cfg.ContactFromEmail,
		To:              cfg.ContactEmailTo,
		DispatchTimeout: cfg.EmailDispatchTimeout,
	}, zlog, m)
	healthUC := usecase.NewHealthUsecase(sender)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Metrics:   m,
		Gatherer:  registry,
		Logger:    zlog,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
