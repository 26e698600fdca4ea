package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/internal/config"
	authHandler "github.com/jwalitptl/cliniccare-api/internal/handler/auth"
	consultationHandler "github.com/jwalitptl/cliniccare-api/internal/handler/consultation"
	diagnosisHandler "github.com/jwalitptl/cliniccare-api/internal/handler/diagnosis"
	"github.com/jwalitptl/cliniccare-api/internal/handler/health"
	"github.com/jwalitptl/cliniccare-api/internal/handler/prometheus"
	"github.com/jwalitptl/cliniccare-api/internal/middleware"
	"github.com/jwalitptl/cliniccare-api/internal/repository/postgres"
	"github.com/jwalitptl/cliniccare-api/internal/router"
	authService "github.com/jwalitptl/cliniccare-api/internal/service/auth"
	consultationService "github.com/jwalitptl/cliniccare-api/internal/service/consultation"
	diagnosisService "github.com/jwalitptl/cliniccare-api/internal/service/diagnosis"
	"github.com/jwalitptl/cliniccare-api/pkg/auth"
	"github.com/jwalitptl/cliniccare-api/pkg/logger"
	"github.com/jwalitptl/cliniccare-api/pkg/metrics"
	"github.com/jwalitptl/cliniccare-api/pkg/security"
	"github.com/jwalitptl/cliniccare-api/pkg/validator"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(cfg.Log.ToLoggerConfig())
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	// Initialize database
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Initialize metrics
	registry := promclient.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics("cliniccare", registry)

	// Initialize repositories
	repos := postgres.NewRepositories(db, appMetrics)

	tokens, err := auth.NewJWTService(cfg.JWT.ToAuthConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	v := validator.New()

	// Initialize services
	authSvc := authService.NewService(repos.Doctors, hasher, tokens, v)
	diagnosisSvc := diagnosisService.NewService(repos.DiagnosisCodes)
	consultationSvc := consultationService.NewService(repos.Consultations, v)

	// Setup router
	r := router.NewRouter(
		middleware.NewAuthMiddleware(authSvc),
		authHandler.NewHandler(authSvc, v),
		diagnosisHandler.NewHandler(diagnosisSvc),
		consultationHandler.NewHandler(consultationSvc),
		health.NewHandler(db),
		prometheus.New(registry, appMetrics),
		router.RouterConfig{
			CORSOrigins:    cfg.CORS.Origins,
			RequestTimeout: cfg.Server.Timeout(),
		},
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
