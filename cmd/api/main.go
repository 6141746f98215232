package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mindwell/voicedesk/internal/api/router"
	"github.com/mindwell/voicedesk/internal/app/bootstrap"
	"github.com/mindwell/voicedesk/internal/availability"
	"github.com/mindwell/voicedesk/internal/booking"
	"github.com/mindwell/voicedesk/internal/business"
	appconfig "github.com/mindwell/voicedesk/internal/config"
	"github.com/mindwell/voicedesk/internal/consent"
	"github.com/mindwell/voicedesk/internal/http/handlers"
	"github.com/mindwell/voicedesk/internal/notify"
	"github.com/mindwell/voicedesk/internal/observability/metrics"
	"github.com/mindwell/voicedesk/internal/patients"
	"github.com/mindwell/voicedesk/internal/practice"
	"github.com/mindwell/voicedesk/internal/risk"
	"github.com/mindwell/voicedesk/internal/tools"
	"github.com/mindwell/voicedesk/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting voicedesk API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Postgres. The pgx pool serves the domain repositories; the
	// database/sql handle serves the audit log.
	var pool *pgxpool.Pool
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		sqlDB, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open audit db", "error", err)
			os.Exit(1)
		}
		defer func() { _ = sqlDB.Close() }()
	} else {
		logger.Warn("DATABASE_URL not set; using in-memory stores, audit log disabled")
	}

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	practiceStore := bootstrap.BuildPracticeStore(redisClient, cfg, logger)
	practiceCfg, err := practiceStore.Get(ctx)
	if err != nil {
		logger.Warn("practice config unavailable, using defaults", "error", err)
		practiceCfg = practice.Defaults()
	}

	loc, err := time.LoadLocation(practiceCfg.Timezone)
	if err != nil {
		logger.Warn("invalid practice timezone, using UTC", "timezone", practiceCfg.Timezone)
		loc = time.UTC
	}

	reg := prometheus.NewRegistry()
	toolMetrics := metrics.NewToolMetrics(reg)

	auditService := bootstrap.BuildAuditService(sqlDB)
	directoryClient := bootstrap.BuildDirectoryClient(cfg, logger)
	smsSender := bootstrap.BuildSMSSender(cfg, logger)
	emailSender := bootstrap.BuildEmailSender(cfg, logger)

	var patientRepo patients.Repository = patients.NewInMemoryRepository()
	var riskRepo risk.Repository = risk.NewInMemoryRepository()
	var businessSvc *business.Service
	if pool != nil {
		patientRepo = patients.NewPostgresRepository(pool)
		riskRepo = risk.NewPostgresRepository(pool)
		businessSvc = business.NewService(business.NewPostgresRepository(pool), logger)
	}

	var slotProvider availability.SlotProvider
	if directoryClient != nil {
		slotProvider = availability.DirectoryProvider{Client: directoryClient, Location: loc}
	}

	var riskAuditor risk.Auditor
	var consentAuditor consent.Auditor
	if auditService != nil {
		riskAuditor = auditService
		consentAuditor = auditService
	}

	services := bootstrap.Services{
		Practice:     practice.NewService(practiceCfg, logger),
		Availability: availability.NewService(slotProvider, logger),
		Booking: booking.NewService(booking.Config{
			Directory: directoryClient,
			Intake:    patientRepo,
			Duration:  cfg.AppointmentDuration,
			Location:  loc,
			Logger:    logger,
		}),
		Patients: patients.NewService(patientRepo, logger),
		Risk: risk.NewService(risk.Config{
			Repository: riskRepo,
			Audit:      riskAuditor,
			Metrics:    toolMetrics,
			CrisisLine: practiceCfg.Contact.CrisisLine,
			Logger:     logger,
		}),
		Confirmation: notify.NewConfirmationService(notify.ConfirmationConfig{
			SMS:          smsSender,
			Email:        emailSender,
			PracticeName: practiceCfg.Name,
			ContactPhone: practiceCfg.Contact.Phone,
			Logger:       logger,
		}),
		Consent:  consent.NewService(consent.NewInMemoryRepository(), consentAuditor, logger),
		Business: businessSvc,
	}

	registry := bootstrap.BuildRegistry(services)
	dispatcher := tools.NewDispatcher(registry, notify.ValidAUPhone, toolMetrics, logger)
	logger.Info("tool registry built", "tools", registry.Names())

	r := router.New(&router.Config{
		Logger:             logger,
		ToolsHandler:       handlers.NewToolsHandler(dispatcher, logger),
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
