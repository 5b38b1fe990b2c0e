package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/church-backend/internal/api"
	"github.com/baharkarakas/church-backend/internal/auth"
	"github.com/baharkarakas/church-backend/internal/config"
	"github.com/baharkarakas/church-backend/internal/db"
	"github.com/baharkarakas/church-backend/internal/logger"
	"github.com/baharkarakas/church-backend/internal/metrics"
	"github.com/baharkarakas/church-backend/internal/repository/postgres"
	"github.com/baharkarakas/church-backend/internal/services"
	"github.com/baharkarakas/church-backend/internal/storage"
	"github.com/baharkarakas/church-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.Workers)
	auditor := services.NewAuditor(repos.AuditLogs, wp, log)

	var store services.ObjectStore
	client, err := storage.New(storage.Config{
		URL:        cfg.SupabaseURL,
		ServiceKey: cfg.SupabaseServiceKey,
		Bucket:     cfg.StorageBucket,
	})
	switch {
	case err == nil:
		store = client
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn("object storage not configured, avatar uploads disabled")
	default:
		log.Error("storage", "err", err)
		os.Exit(1)
	}
	if weak := cfg.DefaultSecrets(); cfg.IsProd() && len(weak) > 0 {
		log.Warn("JWT secrets left at their defaults in prod", "vars", weak)
	}
	if cfg.WebhookSecret == "" {
		log.Warn("WEBHOOK_SECRET is empty, every webhook call will be rejected")
	}

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	finance := services.NewFinanceService(repos.Accounts, repos.Transactions, auditor)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		TM:         tm,
		Auth:       services.NewAuthService(repos.Profiles, tm),
		People:     services.NewPeopleService(repos.Profiles, store),
		Events:     services.NewEventService(repos.Events, repos.Registrations, auditor),
		Finance:    finance,
		Pastoral:   services.NewPastoralService(repos.Churches, repos.PrayerRequests, repos.Testimonies, auditor),
		Volunteers: services.NewVolunteerService(repos.Profiles, repos.Volunteers, auditor),
		Liturgy:    services.NewLiturgyService(repos.Liturgies),
		Biometric:  services.NewBiometricService(repos.Credentials),
		Dashboard: services.NewDashboardService(repos.Profiles, repos.Events, repos.PrayerRequests,
			repos.Testimonies, repos.Volunteers, finance),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	// flush queued audit entries before the pool closes
	wp.Stop()
}
