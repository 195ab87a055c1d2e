package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/arena-agenda/internal/arena"
	"github.com/mauv0809/arena-agenda/internal/calendar"
	"github.com/mauv0809/arena-agenda/internal/config"
	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/mauv0809/arena-agenda/internal/database"
	server "github.com/mauv0809/arena-agenda/internal/http"
	"github.com/mauv0809/arena-agenda/internal/match"
	"github.com/mauv0809/arena-agenda/internal/metrics"
	"github.com/mauv0809/arena-agenda/internal/pubsub"
	"github.com/mauv0809/arena-agenda/internal/schedule"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	pubsubClient, err := pubsub.New(cfg.ProjectID)
	if err != nil {
		log.Fatalf("Failed to initialize pubsub: %s", err)
	}
	defer pubsubClient.Close()

	courts := court.New(db)
	schedules := schedule.WithFallback(schedule.New(db), metricsSvc.IncScheduleFallbacks)
	matches := newMatchRepository(cfg.Matches)
	resolver := calendar.New(cfg.Location)

	svc := arena.New(courts, schedules, matches, resolver, metricsSvc, pubsubClient)
	s := server.NewServer(svc, pubsubClient, metricsHandler)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "time_zone", resolver.Location().String(), "match_source", cfg.Matches.Source)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

func newMatchRepository(cfg config.MatchSourceConfig) match.Repository {
	if cfg.Source == config.MatchSourcePlaytomic {
		return match.NewPlaytomicRepository(cfg.PlaytomicTenantID)
	}
	return match.NewClient(cfg.BaseURL, cfg.Token)
}
