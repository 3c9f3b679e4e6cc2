package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyops/crewboard/internal/api"
	"skyops/crewboard/internal/config"
	"skyops/crewboard/internal/db"
	"skyops/crewboard/internal/jobs"
	"skyops/crewboard/internal/logging"
	"skyops/crewboard/internal/metrics"
	gormModels "skyops/crewboard/internal/models/gorm"
	"skyops/crewboard/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Crewboard starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(cfg); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	gormDB, err := db.InitPostgresORM(db.DSN(cfg))
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	if err := gormDB.AutoMigrate(&gormModels.ReportFile{}); err != nil {
		log.Fatalf("Failed to migrate report archive table: %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	// Rebuild engine state from the archived reports, then let the data
	// directory override with anything newer.
	ctx := context.Background()
	if err := deps.Services.Ingest.RestoreFromArchive(ctx); err != nil {
		logging.Warn("No engine state restored from archive", "error", err.Error())
	}
	if _, err := deps.Services.Ingest.RefreshFromDataDir(ctx); err != nil {
		logging.Warn("Initial data directory refresh failed", "error", err.Error())
	}

	// Periodic refresh picks up report files dropped while running
	jobs.InitializeJobs(ctx, deps.Services.Ingest, cfg.RefreshInterval)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
