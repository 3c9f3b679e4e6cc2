package api

import (
	"skyops/crewboard/internal/common"
	"skyops/crewboard/internal/config"
	"skyops/crewboard/internal/db"
	"skyops/crewboard/internal/db/repositories"
	"skyops/crewboard/internal/logging"
	"skyops/crewboard/internal/metrics"
	"skyops/crewboard/internal/services"
)

type Repositories struct {
	ReportFiles   *repositories.ReportFileRepository
	UploadHistory *repositories.UploadHistoryRepository
}

type Services struct {
	Cache     common.CacheInterface
	Dashboard *services.DashboardService
	Ingest    *services.IngestService
}

type Dependencies struct {
	Config   *config.Config
	Metrics  *metrics.MetricsRegistry
	Repo     *Repositories
	Services *Services
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{}
	if db.PgDB != nil {
		repos.ReportFiles = repositories.NewReportFileRepository(db.PgDB)
	}
	if db.DB != nil {
		repos.UploadHistory = repositories.NewUploadHistoryRepository(db.DB)
	}

	// Prefer Redis when configured so snapshots survive restarts and are
	// shared across replicas; otherwise fall back to the in-process cache.
	var cacheSvc common.CacheInterface
	if cfg.RedisAddr != "" {
		redisCache, err := common.NewRedisCacheService(cfg)
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err)
			cacheSvc = common.NewCacheService(60, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(60, 600)
	}

	dashboardSvc := services.NewDashboardService(cfg.DefaultReportYear, cacheSvc, metricsReg, cfg.SnapshotCacheTTL)
	ingestSvc := services.NewIngestService(dashboardSvc, repos.ReportFiles, repos.UploadHistory, metricsReg, cfg.DataDir)

	return &Dependencies{
		Config:  cfg,
		Metrics: metricsReg,
		Repo:    repos,
		Services: &Services{
			Cache:     cacheSvc,
			Dashboard: dashboardSvc,
			Ingest:    ingestSvc,
		},
	}, nil
}
