package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"skyops/crewboard/internal/common"
	"skyops/crewboard/internal/constants"
	"skyops/crewboard/internal/metrics"
	"skyops/crewboard/internal/reports"
)

// DashboardService owns the report aggregator and serves derived snapshots.
// Ingestion takes the write lock; snapshot reads share the read lock, so a
// slow reader never blocks another reader. Cached snapshots are keyed by a
// generation counter that every ingestion bumps, which retires all stale
// cache entries at once without enumerating filter keys.
type DashboardService struct {
	mu      sync.RWMutex
	agg     *reports.Aggregator
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	ttl     time.Duration
	gen     uint64
}

func NewDashboardService(
	defaultYear int,
	cache common.CacheInterface,
	reg *metrics.MetricsRegistry,
	snapshotTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		agg:     reports.NewAggregator(defaultYear),
		cache:   cache,
		metrics: reg,
		ttl:     snapshotTTL,
	}
}

// Normalizer exposes the engine's date normalizer for ingestion glue.
func (s *DashboardService) Normalizer() *reports.DateNormalizer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agg.Normalizer()
}

// Ingest routes one parsed report into the aggregator. reportDate is ignored
// for dayrep and sacutil, whose rows carry their own dates.
func (s *DashboardService) Ingest(reportType constants.ReportType, rows [][]string, reportDate string) (reports.IngestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result reports.IngestResult
	switch reportType {
	case constants.ReportTypeDayrep:
		result = s.agg.IngestFlights(rows)
	case constants.ReportTypeSacutil:
		result = s.agg.IngestUtilization(rows)
	case constants.ReportTypeRolcrtot:
		result = s.agg.IngestRollingHours(rows, reportDate)
	case constants.ReportTypeSchedule:
		result = s.agg.IngestSchedule(rows, reportDate)
	default:
		return reports.IngestResult{}, fmt.Errorf("unknown report type: %s", reportType)
	}

	atomic.AddUint64(&s.gen, 1)
	return result, nil
}

// Snapshot returns the derived view for filterKey ("" for global), serving
// from cache when a snapshot of the current generation is already built.
func (s *DashboardService) Snapshot(filterKey string) *reports.Snapshot {
	key := fmt.Sprintf("%s%d:%s", constants.CachePrefixSnapshot, atomic.LoadUint64(&s.gen), filterKey)

	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			if snap, ok := cached.(*reports.Snapshot); ok {
				if s.metrics != nil {
					s.metrics.SnapshotCacheHits.Inc()
				}
				return snap
			}
		}
	}

	if s.metrics != nil {
		s.metrics.SnapshotCacheMisses.Inc()
	}

	start := time.Now()
	s.mu.RLock()
	snap := s.agg.Snapshot(filterKey)
	s.mu.RUnlock()
	if s.metrics != nil {
		s.metrics.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
	}

	if s.cache != nil {
		s.cache.Set(key, snap, s.ttl)
	}
	return snap
}
