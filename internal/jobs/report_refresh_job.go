package jobs

import (
	"context"
	"log"
	"time"

	"skyops/crewboard/internal/services"
)

// ReportRefreshJob periodically re-reads the report data directory so fresh
// exports dropped there land in the engine without a manual refresh call.
type ReportRefreshJob struct {
	ingest *services.IngestService
}

func NewReportRefreshJob(ingest *services.IngestService) *ReportRefreshJob {
	return &ReportRefreshJob{ingest: ingest}
}

// Run performs one refresh pass over the data directory.
func (j *ReportRefreshJob) Run(ctx context.Context) error {
	resp, err := j.ingest.RefreshFromDataDir(ctx)
	if err != nil {
		return err
	}
	log.Printf("[ReportRefreshJob] Refreshed %d report files in %s", len(resp.ReportsLoaded), resp.Elapsed)
	return nil
}

// RunScheduled runs the refresh job on a schedule
func (j *ReportRefreshJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				log.Printf("[ReportRefreshJob] Error in scheduled run: %v", err)
			}
		case <-ctx.Done():
			log.Printf("[ReportRefreshJob] Shutting down scheduled refresh")
			return
		}
	}
}
