package jobs

import (
	"context"
	"time"

	"skyops/crewboard/internal/services"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	ingest *services.IngestService,
	refreshInterval time.Duration,
) *ReportRefreshJob {
	refreshJob := NewReportRefreshJob(ingest)

	// Start scheduled refresh in background
	go refreshJob.RunScheduled(ctx, refreshInterval)

	return refreshJob
}
