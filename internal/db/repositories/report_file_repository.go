package repositories

import (
	"context"
	"fmt"

	gormModels "skyops/crewboard/internal/models/gorm"

	"gorm.io/gorm"
)

type ReportFileRepository struct {
	db *gorm.DB
}

// NewReportFileRepository creates a new GORM-based report archive repository
func NewReportFileRepository(db *gorm.DB) *ReportFileRepository {
	return &ReportFileRepository{db: db}
}

// Save archives a report file
func (r *ReportFileRepository) Save(ctx context.Context, file *gormModels.ReportFile) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("failed to archive report file: %w", err)
	}
	return nil
}

// LatestByType fetches the most recently ingested archive for a report type
func (r *ReportFileRepository) LatestByType(ctx context.Context, reportType string) (*gormModels.ReportFile, error) {
	var file gormModels.ReportFile

	err := r.db.WithContext(ctx).
		Where("report_type = ?", reportType).
		Order("ingested_at DESC").
		First(&file).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no archived report for type: %s", reportType)
		}
		return nil, fmt.Errorf("failed to fetch archived report: %w", err)
	}

	return &file, nil
}

// LatestPerType fetches the newest archive of every report type
func (r *ReportFileRepository) LatestPerType(ctx context.Context, reportTypes []string) ([]gormModels.ReportFile, error) {
	files := make([]gormModels.ReportFile, 0, len(reportTypes))
	for _, rt := range reportTypes {
		file, err := r.LatestByType(ctx, rt)
		if err != nil {
			continue // type never uploaded
		}
		files = append(files, *file)
	}
	return files, nil
}
