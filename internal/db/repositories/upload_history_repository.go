package repositories

import (
	"context"

	"skyops/crewboard/internal/constants"
	"skyops/crewboard/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type UploadHistoryRepository struct {
	db *sqlx.DB
}

func NewUploadHistoryRepository(db *sqlx.DB) *UploadHistoryRepository {
	return &UploadHistoryRepository{db}
}

func (r *UploadHistoryRepository) RecentUploads(ctx context.Context, limit int) ([]entities.UploadRecord, error) {
	var records []entities.UploadRecord

	if err := r.db.SelectContext(ctx, &records, constants.GetRecentUploads, limit); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *UploadHistoryRepository) CountsByType(ctx context.Context) ([]entities.UploadTypeCount, error) {
	var counts []entities.UploadTypeCount

	if err := r.db.SelectContext(ctx, &counts, constants.CountUploadsByType); err != nil {
		return nil, err
	}

	return counts, nil
}
