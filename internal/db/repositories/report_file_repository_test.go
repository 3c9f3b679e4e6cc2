package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "skyops/crewboard/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.ReportFile{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func archiveFile(reportType, filename string, ingestedAt time.Time) *gormModels.ReportFile {
	return &gormModels.ReportFile{
		ID:           uuid.NewString(),
		ReportType:   reportType,
		Filename:     filename,
		ReportDate:   "15/01/26",
		RowsAccepted: 10,
		RowsSkipped:  2,
		Content:      []byte("header\nrow"),
		IngestedAt:   ingestedAt,
	}
}

func TestReportFileRepository_SaveAndLatestByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportFileRepository(db)
	ctx := context.Background()

	older := archiveFile("dayrep", "dayrep_old.csv", time.Now().Add(-time.Hour))
	newer := archiveFile("dayrep", "dayrep_new.csv", time.Now())

	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.LatestByType(ctx, "dayrep")
	if err != nil {
		t.Fatalf("LatestByType returned error: %v", err)
	}
	if got.Filename != "dayrep_new.csv" {
		t.Errorf("expected latest archive dayrep_new.csv, got %s", got.Filename)
	}
	if string(got.Content) != "header\nrow" {
		t.Errorf("archived content not preserved: %q", got.Content)
	}
}

func TestReportFileRepository_LatestByType_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportFileRepository(db)

	if _, err := repo.LatestByType(context.Background(), "rolcrtot"); err == nil {
		t.Error("expected error for report type with no archives")
	}
}

func TestReportFileRepository_LatestPerType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportFileRepository(db)
	ctx := context.Background()

	if err := repo.Save(ctx, archiveFile("dayrep", "dayrep.csv", time.Now())); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, archiveFile("schedule", "sched.csv", time.Now())); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	files, err := repo.LatestPerType(ctx, []string{"dayrep", "sacutil", "rolcrtot", "schedule"})
	if err != nil {
		t.Fatalf("LatestPerType returned error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 archives, got %d", len(files))
	}
}
