package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyops/crewboard/internal/constants"
	"skyops/crewboard/internal/db/repositories"
	"skyops/crewboard/internal/logging"
	"skyops/crewboard/internal/metrics"
	"skyops/crewboard/internal/models/dtos"
	gormModels "skyops/crewboard/internal/models/gorm"
	"skyops/crewboard/internal/reports"
)

// IngestError represents an ingestion specific error
type IngestError struct {
	Code    string
	Message string
	Err     error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// headerScanRows bounds how deep into a file the report-date detection looks.
const headerScanRows = 10

// IngestService turns raw report files into engine state: it parses the
// delimited text, derives the report date for date-partitioned types, routes
// rows into the dashboard aggregator, and archives the original file so the
// engine can be rebuilt later.
type IngestService struct {
	dashboard *DashboardService
	archive   *repositories.ReportFileRepository
	history   *repositories.UploadHistoryRepository
	metrics   *metrics.MetricsRegistry
	dataDir   string
}

func NewIngestService(
	dashboard *DashboardService,
	archive *repositories.ReportFileRepository,
	history *repositories.UploadHistoryRepository,
	reg *metrics.MetricsRegistry,
	dataDir string,
) *IngestService {
	return &IngestService{
		dashboard: dashboard,
		archive:   archive,
		history:   history,
		metrics:   reg,
		dataDir:   dataDir,
	}
}

// IngestReport ingests one uploaded report file end to end.
func (s *IngestService) IngestReport(ctx context.Context, reportType constants.ReportType, filename string, content []byte) (*dtos.UploadResponse, error) {
	if !reportType.Valid() {
		return nil, &IngestError{
			Code:    constants.ErrCodeUnknownReportType,
			Message: constants.GetErrorMessage(constants.ErrCodeUnknownReportType),
		}
	}

	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && ext != ".csv" && ext != ".txt" {
		return nil, &IngestError{
			Code:    constants.ErrCodeInvalidFileType,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidFileType),
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &IngestError{
			Code:    constants.ErrCodeEmptyFile,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyFile),
		}
	}

	rows, err := parseDelimited(content)
	if err != nil {
		return nil, &IngestError{
			Code:    constants.ErrCodeMalformedCSV,
			Message: constants.GetErrorMessage(constants.ErrCodeMalformedCSV),
			Err:     err,
		}
	}

	reportDate := s.detectReportDate(reportType, rows)

	start := time.Now()
	result, err := s.dashboard.Ingest(reportType, rows, reportDate)
	if err != nil {
		return nil, &IngestError{
			Code:    constants.ErrCodeUnknownReportType,
			Message: constants.GetErrorMessage(constants.ErrCodeUnknownReportType),
			Err:     err,
		}
	}

	if s.metrics != nil {
		label := string(reportType)
		s.metrics.ReportsIngestedTotal.WithLabelValues(label).Inc()
		s.metrics.RowsAcceptedTotal.WithLabelValues(label).Add(float64(result.Accepted))
		s.metrics.RowsSkippedTotal.WithLabelValues(label).Add(float64(result.Skipped()))
		s.metrics.IngestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	}

	log := logging.WithReport(string(reportType), filename)
	log.Infow("report ingested",
		"rows_accepted", result.Accepted,
		"rows_skipped", result.Skipped(),
		"report_date", reportDate,
	)

	if s.archive != nil {
		file := &gormModels.ReportFile{
			ID:           uuid.NewString(),
			ReportType:   string(reportType),
			Filename:     filename,
			ReportDate:   reportDate,
			RowsAccepted: result.Accepted,
			RowsSkipped:  result.Skipped(),
			Content:      content,
			IngestedAt:   time.Now(),
		}
		if err := s.archive.Save(ctx, file); err != nil {
			// The engine already holds the data; losing the archive only
			// affects later rebuilds.
			log.Warnw("report archive failed", "error", err)
		}
	}

	return &dtos.UploadResponse{
		ReportType:   string(reportType),
		Filename:     filename,
		ReportDate:   reportDate,
		RowsAccepted: result.Accepted,
		RowsSkipped:  result.Skipped(),
		Outcomes:     toOutcomeDTOs(result.Outcomes),
	}, nil
}

// RefreshFromDataDir re-reads every recognizable report file from the
// configured data directory, flight reports first so date partitions exist
// before the date-keyed tables land on them.
func (s *IngestService) RefreshFromDataDir(ctx context.Context) (*dtos.RefreshResponse, error) {
	start := time.Now()

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", s.dataDir, err)
	}

	loaded := make([]dtos.RecentUpload, 0)
	for _, reportType := range constants.KnownReportTypes {
		for _, entry := range entries {
			if entry.IsDir() || reportFileType(entry.Name()) != reportType {
				continue
			}

			path := filepath.Join(s.dataDir, entry.Name())
			content, err := os.ReadFile(path)
			if err != nil {
				logging.Warn("failed to read report file", "path", path, "error", err)
				continue
			}

			resp, err := s.IngestReport(ctx, reportType, entry.Name(), content)
			if err != nil {
				logging.Warn("failed to ingest report file", "path", path, "error", err)
				continue
			}

			loaded = append(loaded, dtos.RecentUpload{
				ReportType:   resp.ReportType,
				Filename:     resp.Filename,
				RowsAccepted: resp.RowsAccepted,
				RowsSkipped:  resp.RowsSkipped,
				IngestedAt:   time.Now(),
			})
		}
	}

	return &dtos.RefreshResponse{
		ReportsLoaded: loaded,
		Elapsed:       fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	}, nil
}

// RestoreFromArchive replays the newest archived file of every report type,
// used to rebuild engine state on startup.
func (s *IngestService) RestoreFromArchive(ctx context.Context) error {
	if s.archive == nil {
		return nil
	}

	types := make([]string, 0, len(constants.KnownReportTypes))
	for _, rt := range constants.KnownReportTypes {
		types = append(types, string(rt))
	}

	files, err := s.archive.LatestPerType(ctx, types)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return &IngestError{
			Code:    constants.ErrCodeNoArchivedReport,
			Message: constants.GetErrorMessage(constants.ErrCodeNoArchivedReport),
		}
	}

	for _, file := range files {
		if _, err := s.IngestReport(ctx, constants.ReportType(file.ReportType), file.Filename, file.Content); err != nil {
			logging.Warn("failed to replay archived report",
				"report_type", file.ReportType, "filename", file.Filename, "error", err)
		}
	}
	return nil
}

// RecentUploads lists the latest archived uploads, newest first.
func (s *IngestService) RecentUploads(ctx context.Context, limit int) ([]dtos.RecentUpload, error) {
	if s.history == nil {
		return nil, nil
	}

	records, err := s.history.RecentUploads(ctx, limit)
	if err != nil {
		return nil, err
	}

	uploads := make([]dtos.RecentUpload, 0, len(records))
	for _, rec := range records {
		uploads = append(uploads, dtos.RecentUpload{
			ReportType:   rec.ReportType,
			Filename:     rec.Filename,
			RowsAccepted: rec.RowsAccepted,
			RowsSkipped:  rec.RowsSkipped,
			IngestedAt:   rec.IngestedAt,
		})
	}
	return uploads, nil
}

// UploadHistory combines the latest archived uploads with the lifetime
// upload tally per report type. Without a database both come back empty.
func (s *IngestService) UploadHistory(ctx context.Context, limit int) (dtos.UploadHistory, error) {
	history := dtos.UploadHistory{
		Recent:       make([]dtos.RecentUpload, 0),
		CountsByType: make(map[string]int),
	}
	if s.history == nil {
		return history, nil
	}

	recent, err := s.RecentUploads(ctx, limit)
	if err != nil {
		return history, err
	}
	history.Recent = recent

	counts, err := s.history.CountsByType(ctx)
	if err != nil {
		return history, err
	}
	for _, c := range counts {
		history.CountsByType[c.ReportType] = c.Uploads
	}
	return history, nil
}

// detectReportDate finds the partition date for report types whose rows do
// not carry their own dates. It scans the leading rows for a cell with a full
// date shape; header lines like "Report Date: 15 Jan 2026" satisfy this, while
// stray numeric fragments in title rows do not.
func (s *IngestService) detectReportDate(reportType constants.ReportType, rows [][]string) string {
	if reportType != constants.ReportTypeRolcrtot && reportType != constants.ReportTypeSchedule {
		return ""
	}

	norm := s.dashboard.Normalizer()
	for i, row := range rows {
		if i >= headerScanRows {
			break
		}
		// Data rows lead with a numeric index or crew id; only title and
		// header rows can carry the report date.
		if leadsWithDigits(row) {
			continue
		}
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if key, ok := norm.NormalizeHeader(cell); ok {
				return key
			}
		}
	}
	return ""
}

func leadsWithDigits(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		for _, r := range cell {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func parseDelimited(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// reportFileType maps a filename to the report type it carries, following
// the export naming convention (dayrep_*.csv, sacutil_*.csv, ...).
func reportFileType(filename string) constants.ReportType {
	name := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.HasPrefix(name, "dayrep"):
		return constants.ReportTypeDayrep
	case strings.HasPrefix(name, "sacutil"):
		return constants.ReportTypeSacutil
	case strings.HasPrefix(name, "rolcrtot"):
		return constants.ReportTypeRolcrtot
	case strings.HasPrefix(name, "sched"):
		return constants.ReportTypeSchedule
	default:
		return ""
	}
}

func toOutcomeDTOs(outcomes []reports.RowOutcome) []dtos.RowOutcomeDTO {
	if len(outcomes) == 0 {
		return nil
	}
	result := make([]dtos.RowOutcomeDTO, 0, len(outcomes))
	for _, o := range outcomes {
		result = append(result, dtos.RowOutcomeDTO{
			Line:   o.Line,
			Status: string(o.Status),
			Reason: o.Reason,
		})
	}
	return result
}
