package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyops/crewboard/internal/common"
	"skyops/crewboard/internal/constants"
	"skyops/crewboard/internal/services"
)

const recentUploadsLimit = 20

// UploadReport handles POST /api/v1/upload/{reportType}. The file arrives as
// multipart form field "file"; a raw CSV body is accepted as well.
func (h *Handlers) UploadReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reportType := constants.ReportType(chi.URLParam(r, "reportType"))

		filename, content, err := readUploadedFile(r, h.deps.Config.MaxUploadBytes)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to read uploaded file", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Ingest.IngestReport(r.Context(), reportType, filename, content)
		if err != nil {
			handleIngestError(w, initTime, err)
			return
		}

		h.deps.Services.Cache.Delete(string(constants.CachePrefixUploads))

		common.RespondSuccess(w, initTime, "Report ingested", resp)
	}
}

// GetRecentUploads handles GET /api/v1/uploads: the newest archived uploads
// plus per-type upload counts.
func (h *Handlers) GetRecentUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		history, err := h.deps.Services.Cache.GetOrSet(
			string(constants.CachePrefixUploads),
			30*time.Second,
			func() (any, error) {
				return h.deps.Services.Ingest.UploadHistory(r.Context(), recentUploadsLimit)
			},
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list uploads", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Recent uploads", history)
	}
}

// RefreshReports handles POST /api/v1/refresh: re-reads every report file
// from the configured data directory.
func (h *Handlers) RefreshReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := h.deps.Services.Ingest.RefreshFromDataDir(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Refresh failed", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Reports refreshed", resp)
	}
}

// readUploadedFile extracts the report content from a multipart form when one
// is present, or falls back to the raw request body.
func readUploadedFile(r *http.Request, maxBytes int64) (string, []byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			return "", nil, readErr
		}
		return header.Filename, content, nil
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	return "upload.csv", content, nil
}

// handleIngestError maps service errors to appropriate HTTP responses
func handleIngestError(w http.ResponseWriter, initTime time.Time, err error) {
	var ingestErr *services.IngestError
	if errors.As(err, &ingestErr) {
		common.RespondError(w, initTime, err, ingestErr.Message, mapErrorCodeToHTTPStatus(ingestErr.Code))
		return
	}

	common.RespondError(w, initTime, err, "An unexpected error occurred", http.StatusInternalServerError)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	case constants.ErrCodeUnknownReportType:
		return http.StatusNotFound
	case constants.ErrCodeEmptyFile,
		constants.ErrCodeInvalidFileType,
		constants.ErrCodeMalformedCSV:
		return http.StatusBadRequest
	case constants.ErrCodeNoArchivedReport:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
