package constants

// Error codes for ingestion and snapshot failures
const (
	ErrCodeUnknownReportType = "UNKNOWN_REPORT_TYPE"
	ErrCodeEmptyFile         = "EMPTY_FILE"
	ErrCodeInvalidFileType   = "INVALID_FILE_TYPE"
	ErrCodeMalformedCSV      = "MALFORMED_CSV"
	ErrCodeArchiveFailed     = "ARCHIVE_FAILED"
	ErrCodeNoArchivedReport  = "NO_ARCHIVED_REPORT"
)

var errorMessages = map[string]string{
	ErrCodeUnknownReportType: "Unknown report type. Expected one of: dayrep, sacutil, rolcrtot, schedule.",
	ErrCodeEmptyFile:         "The uploaded file is empty.",
	ErrCodeInvalidFileType:   "Invalid file type. Only CSV files are accepted.",
	ErrCodeMalformedCSV:      "The file could not be read as delimited text.",
	ErrCodeArchiveFailed:     "The report was ingested but could not be archived.",
	ErrCodeNoArchivedReport:  "No archived report of this type is available to refresh from.",
}

// GetErrorMessage returns the user-facing message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred."
}
