package constants

const (
	GetRecentUploads = `
	SELECT report_type, filename, rows_accepted, rows_skipped, ingested_at
	FROM report_files
	ORDER BY ingested_at DESC
	LIMIT $1
	`

	CountUploadsByType = `
	SELECT report_type, COUNT(*) AS uploads
	FROM report_files
	GROUP BY report_type
	`
)
