package entities

import "time"

type UploadRecord struct {
	ReportType   string    `db:"report_type"`
	Filename     string    `db:"filename"`
	RowsAccepted int       `db:"rows_accepted"`
	RowsSkipped  int       `db:"rows_skipped"`
	IngestedAt   time.Time `db:"ingested_at"`
}

type UploadTypeCount struct {
	ReportType string `db:"report_type"`
	Uploads    int    `db:"uploads"`
}
