package gorm

import "time"

// ReportFile archives the raw content of an ingested report so the
// engine can be rebuilt from the database on startup or refresh.
type ReportFile struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportType   string    `gorm:"column:report_type;type:varchar(20);not null;index"`
	Filename     string    `gorm:"column:filename;type:text;not null"`
	ReportDate   string    `gorm:"column:report_date;type:varchar(10)"`
	RowsAccepted int       `gorm:"column:rows_accepted;not null;default:0"`
	RowsSkipped  int       `gorm:"column:rows_skipped;not null;default:0"`
	Content      []byte    `gorm:"column:content;type:bytea;not null"`
	IngestedAt   time.Time `gorm:"column:ingested_at;autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (ReportFile) TableName() string {
	return "report_files"
}
