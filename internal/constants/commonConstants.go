package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "ERROR"
)

type CachePrefix string

const (
	CachePrefixSnapshot CachePrefix = "snapshot:"
	CachePrefixUploads  CachePrefix = "uploads:recent"
)

// ReportType names the four operational report exports the engine ingests.
type ReportType string

const (
	ReportTypeDayrep   ReportType = "dayrep"   // daily flight legs
	ReportTypeSacutil  ReportType = "sacutil"  // aircraft utilization summary
	ReportTypeRolcrtot ReportType = "rolcrtot" // rolling crew duty-hour totals
	ReportTypeSchedule ReportType = "schedule" // standby / sick-leave flags
)

// KnownReportTypes lists every ingestable type, in upload-form order.
var KnownReportTypes = []ReportType{
	ReportTypeDayrep,
	ReportTypeSacutil,
	ReportTypeRolcrtot,
	ReportTypeSchedule,
}

func (t ReportType) Valid() bool {
	for _, known := range KnownReportTypes {
		if t == known {
			return true
		}
	}
	return false
}
