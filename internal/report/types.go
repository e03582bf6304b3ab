package report

// WriteResult confirms a persisted report.
type WriteResult struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// FileInfo describes one generated report on disk.
type FileInfo struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// StatusWritten is the status tag of a successful write.
const StatusWritten = "written"

// MaxSlugLength bounds the slugified title used in filenames.
const MaxSlugLength = 80

// TimestampFormat is the second-precision UTC stamp embedded in filenames.
const TimestampFormat = "20060102T150405Z"
