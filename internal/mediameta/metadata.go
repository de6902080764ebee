package mediameta

import "time"

// Metadata is the best-effort capture record for a single candidate file.
// It is produced fresh per file and never persisted; the importer folds it
// into the archived path. Absent fields stay nil/empty rather than erroring.
type Metadata struct {
	Type        MediaType
	CaptureTime *time.Time
	CameraModel string
}
