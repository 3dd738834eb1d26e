package constants

// PipelineStatus is the canonical status for rows in processing_log.
type PipelineStatus string

// Stable values (store these exact strings in DB).
const (
	StatusStarted  PipelineStatus = "STARTED"  // run opened
	StatusProgress PipelineStatus = "PROGRESS" // intermediate stage completed
	StatusSuccess  PipelineStatus = "SUCCESS"  // terminal success
	StatusError    PipelineStatus = "ERROR"    // terminal failure
	StatusTimeout  PipelineStatus = "TIMEOUT"  // terminal failure (deadline)
	StatusWarning  PipelineStatus = "WARNING"  // non-fatal degradation (e.g. credential fallback)
)

// PipelineStatuses holds the allowed values for the status field in ProcessingLog.
var PipelineStatuses = []string{
	string(StatusStarted),
	string(StatusProgress),
	string(StatusSuccess),
	string(StatusError),
	string(StatusTimeout),
	string(StatusWarning),
}

// Terminal reports whether the status closes a pipeline run. Terminal states
// are never re-entered; a retry starts a new run with a new processing ID.
func (s PipelineStatus) Terminal() bool {
	switch s {
	case StatusSuccess, StatusError, StatusTimeout:
		return true
	}
	return false
}

// Valid reports whether s is one of the stable status values.
func (s PipelineStatus) Valid() bool {
	switch s {
	case StatusStarted, StatusProgress, StatusSuccess, StatusError, StatusTimeout, StatusWarning:
		return true
	}
	return false
}

// ParseStatus maps a wire string to a PipelineStatus.
func ParseStatus(s string) (PipelineStatus, bool) {
	ps := PipelineStatus(s)
	return ps, ps.Valid()
}

// Stage identifies one step of the import pipeline in processing_log rows.
type Stage string

const (
	StageCredentials Stage = "CREDENTIALS"
	StageUpload      Stage = "UPLOAD"
	StageOrganize    Stage = "ORGANIZE"
	StageFormat      Stage = "FORMAT"
	StagePersist     Stage = "PERSIST"
)
