package domain

// VertexStatus is the outcome of one recorded unit of work.
type VertexStatus string

const (
	// VertexStatusRunning indicates the work is still in progress.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates at least one target was rebuilt.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the rebuild stopped with an error.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the target was already up to date.
	VertexStatusCached VertexStatus = "cached"
)

// IsTerminal reports whether the status is final.
func (s VertexStatus) IsTerminal() bool {
	return s != VertexStatusRunning
}

// RebuildStatus classifies the outcome of a Rebuild call.
func RebuildStatus(events []BuildEvent, err error) VertexStatus {
	switch {
	case err != nil:
		return VertexStatusFailed
	case len(events) == 0:
		return VertexStatusCached
	default:
		return VertexStatusCompleted
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
