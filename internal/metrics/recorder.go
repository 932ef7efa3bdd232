package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for build and stage metrics.
// Implementations may forward to Prometheus, OpenTelemetry, etc. All
// methods must be safe on the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	SetFilesDiscovered(n int)
	SetFilesValid(n int)
	SetFilesFailed(n int)
	SetEntriesIndexed(n int)
	SetLastBuildTimestamp(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) SetFilesDiscovered(int)                     {}
func (NoopRecorder) SetFilesValid(int)                          {}
func (NoopRecorder) SetFilesFailed(int)                         {}
func (NoopRecorder) SetEntriesIndexed(int)                      {}
func (NoopRecorder) SetLastBuildTimestamp(time.Time)            {}
