package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportFileName is the report's location inside the output directory.
const ReportFileName = "build-report.json"

// BuildReport is a complete record of one catalog build: what was found,
// what failed validation, and how each stage finished.
type BuildReport struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Status    string        `json:"status"`
	Duration  int64         `json:"duration_ms"`
	Inputs    Inputs        `json:"inputs"`
	Outputs   Outputs       `json:"outputs"`
	Failures  []Failure     `json:"failures,omitempty"`
	Stages    []StageResult `json:"stages"`
}

// Inputs captures what the build read.
type Inputs struct {
	InstructionDir string `json:"instruction_dir"`
	SchemaDir      string `json:"schema_dir"`
	FilesFound     int    `json:"files_found"`
}

// Outputs captures what the build produced.
type Outputs struct {
	DistDir        string `json:"dist_dir"`
	EntriesIndexed int    `json:"entries_indexed"`
	Categories     int    `json:"categories"`
}

// Failure records one instruction file that was left out of the index.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// StageResult records the outcome of one build stage.
type StageResult struct {
	Stage    string `json:"stage"`
	Result   string `json:"result"`
	Duration int64  `json:"duration_ms"`
	Detail   string `json:"detail,omitempty"`
}

// New creates a report with a fresh run id and the given start time.
func New(started time.Time) *BuildReport {
	return &BuildReport{
		ID:        uuid.NewString(),
		Timestamp: started.UTC(),
	}
}

// AddStage appends a stage outcome to the report.
func (r *BuildReport) AddStage(stage, result string, d time.Duration, detail string) {
	r.Stages = append(r.Stages, StageResult{
		Stage:    stage,
		Result:   result,
		Duration: d.Milliseconds(),
		Detail:   detail,
	})
}

// ToJSON serializes the report to JSON.
func (r *BuildReport) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a report from JSON.
func FromJSON(data []byte) (*BuildReport, error) {
	var r BuildReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}
