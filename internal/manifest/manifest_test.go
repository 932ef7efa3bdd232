package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	started := time.Date(2026, 3, 14, 8, 26, 53, 0, time.FixedZone("CET", 3600))
	r := New(started)

	require.NotEmpty(t, r.ID)
	require.Equal(t, time.UTC, r.Timestamp.Location())
	require.Equal(t, "2026-03-14T07:26:53Z", r.Timestamp.Format(time.RFC3339))

	other := New(started)
	require.NotEqual(t, r.ID, other.ID)
}

func TestReportRoundTrip(t *testing.T) {
	r := New(time.Now())
	r.Status = "success"
	r.Duration = 42
	r.Inputs = Inputs{InstructionDir: "project_types", SchemaDir: "schemas", FilesFound: 3}
	r.Outputs = Outputs{DistDir: "dist", EntriesIndexed: 2, Categories: 1}
	r.Failures = append(r.Failures, Failure{Path: "project_types/web/bad.yaml", Reason: "missing version"})
	r.AddStage("discover", "success", 5*time.Millisecond, "")
	r.AddStage("validate", "warning", 3*time.Millisecond, "1 file failed")

	data, err := r.ToJSON()
	require.NoError(t, err)

	got, err := FromJSON(data)
	require.NoError(t, err)
	require.Equal(t, r.ID, got.ID)
	require.Len(t, got.Stages, 2)
	require.Equal(t, "validate", got.Stages[1].Stage)
	require.Equal(t, int64(3), got.Stages[1].Duration)
	require.Equal(t, "1 file failed", got.Stages[1].Detail)
	require.Equal(t, r.Failures, got.Failures)
}

func TestToJSONIndentation(t *testing.T) {
	r := New(time.Now())
	data, err := r.ToJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"id\":")
}
