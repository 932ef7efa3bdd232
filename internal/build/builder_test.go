package build

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openinstructions/catalogbuild/internal/config"
	"github.com/openinstructions/catalogbuild/internal/history"
	"github.com/openinstructions/catalogbuild/internal/manifest"
	"github.com/openinstructions/catalogbuild/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSource(t *testing.T, rel, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(rel), 0o750))
	require.NoError(t, os.WriteFile(rel, []byte(content), 0o600))
}

// seedCatalog lays out one valid instruction file, one missing its
// version, one unparsable, plus a schema file.
func seedCatalog(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	writeSource(t, "project_types/cli/tool.yaml",
		"catalog_version: \"0.1\"\nversion: \"1.0.0\"\ntitle: CLI Tool\ndescription: Build a command line tool\n")
	writeSource(t, "project_types/web/app.yaml",
		"catalog_version: \"0.1\"\ntitle: Web App\n")
	writeSource(t, "project_types/web/broken.yaml", "{{{not yaml")
	writeSource(t, "schemas/v0.1/catalog.json", "{}\n")
}

func TestRun_EndToEnd(t *testing.T) {
	seedCatalog(t)
	cfg := config.Default()

	report, err := NewBuilder(cfg, discardLogger()).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, StatusWarning, report.Status)
	require.Equal(t, 3, report.Inputs.FilesFound)
	require.Equal(t, 1, report.Outputs.EntriesIndexed)
	require.Len(t, report.Failures, 2)

	reasons := map[string]bool{}
	for _, f := range report.Failures {
		reasons[f.Reason] = true
	}
	require.Len(t, reasons, 2, "each failure mode reports its own reason")

	// Index shape
	data, err := os.ReadFile(filepath.Join("dist", "catalog.json"))
	require.NoError(t, err)
	var index struct {
		Version  string                      `json:"version"`
		Projects map[string][]map[string]any `json:"projects"`
		Updated  string                      `json:"updated_at"`
	}
	require.NoError(t, json.Unmarshal(data, &index))
	require.Equal(t, "0.1.0", index.Version)
	require.Len(t, index.Projects["cli"], 1)
	require.Equal(t, "CLI Tool", index.Projects["cli"][0]["title"])

	// Staged files: valid instruction files and schemas are copied, the
	// failed ones are not.
	require.FileExists(t, filepath.Join("dist", "project_types", "cli", "tool.yaml"))
	require.NoFileExists(t, filepath.Join("dist", "project_types", "web", "app.yaml"))
	require.NoFileExists(t, filepath.Join("dist", "project_types", "web", "broken.yaml"))
	require.FileExists(t, filepath.Join("dist", "schemas", "v0.1", "catalog.json"))
	require.FileExists(t, filepath.Join("dist", "index.html"))
	require.FileExists(t, filepath.Join("dist", "spec.html"))

	// Report lands in dist and round-trips.
	reportData, err := os.ReadFile(filepath.Join("dist", manifest.ReportFileName))
	require.NoError(t, err)
	written, err := manifest.FromJSON(reportData)
	require.NoError(t, err)
	require.Equal(t, report.ID, written.ID)

	stages := map[string]string{}
	for _, s := range report.Stages {
		stages[s.Stage] = s.Result
	}
	for _, name := range []StageName{
		StagePrepareOutput, StageDiscover, StageValidate, StageBuildIndex,
		StageWriteIndex, StageCopyContent, StageCopySchemas,
		StageRenderPages, StageVerifyPages, StageWriteReport, StageWriteMetrics,
	} {
		require.Contains(t, stages, string(name))
	}
	require.Equal(t, "warning", stages[string(StageValidate)])
	require.Equal(t, "success", stages[string(StageVerifyPages)])
}

func TestRun_EmptySourceTree(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := config.Default()

	report, err := NewBuilder(cfg, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, report.Status)
	require.Zero(t, report.Inputs.FilesFound)
	require.Zero(t, report.Outputs.EntriesIndexed)
	require.FileExists(t, filepath.Join("dist", "catalog.json"))
}

func TestRun_DeterministicTimestamp(t *testing.T) {
	seedCatalog(t)
	cfg := config.Default()
	clock := func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	}

	_, err := NewBuilder(cfg, discardLogger()).WithClock(clock).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("dist", "catalog.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"updated_at": "2026-03-14T08:26:53Z"`)
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	seedCatalog(t)
	cfg := config.Default()
	cfg.Metrics.Enabled = true

	recorder := metrics.NewPrometheusRecorder(nil)
	_, err := NewBuilder(cfg, discardLogger()).WithRecorder(recorder).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("dist", cfg.Metrics.File))
	require.NoError(t, err)
	require.Contains(t, string(data), "catalogbuild_files_discovered 3")
	require.Contains(t, string(data), "catalogbuild_files_failed 2")
}

func TestRun_RecordsHistory(t *testing.T) {
	seedCatalog(t)
	cfg := config.Default()

	store, err := history.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	report, err := NewBuilder(cfg, discardLogger()).WithHistory(store).Run(context.Background())
	require.NoError(t, err)

	runs, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, report.ID, runs[0].ID)
	require.Equal(t, StatusWarning, runs[0].Status)
	require.Equal(t, 2, runs[0].FilesFailed)
	require.Equal(t, 1, runs[0].EntriesIndexed)
}

func TestRun_FatalWhenDistBlocked(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := config.Default()
	// A regular file where the output path's parent should be makes
	// directory creation fail.
	require.NoError(t, os.WriteFile("blocker", []byte("in the way"), 0o600))
	cfg.Paths.Dist = filepath.Join("blocker", "dist")
	require.NoError(t, os.MkdirAll("project_types", 0o750))

	report, err := NewBuilder(cfg, discardLogger()).Run(context.Background())
	require.Error(t, err)
	require.Equal(t, StatusFatal, report.Status)
}

// chdir is a stand-in for testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
