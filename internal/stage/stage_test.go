package stage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openinstructions/catalogbuild/internal/catalog"
)

func TestPrepareOutput_WipesPreviousContents(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(dist, 0o750))
	stale := filepath.Join(dist, "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	s := NewStager(dist, nil)
	require.NoError(t, s.PrepareOutput())

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	info, err := os.Stat(dist)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestPrepareOutput_Idempotent(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	s := NewStager(dist, nil)

	require.NoError(t, s.PrepareOutput())
	require.NoError(t, s.PrepareOutput())
}

func TestWriteIndex_ProducesPrettyPrintedCatalogJSON(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	s := NewStager(dist, nil)
	require.NoError(t, s.PrepareOutput())

	x := catalog.NewIndexer("project_types", "0.1.0", nil).
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
	idx := x.BuildIndex([]catalog.ValidFile{{
		Path: "project_types/cli/setup.yaml",
		Doc:  catalog.Document{"catalog_version": "0.1.0", "version": "1.0.0", "title": "Setup"},
	}})

	require.NoError(t, s.WriteIndex(idx))

	data, err := os.ReadFile(filepath.Join(dist, IndexFileName))
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"version\": \"0.1.0\"")
	require.Contains(t, string(data), "\"updated_at\": \"2026-01-02T03:04:05Z\"")
}

func TestCopyFiles_PreservesRelativePaths(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)

	src := filepath.Join("project_types", "cli", "setup.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o750))
	require.NoError(t, os.WriteFile(src, []byte("version: \"1.0.0\"\n"), 0o600))

	s := NewStager("dist", nil)
	require.NoError(t, s.PrepareOutput())
	require.NoError(t, s.CopyFiles([]string{"project_types/cli/setup.yaml"}))

	copied, err := os.ReadFile(filepath.Join("dist", "project_types", "cli", "setup.yaml"))
	require.NoError(t, err)
	require.Equal(t, "version: \"1.0.0\"\n", string(copied))
}

func TestCopyFiles_MissingSource_IsFatal(t *testing.T) {
	work := t.TempDir()
	chdir(t, work)

	s := NewStager("dist", nil)
	require.NoError(t, s.PrepareOutput())

	err := s.CopyFiles([]string{"project_types/cli/gone.yaml"})
	require.Error(t, err)
}

func TestWriteFile_RejectsPathTraversal(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	s := NewStager(dist, nil)
	require.NoError(t, s.PrepareOutput())

	require.Error(t, s.WriteFile("../escape.html", []byte("x")))
	require.Error(t, s.WriteFile("/etc/escape.html", []byte("x")))
	require.Error(t, s.WriteFile("", []byte("x")))
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
