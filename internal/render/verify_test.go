package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dist, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dist, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dist, name), []byte(content), 0o600))
}

func TestVerifyLinks_ResolvedInternalLinks(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	writePage(t, dist, "index.html",
		`<html><body><a href="spec.html">spec</a><a href="project_types/cli/setup.yaml">yaml</a></body></html>`)
	writePage(t, dist, "spec.html", `<html></html>`)
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "project_types", "cli"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "project_types", "cli", "setup.yaml"), []byte("a: 1\n"), 0o600))

	problems, err := VerifyLinks(dist, "index.html")
	require.NoError(t, err)
	require.Empty(t, problems)
}

func TestVerifyLinks_ReportsMissingTargets(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	writePage(t, dist, "index.html",
		`<html><body><a href="missing.yaml">gone</a></body></html>`)

	problems, err := VerifyLinks(dist, "index.html")
	require.NoError(t, err)
	require.Len(t, problems, 1)
	require.Equal(t, "missing.yaml", problems[0].URL)
	require.Contains(t, problems[0].String(), "broken link")
}

func TestVerifyLinks_IgnoresExternalAndFragmentLinks(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	writePage(t, dist, "index.html",
		`<html><body>
			<a href="https://github.com/OpenInstructions/catalog">gh</a>
			<a href="#catalog">anchor</a>
			<a href="mailto:team@openinstructions.org">mail</a>
			<link href="https://fonts.googleapis.com/css2?family=Inter" rel="stylesheet">
		</body></html>`)

	problems, err := VerifyLinks(dist, "index.html")
	require.NoError(t, err)
	require.Empty(t, problems)
}

func TestVerifyLinks_FragmentOnSamePage(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	writePage(t, dist, "index.html",
		`<html><body><a href="index.html#catalog">self</a></body></html>`)

	problems, err := VerifyLinks(dist, "index.html")
	require.NoError(t, err)
	require.Empty(t, problems)
}

func TestVerifyLinks_MissingPage_ReturnsError(t *testing.T) {
	_, err := VerifyLinks(t.TempDir(), "index.html")
	require.Error(t, err)
}
