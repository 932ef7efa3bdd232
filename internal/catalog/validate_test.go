package catalog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck_BothRequiredFields_Passes(t *testing.T) {
	v := NewValidator(NewLoader(nil), nil)

	ok, reason := v.Check(Document{"catalog_version": "0.1.0", "version": "1.0.0"})
	require.True(t, ok)
	require.Empty(t, reason)
}

func TestCheck_WrongTypeForVersion_StillPasses(t *testing.T) {
	// Presence-of-key only: no type checking by design.
	v := NewValidator(NewLoader(nil), nil)

	ok, _ := v.Check(Document{"catalog_version": "0.1.0", "version": 123})
	require.True(t, ok)
}

func TestCheck_FailureModes_DistinctReasons(t *testing.T) {
	v := NewValidator(NewLoader(nil), nil)

	tests := []struct {
		name   string
		doc    Document
		reason string
	}{
		{"empty document", Document{}, ReasonEmptyDocument},
		{"nil document", nil, ReasonEmptyDocument},
		{"missing catalog_version", Document{"version": "1.0.0"}, ReasonMissingCatalogVersion},
		{"missing version", Document{"catalog_version": "0.1.0"}, ReasonMissingVersion},
		{"missing both reports catalog_version first", Document{"title": "x"}, ReasonMissingCatalogVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := v.Check(tc.doc)
			require.False(t, ok)
			require.Equal(t, tc.reason, reason)
		})
	}
}

func TestValidateFiles_SplitsValidAndFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "project_types/cli/setup.yaml",
		"catalog_version: \"0.1.0\"\nversion: \"1.0.0\"\ntitle: Setup\n")
	noVersion := writeFile(t, dir, "project_types/cli/partial.yaml",
		"catalog_version: \"0.1.0\"\ntitle: Partial\n")
	broken := writeFile(t, dir, "project_types/cli/broken.yaml",
		"title: [unclosed\n")

	var logs bytes.Buffer
	log := testLogger(&logs)
	v := NewValidator(NewLoader(log), log)

	valid, failures := v.ValidateFiles([]string{good, noVersion, broken})

	require.Len(t, valid, 1)
	require.Equal(t, good, valid[0].Path)
	require.Equal(t, "Setup", valid[0].Doc["title"])

	require.Len(t, failures, 2)
	require.Equal(t, Failure{Path: noVersion, Reason: ReasonMissingVersion}, failures[0])
	require.Equal(t, Failure{Path: broken, Reason: ReasonEmptyDocument}, failures[1])

	// Operators must be able to distinguish causes from build logs.
	require.Contains(t, logs.String(), ReasonMissingVersion)
	require.Contains(t, logs.String(), ReasonEmptyDocument)
}

func TestValidateFiles_AllValid_NoWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "project_types/cli/setup.yaml",
		"catalog_version: \"0.1.0\"\nversion: \"1.0.0\"\n")

	var logs bytes.Buffer
	log := testLogger(&logs)
	v := NewValidator(NewLoader(log), log)

	valid, failures := v.ValidateFiles([]string{path})

	require.Len(t, valid, 1)
	require.Empty(t, failures)
	require.NotContains(t, logs.String(), "failed validation")
}
