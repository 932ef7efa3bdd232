package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// Document is an instruction file's parsed contents: an arbitrary
// key/value mapping. Documents are created fresh per build run and never
// mutated.
type Document map[string]any

// Loader reads instruction files into Documents.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a Loader. A nil logger falls back to slog.Default.
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// Load reads and parses a single YAML file. On any read or parse failure
// it logs the cause and returns an empty Document; errors never propagate
// past this boundary. Downstream validation treats an empty document as
// invalid, so a broken file costs one catalog entry, not the batch.
func (l *Loader) Load(path string) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Error("Failed to read instruction file", logfields.Path(path), logfields.Error(err))
		return Document{}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		l.log.Error("Failed to parse instruction file", logfields.Path(path), logfields.Error(err))
		return Document{}
	}
	if doc == nil {
		doc = Document{}
	}
	return doc
}

// stringField returns the document value for key rendered as a string,
// or fallback when the key is absent or nil. Non-string scalars (a bare
// `version: 123`) are formatted rather than rejected, mirroring the
// permissive validation policy.
func (d Document) stringField(key, fallback string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
