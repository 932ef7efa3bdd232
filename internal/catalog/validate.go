package catalog

import (
	"log/slog"

	"github.com/openinstructions/catalogbuild/internal/logfields"
)

// Required instruction file fields. Presence is all that is checked.
const (
	FieldCatalogVersion = "catalog_version"
	FieldVersion        = "version"
)

// Failure reasons reported for excluded files. These are stable strings:
// operators grep build logs for them.
const (
	ReasonEmptyDocument         = "empty or unparsable document"
	ReasonMissingCatalogVersion = "missing catalog_version"
	ReasonMissingVersion        = "missing version"
)

// ValidFile pairs an instruction file path with its already-parsed
// document, so the indexer never has to re-read the file.
type ValidFile struct {
	Path string
	Doc  Document
}

// Failure records why one file was excluded from the catalog.
type Failure struct {
	Path   string
	Reason string
}

// Validator checks parsed documents for the mandatory catalog fields.
type Validator struct {
	loader *Loader
	log    *slog.Logger
}

// NewValidator creates a Validator that loads files through loader.
// A nil logger falls back to slog.Default.
func NewValidator(loader *Loader, log *slog.Logger) *Validator {
	if log == nil {
		log = slog.Default()
	}
	return &Validator{loader: loader, log: log}
}

// Check inspects a parsed document and returns whether it is valid, with
// the failure reason when it is not. A document is valid only if it is
// non-empty and contains both required keys. No type checking happens
// here: `version: 123` passes.
func (v *Validator) Check(doc Document) (bool, string) {
	if len(doc) == 0 {
		return false, ReasonEmptyDocument
	}
	if _, ok := doc[FieldCatalogVersion]; !ok {
		return false, ReasonMissingCatalogVersion
	}
	if _, ok := doc[FieldVersion]; !ok {
		return false, ReasonMissingVersion
	}
	return true, ""
}

// ValidateFiles loads and checks every path, returning the valid subset
// (with cached documents) and the failure reasons for the rest. It never
// returns an error: the caller decides whether partial success is
// acceptable.
func (v *Validator) ValidateFiles(paths []string) ([]ValidFile, []Failure) {
	valid := make([]ValidFile, 0, len(paths))
	var failures []Failure

	for _, path := range paths {
		doc := v.loader.Load(path)
		ok, reason := v.Check(doc)
		if !ok {
			v.log.Error("Instruction file failed validation", logfields.Path(path), logfields.Reason(reason))
			failures = append(failures, Failure{Path: path, Reason: reason})
			continue
		}
		v.log.Debug("Validated instruction file", logfields.Path(path))
		valid = append(valid, ValidFile{Path: path, Doc: doc})
	}

	if len(failures) > 0 {
		v.log.Warn("Some instruction files failed validation",
			slog.Int("failed", len(failures)),
			slog.Int("total", len(paths)))
	}
	return valid, failures
}
