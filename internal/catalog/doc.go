// Package catalog implements the indexing and validation pipeline for
// instruction files.
//
// The pipeline is deliberately best-effort: one malformed or incomplete
// instruction file never aborts a build. Loading degrades to an empty
// document, validation excludes the file with a recorded reason, and the
// indexer folds whatever survived into a single versioned catalog index.
// Callers that need stricter semantics can inspect the validation report
// and decide for themselves whether partial success is acceptable.
//
// Validation is presence-of-key only (catalog_version and version). There
// is no structural or type checking; a document with a numeric version
// still passes. That permissiveness is a policy of the catalog format,
// not an oversight.
package catalog
