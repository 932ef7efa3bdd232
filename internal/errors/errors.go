// Package errors provides a lightweight structured error type (CatalogError)
// for category-based classification in the build pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a catalog build error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryIndexing   ErrorCategory = "indexing"
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryHistory  ErrorCategory = "history"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// CatalogError is a structured error with category, severity, and context.
// Per-file failures in the pipeline carry SeverityWarning; only environment
// errors (output directory setup, index write) are SeverityFatal.
type CatalogError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CatalogError
type ContextFields map[string]any

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CatalogError) WithContext(key string, value any) *CatalogError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CatalogError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CatalogError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Category == category
	}
	return false
}

// IsFatal checks whether an error should abort the whole build.
func IsFatal(err error) bool {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Severity == SeverityFatal
	}
	// Unclassified errors abort: only the pipeline's own per-file errors
	// are known to be recoverable.
	return true
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CatalogError
func GetCategory(err error) ErrorCategory {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Category
	}
	return CategoryInternal
}
