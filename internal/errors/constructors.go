package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *CatalogError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *CatalogError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

// Pipeline errors

func ValidationFailed(path, reason string) *CatalogError {
	return New(CategoryValidation, SeverityWarning, "instruction file failed validation").
		WithContext("path", path).
		WithContext("reason", reason)
}

func IndexingSkipped(path, reason string) *CatalogError {
	return New(CategoryIndexing, SeverityWarning, "instruction file skipped during indexing").
		WithContext("path", path).
		WithContext("reason", reason)
}

// Environment errors (the only fatal class in the core pipeline)

func OutputSetupError(dir string, cause error) *CatalogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output directory setup failed").
		WithContext("directory", dir)
}

func StageWriteError(path string, cause error) *CatalogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "staging write failed").
		WithContext("path", path)
}

func RenderError(page string, cause error) *CatalogError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("page", page)
}

func HistoryError(operation string, cause error) *CatalogError {
	return Wrap(cause, CategoryHistory, SeverityError, "history store operation failed").
		WithContext("operation", operation)
}
