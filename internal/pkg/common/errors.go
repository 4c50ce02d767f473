package common

// PipelineError is the error type carried through the import pipeline.
type PipelineError struct {
	Code    string // stable error code
	Message string // operator-facing message
	Err     error  // wrapped cause
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewError creates a new pipeline error.
func NewError(code string, message string, err error) *PipelineError {
	return &PipelineError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithCause returns a copy of the error carrying a concrete cause.
func (e *PipelineError) WithCause(err error) *PipelineError {
	return &PipelineError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Error codes, one per failure class in the import taxonomy. Fetch failures
// come from the external fetch boundary; extraction and validation failures
// are produced here.
const (
	ErrCodeFetchFailed      = "FETCH_FAILED"
	ErrCodeNoStructuredData = "NO_STRUCTURED_DATA"
	ErrCodeNoRecipeSchema   = "NO_RECIPE_SCHEMA"
	ErrCodeMissingName      = "MISSING_NAME"
	ErrCodeNoIngredients    = "NO_INGREDIENTS"
	ErrCodeDuplicateSource  = "DUPLICATE_SOURCE"
	ErrCodeLibraryIO        = "LIBRARY_IO"
	ErrCodeCacheMiss        = "CACHE_MISS"
)

// Predefined errors.
var (
	ErrFetchFailed      = NewError(ErrCodeFetchFailed, "page fetch failed", nil)
	ErrNoStructuredData = NewError(ErrCodeNoStructuredData, "no JSON-LD found", nil)
	ErrNoRecipeSchema   = NewError(ErrCodeNoRecipeSchema, "no Recipe-typed schema found", nil)
	ErrMissingName      = NewError(ErrCodeMissingName, "missing name", nil)
	ErrNoIngredients    = NewError(ErrCodeNoIngredients, "empty ingredient list", nil)
	ErrDuplicateSource  = NewError(ErrCodeDuplicateSource, "recipe already imported from this URL", nil)
	ErrCacheMiss        = NewError(ErrCodeCacheMiss, "page cache miss", nil)
)
