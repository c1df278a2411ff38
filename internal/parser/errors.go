package parser

import "fmt"

// ResolutionError reports that an injected resolver failed for one category
// (project or tag). Results for the other categories are still populated.
type ResolutionError struct {
	Category HighlightType
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s resolution failed: %v", e.Category, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
