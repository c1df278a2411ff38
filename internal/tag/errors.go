package tag

import "errors"

// Domain-specific errors for the tag package.
var (
	ErrNotFound      = errors.New("tag not found")
	ErrDuplicateName = errors.New("tag name already exists")
	ErrEmptyName     = errors.New("tag name is empty")
)
