package project

import "errors"

// Domain-specific errors for the project package.
var (
	ErrNotFound      = errors.New("project not found")
	ErrDuplicatePath = errors.New("project path already exists")
	ErrEmptyName     = errors.New("project name is empty")
	ErrParentMissing = errors.New("parent project not found")
)
