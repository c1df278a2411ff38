package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound        = errors.New("task not found")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidPriority = errors.New("task priority out of range")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrProjectMissing  = errors.New("referenced project not found")
	ErrUndoExpired     = errors.New("undo token expired or already used")
)
