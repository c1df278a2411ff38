package repository

import "errors"

// Coarse repository errors; details go to the log, not the caller.
var (
	ErrFailedToInsert = errors.New("failed to insert project")
	ErrFailedToGet    = errors.New("failed to get project")
	ErrFailedToList   = errors.New("failed to list projects")
	ErrFailedToDelete = errors.New("failed to delete project")
)
