package repository

import "errors"

// Coarse repository errors; details go to the log, not the caller.
var (
	ErrFailedToInsert = errors.New("failed to insert tag")
	ErrFailedToGet    = errors.New("failed to get tag")
	ErrFailedToList   = errors.New("failed to list tags")
	ErrFailedToDelete = errors.New("failed to delete tag")
)
