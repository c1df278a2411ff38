package repository

import (
	"time"

	"todome/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Priority    int
	DueDate     *time.Time
	DueTime     string
	ProjectID   string
	TagIDs      []string
	Recurrence  string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	UserID string
	ID     string
}

// ListTasksOptions holds filter and pagination parameters for listing
// tasks. Zero values are skipped; DueFrom/DueTo bound due_date inclusively.
type ListTasksOptions struct {
	UserID      string
	Status      model.TaskStatus
	PriorityMin int
	PriorityMax int
	ProjectID   string
	TagID       string
	Search      string
	DueFrom     *time.Time
	DueTo       *time.Time
	DueOnly     bool // restrict to tasks that have a due date
	Offset      int
	Limit       int
}
