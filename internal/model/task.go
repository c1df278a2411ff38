package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task priority bounds for the persisted entity.
// Note: the natural-language parser accepts p0..p4; the stored range is 1..5.
// The two ranges are intentionally kept apart until product decides otherwise.
const (
	TaskPriorityMin     = 1
	TaskPriorityMax     = 5
	TaskPriorityDefault = 3
)

// Task is a persisted task.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      TaskStatus
	Priority    int // 1..5
	DueDate     *time.Time
	DueTime     string // "HH:MM", empty when the due date is all-day
	ProjectID   string
	TagIDs      []string
	Recurrence  string // serialized recurrence rule, empty for one-off tasks
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Project groups tasks under a slash-separated path (e.g. "work/reviews").
type Project struct {
	ID          string
	UserID      string
	Name        string
	Path        string // full lowercase path used for lookups
	ParentID    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a user-defined label attached to tasks.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}
