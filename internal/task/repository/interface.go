package repository

import (
	"context"

	"todome/internal/model"
)

// Repository defines all data access methods for the Task entity. Tag
// associations (task_tags) are maintained by the implementation; every
// returned Task has TagIDs populated.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error

	// RestoreTask writes a full snapshot back, re-inserting the row when it
	// no longer exists. Used by undo.
	RestoreTask(ctx context.Context, t model.Task) (model.Task, error)
}
