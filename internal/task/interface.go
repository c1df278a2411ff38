package task

import (
	"context"

	"todome/internal/model"
	"todome/internal/parser"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse runs the natural-language parser without creating anything.
	// commit=false is preview mode: tag resolution is lookup-only.
	Parse(ctx context.Context, sc model.Scope, input string, commit bool) (parser.Result, error)

	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	ChangeStatus(ctx context.Context, sc model.Scope, id string, status model.TaskStatus) (ChangeStatusOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteTaskOutput, error)

	// Bulk variants of complete and delete. Each ID is processed
	// independently; unknown IDs are reported, not fatal.
	BatchComplete(ctx context.Context, sc model.Scope, input BatchTasksInput) (BatchCompleteOutput, error)
	BatchDelete(ctx context.Context, sc model.Scope, input BatchTasksInput) (BatchDeleteOutput, error)

	// Date-window views over the user's pending tasks.
	Today(ctx context.Context, sc model.Scope) ([]model.Task, error)
	Upcoming(ctx context.Context, sc model.Scope, days int) ([]model.Task, error)
	Overdue(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Undo restores the snapshot behind a token returned by Update,
	// ChangeStatus or Delete. Tokens are single-use and expire.
	Undo(ctx context.Context, sc model.Scope, token string) (model.Task, error)
}
