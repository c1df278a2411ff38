package task

import (
	"time"

	"todome/internal/model"
	"todome/internal/parser"
)

// CreateTaskInput is the input for task creation. When ParseNaturalLanguage
// is set, Input is run through the parser in commit mode and the parsed
// attributes take the place of the explicit fields.
type CreateTaskInput struct {
	Input                string
	ParseNaturalLanguage bool

	Title       string
	Description string
	Priority    int
	DueDate     *time.Time
	DueTime     string
	ProjectID   string
	TagIDs      []string
	Recurrence  string
}

// CreateTaskOutput carries the created task plus, for natural-language
// creation, the parse result the UI overlays on the input box.
type CreateTaskOutput struct {
	Task  model.Task
	Parse *parser.Result
}

// UpdateTaskInput is a partial update; nil pointer fields are left unchanged.
// ClearDueDate removes the due date regardless of DueDate.
type UpdateTaskInput struct {
	ID string

	Title        *string
	Description  *string
	Priority     *int
	DueDate      *time.Time
	ClearDueDate bool
	DueTime      *string
	ProjectID    *string
	TagIDs       []string // nil = unchanged, empty = clear
	Recurrence   *string
}

// UpdateTaskOutput carries the updated task and an undo token that restores
// the pre-update snapshot.
type UpdateTaskOutput struct {
	Task      model.Task
	UndoToken string
}

// ListTasksInput filters and paginates the task listing.
type ListTasksInput struct {
	Status      model.TaskStatus
	PriorityMin int
	PriorityMax int
	ProjectID   string
	TagID       string
	Search      string
	DueFrom     *time.Time
	DueTo       *time.Time
	Page        int
	Limit       int
}

// ListTasksOutput is a page of tasks plus the unpaginated total.
type ListTasksOutput struct {
	Tasks []model.Task
	Total int
	Page  int
	Limit int
}

// ChangeStatusOutput carries the task after a status change. RolledOver is
// true when completing a recurring task advanced its due date instead of
// completing it.
type ChangeStatusOutput struct {
	Task       model.Task
	RolledOver bool
	UndoToken  string
}

// DeleteTaskOutput carries the undo token that restores a deleted task.
type DeleteTaskOutput struct {
	UndoToken string
}

// BatchTasksInput selects tasks by ID for a bulk operation.
type BatchTasksInput struct {
	IDs []string
}

// BatchCompleteOutput carries the per-task results of a bulk complete.
// Unknown IDs land in Failed instead of aborting the batch.
type BatchCompleteOutput struct {
	Results []ChangeStatusOutput
	Failed  []string
}

// BatchDeleteOutput carries the deleted IDs with their undo tokens, in the
// order they were deleted. Unknown IDs land in Failed.
type BatchDeleteOutput struct {
	Deleted    []string
	UndoTokens []string
	Failed     []string
}
