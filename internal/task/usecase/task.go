package usecase

import (
	"context"
	"strings"
	"time"

	"todome/internal/model"
	"todome/internal/parser"
	"todome/internal/task"
	repo "todome/internal/task/repository"
	"todome/internal/task/undo"
)

const defaultPageSize = 20

// Create creates a new task, either from explicit fields or by running the
// input through the natural-language parser in commit mode.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.ParseNaturalLanguage {
		return uc.createFromInput(ctx, sc, input)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}
	priority := input.Priority
	if priority == 0 {
		priority = model.TaskPriorityDefault
	}
	if priority < model.TaskPriorityMin || priority > model.TaskPriorityMax {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}
	if input.ProjectID != "" {
		if _, err := uc.projects.Detail(ctx, sc, input.ProjectID); err != nil {
			return task.CreateTaskOutput{}, task.ErrProjectMissing
		}
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		ProjectID:   input.ProjectID,
		TagIDs:      input.TagIDs,
		Recurrence:  input.Recurrence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}
	return task.CreateTaskOutput{Task: created}, nil
}

// createFromInput parses the raw input in commit mode (missing tags are
// created) and persists a task from the parsed attributes.
func (uc *implUseCase) createFromInput(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	res, err := uc.newParser(sc).Parse(ctx, input.Input, false)
	if err != nil {
		uc.l.Errorf(ctx, "task.Create Parse: %v", err)
		return task.CreateTaskOutput{}, err
	}
	if res.Title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	// Parsed priority (0..4) is stored as-is; only its absence falls back to
	// the entity default. The two ranges are reconciled at display time.
	priority := model.TaskPriorityDefault
	if res.Priority != nil {
		priority = *res.Priority
	}

	var dueDate *time.Time
	if res.DueDate != nil {
		if d, err := time.ParseInLocation("2006-01-02", *res.DueDate, uc.cal.Location()); err == nil {
			dueDate = &d
		}
	}
	dueTime := ""
	if res.DueTime != nil {
		dueTime = *res.DueTime
	}

	projectID := ""
	if res.Project != nil {
		projectID = res.Project.ID
	}
	tagIDs := make([]string, 0, len(res.Tags))
	for _, ref := range res.Tags {
		tagIDs = append(tagIDs, ref.ID)
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       res.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     dueDate,
		DueTime:     dueTime,
		ProjectID:   projectID,
		TagIDs:      tagIDs,
		Recurrence:  encodeRule(res.Recurrence),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}
	return task.CreateTaskOutput{Task: created, Parse: &res}, nil
}

// List returns a filtered, paginated page of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:      sc.UserID,
		Status:      input.Status,
		PriorityMin: input.PriorityMin,
		PriorityMax: input.PriorityMax,
		ProjectID:   input.ProjectID,
		TagID:       input.TagID,
		Search:      input.Search,
		DueFrom:     input.DueFrom,
		DueTo:       input.DueTo,
		Offset:      (page - 1) * limit,
		Limit:       limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks, Total: total, Page: page, Limit: limit}, nil
}

// Detail retrieves a single task by ID. Returns ErrNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "task.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrNotFound
	}
	return t, nil
}

// Update applies a partial update and returns an undo token restoring the
// pre-update snapshot.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}
	snapshot := existing

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return task.UpdateTaskOutput{}, task.ErrEmptyTitle
		}
		existing.Title = title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Priority != nil {
		if *input.Priority < model.TaskPriorityMin || *input.Priority > model.TaskPriorityMax {
			return task.UpdateTaskOutput{}, task.ErrInvalidPriority
		}
		existing.Priority = *input.Priority
	}
	if input.ClearDueDate {
		existing.DueDate = nil
		existing.DueTime = ""
	} else if input.DueDate != nil {
		existing.DueDate = input.DueDate
	}
	if input.DueTime != nil {
		existing.DueTime = *input.DueTime
	}
	if input.ProjectID != nil {
		if *input.ProjectID != "" {
			if _, err := uc.projects.Detail(ctx, sc, *input.ProjectID); err != nil {
				return task.UpdateTaskOutput{}, task.ErrProjectMissing
			}
		}
		existing.ProjectID = *input.ProjectID
	}
	if input.TagIDs != nil {
		existing.TagIDs = input.TagIDs
	}
	if input.Recurrence != nil {
		existing.Recurrence = *input.Recurrence
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "task.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	token := uc.undo.Put(sc.UserID, undo.ActionUpdate, snapshot)
	return task.UpdateTaskOutput{Task: updated, UndoToken: token}, nil
}

// ChangeStatus moves a task between pending and completed. Completing a
// recurring task rolls its due date forward per the rule instead of
// completing it; past the rule's end date it completes normally.
func (uc *implUseCase) ChangeStatus(ctx context.Context, sc model.Scope, id string, status model.TaskStatus) (task.ChangeStatusOutput, error) {
	if status != model.TaskStatusPending && status != model.TaskStatusCompleted {
		return task.ChangeStatusOutput{}, task.ErrInvalidStatus
	}

	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return task.ChangeStatusOutput{}, err
	}
	snapshot := existing
	now := uc.now()

	rolledOver := false
	if status == model.TaskStatusCompleted {
		if rule := decodeRule(existing.Recurrence); rule != nil {
			base := now
			if rule.Kind != parser.RecurrenceRelative && existing.DueDate != nil {
				base = *existing.DueDate
			}
			next := uc.nextDue(rule, base)
			if !pastEnd(rule, next) {
				existing.DueDate = &next
				if rule.TimeOfDay != "" {
					existing.DueTime = rule.TimeOfDay
				}
				rolledOver = true
			}
		}
	}

	if !rolledOver {
		existing.Status = status
		if status == model.TaskStatusCompleted {
			existing.CompletedAt = &now
		} else {
			existing.CompletedAt = nil
		}
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "task.ChangeStatus UpdateTask: %v", err)
		return task.ChangeStatusOutput{}, err
	}

	token := uc.undo.Put(sc.UserID, undo.ActionStatus, snapshot)
	return task.ChangeStatusOutput{Task: updated, RolledOver: rolledOver, UndoToken: token}, nil
}

// Delete removes a task and returns an undo token restoring it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (task.DeleteTaskOutput, error) {
	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return task.DeleteTaskOutput{}, err
	}
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "task.Delete DeleteTask: %v", err)
		return task.DeleteTaskOutput{}, err
	}

	token := uc.undo.Put(sc.UserID, undo.ActionDelete, existing)
	return task.DeleteTaskOutput{UndoToken: token}, nil
}

// Undo restores the snapshot behind a token. Tokens are single-use.
func (uc *implUseCase) Undo(ctx context.Context, sc model.Scope, token string) (model.Task, error) {
	e, ok := uc.undo.Take(sc.UserID, token)
	if !ok {
		return model.Task{}, task.ErrUndoExpired
	}
	snapshot, ok := e.Snapshot.(model.Task)
	if !ok {
		return model.Task{}, task.ErrUndoExpired
	}

	restored, err := uc.repo.RestoreTask(ctx, snapshot)
	if err != nil {
		uc.l.Errorf(ctx, "task.Undo RestoreTask: %v", err)
		return model.Task{}, err
	}
	return restored, nil
}
