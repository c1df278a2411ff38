package usecase

import (
	"context"

	"todome/internal/model"
	repo "todome/internal/task/repository"
)

const defaultUpcomingDays = 7

// Today returns pending tasks due today.
func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	now := uc.now()
	from := uc.cal.StartOfDay(now)
	to := uc.cal.EndOfDay(now)

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Status:  model.TaskStatusPending,
		DueFrom: &from,
		DueTo:   &to,
		DueOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Today ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Upcoming returns pending tasks due within the next days (tomorrow
// onwards; today's tasks live in Today).
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, days int) ([]model.Task, error) {
	if days < 1 {
		days = defaultUpcomingDays
	}
	now := uc.now()
	from := uc.cal.AddDays(now, 1)
	to := uc.cal.EndOfDay(uc.cal.AddDays(now, days))

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Status:  model.TaskStatusPending,
		DueFrom: &from,
		DueTo:   &to,
		DueOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Upcoming ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Overdue returns pending tasks whose due date has passed.
func (uc *implUseCase) Overdue(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	to := uc.cal.StartOfDay(uc.now()).Add(-1)

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Status:  model.TaskStatusPending,
		DueTo:   &to,
		DueOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Overdue ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
