package usecase

import (
	"context"
	"errors"

	"todome/internal/model"
	"todome/internal/task"
)

// BatchComplete completes every task in the input. Recurring tasks roll
// forward exactly as they do for a single complete. IDs that don't resolve
// are collected in Failed; storage errors abort the batch.
func (uc *implUseCase) BatchComplete(ctx context.Context, sc model.Scope, input task.BatchTasksInput) (task.BatchCompleteOutput, error) {
	var out task.BatchCompleteOutput
	for _, id := range input.IDs {
		res, err := uc.ChangeStatus(ctx, sc, id, model.TaskStatusCompleted)
		if err != nil {
			if errors.Is(err, task.ErrNotFound) {
				out.Failed = append(out.Failed, id)
				continue
			}
			return task.BatchCompleteOutput{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

// BatchDelete deletes every task in the input, returning one undo token per
// deleted task. IDs that don't resolve are collected in Failed.
func (uc *implUseCase) BatchDelete(ctx context.Context, sc model.Scope, input task.BatchTasksInput) (task.BatchDeleteOutput, error) {
	var out task.BatchDeleteOutput
	for _, id := range input.IDs {
		res, err := uc.Delete(ctx, sc, id)
		if err != nil {
			if errors.Is(err, task.ErrNotFound) {
				out.Failed = append(out.Failed, id)
				continue
			}
			return task.BatchDeleteOutput{}, err
		}
		out.Deleted = append(out.Deleted, id)
		out.UndoTokens = append(out.UndoTokens, res.UndoToken)
	}
	return out, nil
}
