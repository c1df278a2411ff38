package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"todome/internal/model"
	repo "todome/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, status, priority, due_date, due_time, project_id, recurrence, completed_at, created_at, updated_at`

func scanTask(scan func(...any) error) (model.Task, error) {
	var t model.Task
	err := scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.DueTime, &t.ProjectID, &t.Recurrence, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTask inserts a new task row and its tag associations in one
// transaction.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	t := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      model.TaskStatusPending,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		ProjectID:   opt.ProjectID,
		TagIDs:      opt.TagIDs,
		Recurrence:  opt.Recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask begin: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.Priority,
		t.DueDate, t.DueTime, t.ProjectID, t.Recurrence, t.CompletedAt, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	if err := replaceTaskTags(ctx, tx, t.ID, t.TagIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask tags: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask commit: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task with its tag IDs.
// Returns a zero-value Task (ID == "") when not found, without error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ? LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, opt.UserID, opt.ID)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.GetOneTask: %v", err)
		return model.Task{}, repo.ErrFailedToGet
	}

	if t.TagIDs, err = r.tagIDs(ctx, t.ID); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.GetOneTask tags: %v", err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a filtered page of tasks plus the unpaginated total.
// Ordering: due date ascending with undated tasks last, then priority.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where := `WHERE user_id = ?`
	args := []any{opt.UserID}

	if opt.Status != "" {
		where += ` AND status = ?`
		args = append(args, opt.Status)
	}
	if opt.PriorityMin > 0 {
		where += ` AND priority >= ?`
		args = append(args, opt.PriorityMin)
	}
	if opt.PriorityMax > 0 {
		where += ` AND priority <= ?`
		args = append(args, opt.PriorityMax)
	}
	if opt.ProjectID != "" {
		where += ` AND project_id = ?`
		args = append(args, opt.ProjectID)
	}
	if opt.TagID != "" {
		where += ` AND EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = tasks.id AND tt.tag_id = ?)`
		args = append(args, opt.TagID)
	}
	if opt.Search != "" {
		where += ` AND (title LIKE ? OR description LIKE ?)`
		like := "%" + opt.Search + "%"
		args = append(args, like, like)
	}
	if opt.DueOnly {
		where += ` AND due_date IS NOT NULL`
	}
	if opt.DueFrom != nil {
		where += ` AND due_date >= ?`
		args = append(args, *opt.DueFrom)
	}
	if opt.DueTo != nil {
		where += ` AND due_date <= ?`
		args = append(args, *opt.DueTo)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks `+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks count: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	query := `SELECT ` + taskColumns + ` FROM tasks ` + where +
		` ORDER BY due_date IS NULL, due_date ASC, priority DESC, created_at ASC`
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			r.l.Errorf(ctx, "task/repository/sqlite.ListTasks scan: %v", err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks rows: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	for i := range tasks {
		if tasks[i].TagIDs, err = r.tagIDs(ctx, tasks[i].ID); err != nil {
			r.l.Errorf(ctx, "task/repository/sqlite.ListTasks tags: %v", err)
			return nil, 0, repo.ErrFailedToList
		}
	}
	return tasks, total, nil
}

// UpdateTask writes the full task state back and replaces tag associations.
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	t.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateTask begin: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const query = `
		UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
			due_date = ?, due_time = ?, project_id = ?, recurrence = ?,
			completed_at = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	_, err = tx.ExecContext(ctx, query,
		t.Title, t.Description, t.Status, t.Priority,
		t.DueDate, t.DueTime, t.ProjectID, t.Recurrence,
		t.CompletedAt, t.UpdatedAt, t.UserID, t.ID)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateTask: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if err := replaceTaskTags(ctx, tx, t.ID, t.TagIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateTask tags: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateTask commit: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task row and its tag associations.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteTask begin: %v", err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, id); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteTask tags: %v", err)
		return repo.ErrFailedToDelete
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteTask commit: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// RestoreTask upserts a full snapshot, keeping the original ID and
// timestamps so undo is byte-faithful.
func (r *implRepository) RestoreTask(ctx context.Context, t model.Task) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.RestoreTask begin: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title, description = excluded.description,
			status = excluded.status, priority = excluded.priority,
			due_date = excluded.due_date, due_time = excluded.due_time,
			project_id = excluded.project_id, recurrence = excluded.recurrence,
			completed_at = excluded.completed_at, updated_at = excluded.updated_at`
	_, err = tx.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.Priority,
		t.DueDate, t.DueTime, t.ProjectID, t.Recurrence, t.CompletedAt, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.RestoreTask: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if err := replaceTaskTags(ctx, tx, t.ID, t.TagIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.RestoreTask tags: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.RestoreTask commit: %v", err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

func (r *implRepository) tagIDs(ctx context.Context, taskID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tag_id FROM task_tags WHERE task_id = ? ORDER BY tag_id`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func replaceTaskTags(ctx context.Context, tx *sql.Tx, taskID string, tagIDs []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, taskID); err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	query := `INSERT INTO task_tags (task_id, tag_id) VALUES ` +
		strings.TrimSuffix(strings.Repeat("(?, ?), ", len(tagIDs)), ", ")
	args := make([]any, 0, len(tagIDs)*2)
	for _, id := range tagIDs {
		args = append(args, taskID, id)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
