package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"todome/internal/model"
	repo "todome/internal/tag/repository"
)

const tagColumns = `id, user_id, name, color, created_at`

// CreateTag inserts a new tag row. Names are stored lowercased so the
// UNIQUE (user_id, name) constraint is case-insensitive.
func (r *implRepository) CreateTag(ctx context.Context, opt repo.CreateTagOptions) (model.Tag, error) {
	t := model.Tag{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Name:      strings.ToLower(opt.Name),
		Color:     opt.Color,
		CreatedAt: time.Now().UTC(),
	}

	const query = `INSERT INTO tags (` + tagColumns + `) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.UserID, t.Name, t.Color, t.CreatedAt); err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.CreateTag: %v", err)
		return model.Tag{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTag retrieves a single tag by the provided filters.
// Returns a zero-value Tag (ID == "") when not found, without error.
func (r *implRepository) GetOneTag(ctx context.Context, opt repo.GetOneTagOptions) (model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.ID != "" {
		query += ` AND id = ?`
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		query += ` AND name = ?`
		args = append(args, strings.ToLower(opt.Name))
	}
	query += ` LIMIT 1`

	var t model.Tag
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Tag{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.GetOneTag: %v", err)
		return model.Tag{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTags returns the user's tags ordered by name, optionally restricted to
// a set of IDs.
func (r *implRepository) ListTags(ctx context.Context, opt repo.ListTagsOptions) ([]model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE user_id = ?`
	args := []any{opt.UserID}
	if len(opt.IDs) > 0 {
		query += ` AND id IN (?` + strings.Repeat(", ?", len(opt.IDs)-1) + `)`
		for _, id := range opt.IDs {
			args = append(args, id)
		}
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.ListTags: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			r.l.Errorf(ctx, "tag/repository/sqlite.ListTags scan: %v", err)
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.ListTags rows: %v", err)
		return nil, repo.ErrFailedToList
	}
	return tags, nil
}

// DeleteTag removes a tag row and its task associations.
func (r *implRepository) DeleteTag(ctx context.Context, userID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_tags WHERE tag_id = ?`, id); err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.DeleteTag task_tags: %v", err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "tag/repository/sqlite.DeleteTag: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
