package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"todome/internal/model"
	repo "todome/internal/project/repository"
)

const projectColumns = `id, user_id, name, path, parent_id, description, created_at, updated_at`

func scanProject(row *sql.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Path, &p.ParentID, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProject inserts a new project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	now := time.Now().UTC()
	p := model.Project{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Name:        opt.Name,
		Path:        strings.ToLower(opt.Path),
		ParentID:    opt.ParentID,
		Description: opt.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Path, p.ParentID, p.Description, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/sqlite.CreateProject: %v", err)
		return model.Project{}, repo.ErrFailedToInsert
	}

	r.pathCache.Add(cacheKey(p.UserID, p.Path), p)
	return p, nil
}

// GetOneProject retrieves a single project by the provided filters.
// Returns a zero-value Project (ID == "") when not found, without error.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (model.Project, error) {
	if opt.Path != "" && opt.ID == "" {
		if p, ok := r.pathCache.Get(cacheKey(opt.UserID, opt.Path)); ok {
			return p, nil
		}
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.ID != "" {
		query += ` AND id = ?`
		args = append(args, opt.ID)
	}
	if opt.Path != "" {
		query += ` AND path = ?`
		args = append(args, strings.ToLower(opt.Path))
	}
	query += ` LIMIT 1`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "project/repository/sqlite.GetOneProject: %v", err)
		return model.Project{}, repo.ErrFailedToGet
	}

	r.pathCache.Add(cacheKey(p.UserID, p.Path), p)
	return p, nil
}

// ListProjects returns the user's projects ordered by path.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = ?`
	args := []any{opt.UserID}
	if opt.ParentID != "" {
		query += ` AND parent_id = ?`
		args = append(args, opt.ParentID)
	}
	query += ` ORDER BY path ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/sqlite.ListProjects: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Path, &p.ParentID, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "project/repository/sqlite.ListProjects scan: %v", err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "project/repository/sqlite.ListProjects rows: %v", err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}

// DeleteProject removes a project row and evicts it from the path cache.
func (r *implRepository) DeleteProject(ctx context.Context, userID, id string) error {
	p, err := r.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: userID, ID: id})
	if err != nil {
		return err
	}
	if p.ID == "" {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		r.l.Errorf(ctx, "project/repository/sqlite.DeleteProject: %v", err)
		return repo.ErrFailedToDelete
	}
	r.pathCache.Remove(cacheKey(userID, p.Path))
	return nil
}
