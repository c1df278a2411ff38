package usecase

import (
	"context"
	"strings"

	"todome/internal/model"
	"todome/internal/project"
	repo "todome/internal/project/repository"
)

// Create creates a new project. The path is derived from the parent's path
// plus the lowercased name, so "Reviews" under "work" becomes "work/reviews".
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateProjectInput) (model.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Project{}, project.ErrEmptyName
	}

	path := strings.ToLower(name)
	if input.ParentID != "" {
		parent, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: sc.UserID, ID: input.ParentID})
		if err != nil {
			uc.l.Errorf(ctx, "project.Create GetOneProject(parent): %v", err)
			return model.Project{}, err
		}
		if parent.ID == "" {
			return model.Project{}, project.ErrParentMissing
		}
		path = parent.Path + "/" + path
	}

	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: sc.UserID, Path: path})
	if err != nil {
		uc.l.Errorf(ctx, "project.Create GetOneProject(path): %v", err)
		return model.Project{}, err
	}
	if existing.ID != "" {
		return model.Project{}, project.ErrDuplicatePath
	}

	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		UserID:      sc.UserID,
		Name:        name,
		Path:        path,
		ParentID:    input.ParentID,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project.Create CreateProject: %v", err)
		return model.Project{}, err
	}
	return p, nil
}

// List returns all projects of the scoped user ordered by path.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Project, error) {
	projects, err := uc.repo.ListProjects(ctx, repo.ListProjectsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "project.List ListProjects: %v", err)
		return nil, err
	}
	return projects, nil
}

// Detail retrieves a single project by ID. Returns ErrNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "project.Detail GetOneProject: %v", err)
		return model.Project{}, err
	}
	if p.ID == "" {
		return model.Project{}, project.ErrNotFound
	}
	return p, nil
}

// Delete removes a project by ID. Returns ErrNotFound when missing.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "project.Delete GetOneProject: %v", err)
		return err
	}
	if p.ID == "" {
		return project.ErrNotFound
	}
	if err := uc.repo.DeleteProject(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "project.Delete DeleteProject: %v", err)
		return err
	}
	return nil
}

// Resolve looks a project up by its slash-separated path. Returns (nil, nil)
// when nothing matches, which the parser reports as an unresolved highlight.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, path string) (*model.ProjectRef, error) {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{UserID: sc.UserID, Path: path})
	if err != nil {
		uc.l.Errorf(ctx, "project.Resolve GetOneProject: %v", err)
		return nil, err
	}
	if p.ID == "" {
		return nil, nil
	}
	return &model.ProjectRef{ID: p.ID, Name: p.Name}, nil
}
