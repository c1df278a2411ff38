package repository

import (
	"context"

	"todome/internal/model"
)

// Repository defines all data access methods for the Project entity.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
	DeleteProject(ctx context.Context, userID, id string) error
}
