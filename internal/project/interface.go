package project

import (
	"context"

	"todome/internal/model"
)

// UseCase defines the business logic interface for the project domain. It
// doubles as the parser's project-resolution collaborator through Resolve.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateProjectInput) (model.Project, error)
	List(ctx context.Context, sc model.Scope) ([]model.Project, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Resolve looks a project up by its slash-separated path,
	// case-insensitively. Returns (nil, nil) when nothing matches.
	Resolve(ctx context.Context, sc model.Scope, path string) (*model.ProjectRef, error)
}
