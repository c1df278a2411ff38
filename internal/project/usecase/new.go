package usecase

import (
	"todome/internal/project/repository"
	"todome/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new project UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
