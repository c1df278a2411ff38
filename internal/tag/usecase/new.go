package usecase

import (
	"todome/internal/tag/repository"
	"todome/pkg/log"
)

// implUseCase is the private implementation of tag.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new tag UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
