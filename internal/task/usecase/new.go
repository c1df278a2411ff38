package usecase

import (
	"time"

	"todome/internal/project"
	"todome/internal/tag"
	"todome/internal/task/repository"
	"todome/internal/task/undo"
	"todome/pkg/datemath"
	"todome/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	projects project.UseCase
	tags     tag.UseCase
	undo     *undo.Store
	cal      *datemath.Calendar
	l        log.Logger
	now      func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, projects project.UseCase, tags tag.UseCase,
	undoStore *undo.Store, cal *datemath.Calendar, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		projects: projects,
		tags:     tags,
		undo:     undoStore,
		cal:      cal,
		l:        l,
		now:      time.Now,
	}
}

// WithClock overrides the reference clock. Test use only.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
