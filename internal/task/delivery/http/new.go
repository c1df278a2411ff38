package http

import (
	"todome/internal/model"
	"todome/internal/task"
	"todome/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
	sc model.Scope
}

// New creates a new HTTP handler for the task domain. The scope pins every
// request to the configured single user.
func New(l log.Logger, uc task.UseCase, sc model.Scope) *handler {
	return &handler{
		l:  l,
		uc: uc,
		sc: sc,
	}
}
