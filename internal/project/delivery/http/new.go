package http

import (
	"todome/internal/model"
	"todome/internal/project"
	"todome/pkg/log"
)

type handler struct {
	l  log.Logger
	uc project.UseCase
	sc model.Scope
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase, sc model.Scope) *handler {
	return &handler{
		l:  l,
		uc: uc,
		sc: sc,
	}
}
