package http

import (
	"todome/internal/model"
	"todome/internal/tag"
	"todome/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tag.UseCase
	sc model.Scope
}

// New creates a new HTTP handler for the tag domain.
func New(l log.Logger, uc tag.UseCase, sc model.Scope) *handler {
	return &handler{
		l:  l,
		uc: uc,
		sc: sc,
	}
}
