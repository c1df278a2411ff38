package middleware

import (
	"todome/config"
	"todome/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l      log.Logger
	config *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
