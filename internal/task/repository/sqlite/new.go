package sqlite

import (
	"database/sql"

	"todome/internal/task/repository"
	"todome/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}
