package sqlite

import (
	"database/sql"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"todome/internal/model"
	"todome/internal/project/repository"
	"todome/pkg/log"
)

// pathCacheSize bounds the per-process path lookup cache. Path resolution is
// the hottest call while a user types parse previews, so hits skip sqlite.
const pathCacheSize = 512

type implRepository struct {
	db        *sql.DB
	l         log.Logger
	pathCache *lru.Cache[string, model.Project]
}

// New creates a sqlite-backed Repository for the project domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("project/repository/sqlite: db is required")
	}
	cache, _ := lru.New[string, model.Project](pathCacheSize)
	return &implRepository{db: db, l: l, pathCache: cache}
}

func cacheKey(userID, path string) string {
	return userID + "|" + strings.ToLower(path)
}
