package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"todome/internal/middleware"
	projectHTTP "todome/internal/project/delivery/http"
	projectRepo "todome/internal/project/repository/sqlite"
	projectUC "todome/internal/project/usecase"
	tagHTTP "todome/internal/tag/delivery/http"
	tagRepo "todome/internal/tag/repository/sqlite"
	tagUC "todome/internal/tag/usecase"
	"todome/internal/task"
	taskHTTP "todome/internal/task/delivery/http"
	taskRepo "todome/internal/task/repository/sqlite"
	"todome/internal/task/undo"
	taskUC "todome/internal/task/usecase"
)

// setupDomains initializes every domain and registers its routes.
//
// Pattern per domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, srv.scope)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
//
// The task use case is returned so the Telegram webhook can share it.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	// Resolver domains first: tasks depend on them.
	projects := projectUC.New(projectRepo.New(srv.db, srv.l), srv.l)
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, projects, srv.scope))

	tags := tagUC.New(tagRepo.New(srv.db, srv.l), srv.l)
	tagHTTP.RegisterRoutes(api, tagHTTP.New(srv.l, tags, srv.scope))

	undoTTL := time.Duration(srv.config.Undo.TTLSeconds) * time.Second
	if undoTTL <= 0 {
		undoTTL = 5 * time.Minute
	}
	tasks := taskUC.New(taskRepo.New(srv.db, srv.l), projects, tags, undo.NewStore(undoTTL), srv.cal, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks, srv.scope), mw)

	srv.l.Infof(ctx, "Domains registered: projects, tags, tasks")
	return tasks
}
