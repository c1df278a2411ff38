package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todome/internal/model"
	"todome/internal/project"
	"todome/pkg/response"
)

type createReq struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	ParentID    string `json:"parent_id"`
	Description string `json:"description" binding:"max=1000"`
}

type projectResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:          p.ID,
		Name:        p.Name,
		Path:        p.Path,
		ParentID:    p.ParentID,
		Description: p.Description,
	}
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, project.ErrDuplicatePath):
		response.Conflict(c, err)
	case errors.Is(err, project.ErrEmptyName), errors.Is(err, project.ErrParentMissing):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// Create godoc
// @Summary     Create a project
// @Description Creates a project; nesting under parent_id builds the slash-separated path used by #references.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     200 {object} projectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Path already exists"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.Create(ctx, h.sc, project.CreateProjectInput{
		Name:        req.Name,
		ParentID:    req.ParentID,
		Description: req.Description,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newProjectResp(p))
}

// List godoc
// @Summary     List projects
// @Tags        Projects
// @Produce     json
// @Success     200 {array} projectResp
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.List(ctx, h.sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	resp := make([]projectResp, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, newProjectResp(p))
	}
	response.OK(c, resp)
}

// Detail godoc
// @Summary     Get project detail
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} projectResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Detail(ctx, h.sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newProjectResp(p))
}

// Delete godoc
// @Summary     Delete a project
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, h.sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
		projects.DELETE("/:id", h.Delete)
	}
}
