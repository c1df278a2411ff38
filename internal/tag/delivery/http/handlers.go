package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todome/internal/model"
	"todome/internal/tag"
	"todome/pkg/response"
)

type createReq struct {
	Name  string `json:"name" binding:"required,min=1,max=64"`
	Color string `json:"color" binding:"max=16"`
}

type tagResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func newTagResp(t model.Tag) tagResp {
	return tagResp{ID: t.ID, Name: t.Name, Color: t.Color}
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tag.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, tag.ErrDuplicateName):
		response.Conflict(c, err)
	case errors.Is(err, tag.ErrEmptyName):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// Create godoc
// @Summary     Create a tag
// @Tags        Tags
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Tag data"
// @Success     200 {object} tagResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Name already exists"
// @Router      /api/v1/tags [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Create(ctx, h.sc, tag.CreateTagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTagResp(t))
}

// List godoc
// @Summary     List tags
// @Tags        Tags
// @Produce     json
// @Success     200 {array} tagResp
// @Router      /api/v1/tags [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tags, err := h.uc.List(ctx, h.sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	resp := make([]tagResp, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, newTagResp(t))
	}
	response.OK(c, resp)
}

// Delete godoc
// @Summary     Delete a tag
// @Tags        Tags
// @Produce     json
// @Param       id path string true "Tag ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tags/{id} [DELETE]
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
	tags := rg.Group("/tags")
	{
		tags.POST("", h.Create)
		tags.GET("", h.List)
		tags.DELETE("/:id", h.Delete)
	}
}
