package http

import (
	"github.com/gin-gonic/gin"

	"todome/internal/model"
	"todome/internal/task"
	"todome/pkg/response"
)

// Parse godoc
// @Summary     Parse a natural-language task input
// @Description Extracts due date, project, tags, priority and recurrence from a freeform string without creating a task. Set commit=true to create missing tags.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Input to parse"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Resolver failure"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Parse(ctx, h.sc, req.Input, req.Commit)
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, res)
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from explicit fields, or from input_text when parse_natural_language is true.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, h.sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated, filtered list of tasks.
// @Tags        Tasks
// @Produce     json
// @Param       status       query string false "pending or completed"
// @Param       priority_min query int    false "Minimum priority"
// @Param       priority_max query int    false "Maximum priority"
// @Param       project_id   query string false "Filter by project"
// @Param       tag_id       query string false "Filter by tag"
// @Param       search       query string false "Substring match on title/description"
// @Param       due_from     query string false "YYYY-MM-DD"
// @Param       due_to       query string false "YYYY-MM-DD"
// @Param       page         query int    false "Page number (default 1)"
// @Param       limit        query int    false "Page size (default 20)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, h.sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are left unchanged. Returns an undo token.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// ChangeStatus godoc
// @Summary     Change task status
// @Description Completing a recurring task advances its due date instead of completing it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ChangeStatus(ctx, h.sc, c.Param("id"), model.TaskStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.ChangeStatus: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newStatusResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task and returns an undo token that restores it.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Delete(ctx, h.sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, deleteResp{UndoToken: output.UndoToken})
}

// BatchComplete godoc
// @Summary     Complete multiple tasks
// @Description Completes each task independently; recurring tasks roll forward. Unknown IDs are reported in failed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Task IDs"
// @Success     200 {object} batchCompleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/batch/complete [POST]
func (h *handler) BatchComplete(c *gin.Context) {
	ctx := c.Request.Context()

	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BatchComplete(ctx, h.sc, task.BatchTasksInput{IDs: req.TaskIDs})
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchComplete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newBatchCompleteResp(output))
}

// BatchDelete godoc
// @Summary     Delete multiple tasks
// @Description Deletes each task independently and returns one undo token per deleted task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Task IDs"
// @Success     200 {object} batchDeleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/batch/delete [POST]
func (h *handler) BatchDelete(c *gin.Context) {
	ctx := c.Request.Context()

	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BatchDelete(ctx, h.sc, task.BatchTasksInput{IDs: req.TaskIDs})
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchDelete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newBatchDeleteResp(output))
}

// Today godoc
// @Summary     Tasks due today
// @Tags        Tasks
// @Produce     json
// @Success     200 {array} taskResp
// @Router      /api/v1/tasks/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Today(ctx, h.sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Upcoming godoc
// @Summary     Tasks due in the coming days
// @Tags        Tasks
// @Produce     json
// @Param       days query int false "Window size in days (default 7)"
// @Success     200 {array} taskResp
// @Router      /api/v1/tasks/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	days := 0
	if v := c.Query("days"); v != "" {
		var req struct {
			Days int `form:"days"`
		}
		if err := c.ShouldBindQuery(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
		days = req.Days
	}

	tasks, err := h.uc.Upcoming(ctx, h.sc, days)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Overdue godoc
// @Summary     Tasks past their due date
// @Tags        Tasks
// @Produce     json
// @Success     200 {array} taskResp
// @Router      /api/v1/tasks/overdue [GET]
func (h *handler) Overdue(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Overdue(ctx, h.sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overdue: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// Undo godoc
// @Summary     Undo a destructive task operation
// @Description Restores the snapshot behind a token returned by update, status change or delete. Tokens are single-use and expire.
// @Tags        Tasks
// @Produce     json
// @Param       token path string true "Undo token"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Expired or unknown token"
// @Router      /api/v1/undo/{token} [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Undo(ctx, h.sc, c.Param("token"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Undo: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}
