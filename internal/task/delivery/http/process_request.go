package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"todome/internal/model"
	"todome/internal/task"
)

// --- Request DTOs ---

type parseReq struct {
	Input  string `json:"input" binding:"required"`
	Commit bool   `json:"commit"`
}

type createReq struct {
	Input                string `json:"input_text"`
	ParseNaturalLanguage bool   `json:"parse_natural_language"`

	Title       string   `json:"title"`
	Description string   `json:"description" binding:"max=2000"`
	Priority    int      `json:"priority"`
	DueDate     string   `json:"due_date"` // YYYY-MM-DD
	DueTime     string   `json:"due_time"` // HH:MM
	ProjectID   string   `json:"project_id"`
	TagIDs      []string `json:"tag_ids"`
	Recurrence  string   `json:"recurrence"`
}

func (r createReq) toInput() (task.CreateTaskInput, error) {
	input := task.CreateTaskInput{
		Input:                r.Input,
		ParseNaturalLanguage: r.ParseNaturalLanguage,
		Title:                r.Title,
		Description:          r.Description,
		Priority:             r.Priority,
		DueTime:              r.DueTime,
		ProjectID:            r.ProjectID,
		TagIDs:               r.TagIDs,
		Recurrence:           r.Recurrence,
	}
	if r.DueDate != "" {
		d, err := time.Parse("2006-01-02", r.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = &d
	}
	return input, nil
}

type updateReq struct {
	ID string `json:"-"`

	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Priority     *int     `json:"priority"`
	DueDate      *string  `json:"due_date"`
	ClearDueDate bool     `json:"clear_due_date"`
	DueTime      *string  `json:"due_time"`
	ProjectID    *string  `json:"project_id"`
	TagIDs       []string `json:"tag_ids"`
	Recurrence   *string  `json:"recurrence"`
}

func (r updateReq) toInput() (task.UpdateTaskInput, error) {
	input := task.UpdateTaskInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
		ClearDueDate: r.ClearDueDate,
		DueTime:      r.DueTime,
		ProjectID:    r.ProjectID,
		TagIDs:       r.TagIDs,
		Recurrence:   r.Recurrence,
	}
	if r.DueDate != nil && *r.DueDate != "" {
		d, err := time.Parse("2006-01-02", *r.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = &d
	}
	return input, nil
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

type batchReq struct {
	TaskIDs []string `json:"task_ids" binding:"required,min=1"`
}

type listReq struct {
	Status      string `form:"status"`
	PriorityMin int    `form:"priority_min"`
	PriorityMax int    `form:"priority_max"`
	ProjectID   string `form:"project_id"`
	TagID       string `form:"tag_id"`
	Search      string `form:"search"`
	DueFrom     string `form:"due_from"` // YYYY-MM-DD
	DueTo       string `form:"due_to"`   // YYYY-MM-DD
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

func (r listReq) toInput() (task.ListTasksInput, error) {
	input := task.ListTasksInput{
		Status:      model.TaskStatus(r.Status),
		PriorityMin: r.PriorityMin,
		PriorityMax: r.PriorityMax,
		ProjectID:   r.ProjectID,
		TagID:       r.TagID,
		Search:      r.Search,
		Page:        r.Page,
		Limit:       r.Limit,
	}
	if r.DueFrom != "" {
		d, err := time.Parse("2006-01-02", r.DueFrom)
		if err != nil {
			return input, err
		}
		input.DueFrom = &d
	}
	if r.DueTo != "" {
		d, err := time.Parse("2006-01-02", r.DueTo)
		if err != nil {
			return input, err
		}
		end := d.Add(24*time.Hour - time.Second)
		input.DueTo = &end
	}
	return input, nil
}

// --- binders ---

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
