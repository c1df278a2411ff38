package http

import (
	"todome/internal/model"
	"todome/internal/parser"
	"todome/internal/task"
	"todome/pkg/response"
)

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	Priority    int                `json:"priority"`
	DueDate     *response.Date     `json:"due_date"`
	DueTime     string             `json:"due_time,omitempty"`
	ProjectID   string             `json:"project_id,omitempty"`
	TagIDs      []string           `json:"tag_ids,omitempty"`
	Recurrence  string             `json:"recurrence,omitempty"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt   response.DateTime  `json:"created_at"`
	UpdatedAt   response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    t.Priority,
		DueTime:     t.DueTime,
		ProjectID:   t.ProjectID,
		TagIDs:      t.TagIDs,
		Recurrence:  t.Recurrence,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.CompletedAt != nil {
		ts := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &ts
	}
	return resp
}

type createResp struct {
	Task  taskResp       `json:"task"`
	Parse *parser.Result `json:"parse,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task), Parse: out.Parse}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	resp := listResp{Tasks: make([]taskResp, 0, len(out.Tasks)), Total: out.Total, Page: out.Page, Limit: out.Limit}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}

func (h *handler) newTasksResp(tasks []model.Task) []taskResp {
	resp := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, newTaskResp(t))
	}
	return resp
}

type updateResp struct {
	Task      taskResp `json:"task"`
	UndoToken string   `json:"undo_token"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task), UndoToken: out.UndoToken}
}

type statusResp struct {
	Task       taskResp `json:"task"`
	RolledOver bool     `json:"rolled_over"`
	UndoToken  string   `json:"undo_token"`
}

func (h *handler) newStatusResp(out task.ChangeStatusOutput) statusResp {
	return statusResp{Task: newTaskResp(out.Task), RolledOver: out.RolledOver, UndoToken: out.UndoToken}
}

type deleteResp struct {
	UndoToken string `json:"undo_token"`
}

type batchCompleteResp struct {
	Results []statusResp `json:"results"`
	Failed  []string     `json:"failed,omitempty"`
}

func (h *handler) newBatchCompleteResp(out task.BatchCompleteOutput) batchCompleteResp {
	resp := batchCompleteResp{Results: make([]statusResp, 0, len(out.Results)), Failed: out.Failed}
	for _, r := range out.Results {
		resp.Results = append(resp.Results, h.newStatusResp(r))
	}
	return resp
}

type batchDeleteResp struct {
	Deleted    []string `json:"deleted"`
	UndoTokens []string `json:"undo_tokens"`
	Failed     []string `json:"failed,omitempty"`
}

func (h *handler) newBatchDeleteResp(out task.BatchDeleteOutput) batchDeleteResp {
	return batchDeleteResp{Deleted: out.Deleted, UndoTokens: out.UndoTokens, Failed: out.Failed}
}
