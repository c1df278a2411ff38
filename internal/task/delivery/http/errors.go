package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todome/internal/parser"
	"todome/internal/task"
	"todome/pkg/response"
)

// mapError translates domain errors into HTTP responses. Resolver failures
// surface as 502 so a flaky lookup is distinguishable from bad input.
func (h *handler) mapError(c *gin.Context, err error) {
	var resErr *parser.ResolutionError
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrUndoExpired):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrProjectMissing):
		response.Error(c, err, nil)
	case errors.As(err, &resErr):
		c.JSON(502, response.Resp{ErrorCode: 502, Message: resErr.Error()})
	default:
		response.InternalError(c, err)
	}
}
