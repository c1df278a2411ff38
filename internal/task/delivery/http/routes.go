package http

import (
	"github.com/gin-gonic/gin"

	"todome/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. The parse
// endpoint is rate-limited since the UI calls it on every keystroke.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.POST("/undo/:token", h.Undo)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", h.List)
		tasks.GET("/today", h.Today)
		tasks.GET("/upcoming", h.Upcoming)
		tasks.GET("/overdue", h.Overdue)
		tasks.POST("/batch/complete", h.BatchComplete)
		tasks.POST("/batch/delete", h.BatchDelete)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.PATCH("/:id/status", h.ChangeStatus)
		tasks.DELETE("/:id", h.Delete)
	}
}
