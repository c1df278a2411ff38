package telegram

import (
	"github.com/gin-gonic/gin"

	"todome/internal/model"
	"todome/internal/task"
	pkgLog "todome/pkg/log"
	pkgTelegram "todome/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
	sc  model.Scope
}

// New creates a new Telegram quick-add handler. Every incoming message is
// fed through the natural-language parser and created as a task.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, sc model.Scope) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
		sc:  sc,
	}
}
