package telegram

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"todome/internal/task"
	pkgResponse "todome/pkg/response"
	pkgTelegram "todome/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Parsing and creating a task is local and fast, so the message is handled
// inline and the reply sent before acknowledging the update.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	msg := update.Message

	switch msg.Text {
	case "/start", "/help":
		if err := h.bot.SendMessageWithMode(msg.Chat.ID, helpText, "Markdown"); err != nil {
			h.l.Warnf(ctx, "telegram handler: failed to send help: %v", err)
		}
		pkgResponse.OK(c, map[string]string{"status": "ok"})
		return
	}

	out, err := h.uc.Create(ctx, h.sc, task.CreateTaskInput{
		Input:                msg.Text,
		ParseNaturalLanguage: true,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create failed: %v", err)
		_ = h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Could not create the task: %v", err))
		pkgResponse.OK(c, map[string]string{"status": "failed"})
		return
	}

	if err := h.bot.SendMessageWithMode(msg.Chat.ID, confirmation(out), "Markdown"); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send confirmation: %v", err)
	}
	pkgResponse.OK(c, map[string]string{"status": "created"})
}

const helpText = "Send me a task in plain words and I will file it.\n\n" +
	"`Review proposal tomorrow at 3pm #work @urgent p1`\n\n" +
	"I understand due dates, `#project` paths, `@tags`, `p0`..`p4` priorities and `every ...` recurrences."

// confirmation renders the created task as a Markdown reply.
func confirmation(out task.CreateTaskOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Created *%s*", out.Task.Title)
	if out.Task.DueDate != nil {
		fmt.Fprintf(&b, "\nDue: %s", out.Task.DueDate.Format("2006-01-02"))
		if out.Task.DueTime != "" {
			fmt.Fprintf(&b, " at %s", out.Task.DueTime)
		}
	}
	if out.Parse != nil {
		if len(out.Parse.Tags) > 0 {
			names := make([]string, 0, len(out.Parse.Tags))
			for _, t := range out.Parse.Tags {
				names = append(names, "@"+t.Name)
			}
			fmt.Fprintf(&b, "\nTags: %s", strings.Join(names, " "))
		}
		if out.Parse.Project != nil {
			fmt.Fprintf(&b, "\nProject: %s", out.Parse.Project.Name)
		}
		if out.Parse.Recurrence != nil {
			fmt.Fprintf(&b, "\nRepeats: %s", out.Parse.Recurrence.Text)
		}
		for _, w := range out.Parse.Warnings {
			fmt.Fprintf(&b, "\n⚠ %s", w)
		}
	}
	return b.String()
}
