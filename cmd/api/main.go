package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todome/config"
	_ "todome/docs" // Swagger docs
	"todome/internal/httpserver"
	"todome/internal/model"
	"todome/pkg/datemath"
	"todome/pkg/log"
	"todome/pkg/sqlite"
	"todome/pkg/telegram"
)

// @title       todome API
// @description Natural-language task quick-add: dates, #projects, @tags, priorities and recurrences parsed as you type.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todome...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	cal, err := datemath.New(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		cal, _ = datemath.New("UTC")
	}

	// 4. Storage
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open sqlite at %s: %v", cfg.SQLite.Path, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 5. Optional Telegram quick-add
	var bot *telegram.Bot
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Calendar:    cal,
		Scope:       model.Scope{UserID: cfg.Parser.UserID},
		AppConfig:   cfg,
		TelegramBot: bot,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
