package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & domain
	SQLite SQLiteConfig
	Parser ParserConfig
	Undo   UndoConfig

	// Optional quick-add channel
	Telegram TelegramConfig

	// Abuse protection on the parse endpoints
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

// ParserConfig drives the natural-language parser. UserID scopes all
// resolution; the service is deliberately single-user.
type ParserConfig struct {
	Timezone string
	UserID   string
}

type UndoConfig struct {
	TTLSeconds int
}

type TelegramConfig struct {
	Enabled    bool
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	PerMin int
	Burst  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/todome/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/todome/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage & domain
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if dbPath := viper.GetString("todome_db"); dbPath != "" {
		cfg.SQLite.Path = dbPath
	}
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.UserID = viper.GetString("parser.user_id")
	cfg.Undo.TTLSeconds = viper.GetInt("undo.ttl_seconds")

	// Telegram quick-add
	cfg.Telegram.Enabled = viper.GetBool("telegram.enabled")
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "todome.db")
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.user_id", "default")
	viper.SetDefault("undo.ttl_seconds", 300)
	viper.SetDefault("telegram.enabled", false)
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.burst", 30)
}
