package config

import (
	"github.com/spf13/viper"
)

type SessionsBackend string

const (
	SessionsBackendMemory SessionsBackend = "memory" // Volatile, lost on restart (default)
	SessionsBackendSQLite SessionsBackend = "sqlite" // Persisted to a local sqlite database
)

type (
	Config struct {
		Telegram
		Notion
		HTTP
		Heartbeat
		Sessions
		Global
	}

	Telegram struct {
		Token string
		Debug bool
	}

	Notion struct {
		Token         string
		DatabaseID    string
		TitleProperty string // Book database property holding the title
		LinkProperty  string // Rich-text property holding the quotes-page link
		QuotesTitle   string // Title given to a newly created quotes page
		LinkText      string // Display text of the quotes-page link
		FallbackBook  string // Book title used when a user has no active book
	}

	HTTP struct {
		Port int32
		Host string
	}

	Heartbeat struct {
		Enabled  bool
		Schedule string // Cron format: "* * * * *" = every minute
	}

	Sessions struct {
		Backend SessionsBackend
		Path    string // sqlite database path, used when Backend is sqlite
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("telegram_debug", false)

	v.SetDefault("notion_title_property", DefaultTitleProperty)
	v.SetDefault("notion_link_property", DefaultLinkProperty)
	v.SetDefault("notion_quotes_title", DefaultQuotesTitle)
	v.SetDefault("notion_link_text", DefaultLinkText)
	v.SetDefault("fallback_book", DefaultFallbackBook)

	v.SetDefault("heartbeat_enabled", true)
	v.SetDefault("heartbeat_schedule", "* * * * *") // Every minute

	v.SetDefault("sessions_backend", "memory")
	v.SetDefault("sessions_path", DefaultSessionsPath)

	return &Config{
		Telegram: Telegram{
			Token: v.GetString("TELEGRAM_TOKEN"),
			Debug: v.GetBool("TELEGRAM_DEBUG"),
		},
		Notion: Notion{
			Token:         v.GetString("NOTION_TOKEN"),
			DatabaseID:    v.GetString("DATABASE_ID"),
			TitleProperty: v.GetString("NOTION_TITLE_PROPERTY"),
			LinkProperty:  v.GetString("NOTION_LINK_PROPERTY"),
			QuotesTitle:   v.GetString("NOTION_QUOTES_TITLE"),
			LinkText:      v.GetString("NOTION_LINK_TEXT"),
			FallbackBook:  v.GetString("FALLBACK_BOOK"),
		},
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Heartbeat: Heartbeat{
			Enabled:  v.GetBool("HEARTBEAT_ENABLED"),
			Schedule: v.GetString("HEARTBEAT_SCHEDULE"),
		},
		Sessions: Sessions{
			Backend: SessionsBackend(v.GetString("SESSIONS_BACKEND")),
			Path:    v.GetString("SESSIONS_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
