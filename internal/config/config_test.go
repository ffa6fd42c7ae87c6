package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, int32(8188), cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)

		assert.Equal(t, DefaultTitleProperty, cfg.Notion.TitleProperty)
		assert.Equal(t, DefaultLinkProperty, cfg.Notion.LinkProperty)
		assert.Equal(t, DefaultQuotesTitle, cfg.Notion.QuotesTitle)
		assert.Equal(t, DefaultLinkText, cfg.Notion.LinkText)
		assert.Equal(t, DefaultFallbackBook, cfg.Notion.FallbackBook)

		assert.Equal(t, SessionsBackendMemory, cfg.Sessions.Backend)
		assert.Equal(t, DefaultSessionsPath, cfg.Sessions.Path)

		assert.True(t, cfg.Heartbeat.Enabled)
		assert.Equal(t, "* * * * *", cfg.Heartbeat.Schedule)
	})

	t.Run("reads tokens and overrides from environment", func(t *testing.T) {
		os.Setenv("TELEGRAM_TOKEN", "tg-token")
		os.Setenv("NOTION_TOKEN", "notion-token")
		os.Setenv("DATABASE_ID", "db-123")
		os.Setenv("SESSIONS_BACKEND", "sqlite")
		os.Setenv("FALLBACK_BOOK", "Unsorted")
		defer func() {
			os.Unsetenv("TELEGRAM_TOKEN")
			os.Unsetenv("NOTION_TOKEN")
			os.Unsetenv("DATABASE_ID")
			os.Unsetenv("SESSIONS_BACKEND")
			os.Unsetenv("FALLBACK_BOOK")
		}()

		cfg := NewConfig()

		assert.Equal(t, "tg-token", cfg.Telegram.Token)
		assert.Equal(t, "notion-token", cfg.Notion.Token)
		assert.Equal(t, "db-123", cfg.Notion.DatabaseID)
		assert.Equal(t, SessionsBackendSQLite, cfg.Sessions.Backend)
		assert.Equal(t, "Unsorted", cfg.Notion.FallbackBook)
	})
}
