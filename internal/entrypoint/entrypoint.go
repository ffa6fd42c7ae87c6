package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avoronov/quotekeeper/internal/bot"
	"github.com/avoronov/quotekeeper/internal/config"
	http_controllers "github.com/avoronov/quotekeeper/internal/http"
	"github.com/avoronov/quotekeeper/internal/notion"
	"github.com/avoronov/quotekeeper/internal/quotes"
	"github.com/avoronov/quotekeeper/internal/scheduler"
	"github.com/avoronov/quotekeeper/internal/sessions"
)

// Run wires all components, starts the bot and the keep-alive server, and
// blocks until SIGINT/SIGTERM triggers a graceful shutdown.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting QuoteKeeper v%s", version)

	if cfg.Telegram.Token == "" {
		log.Fatalf("TELEGRAM_TOKEN is not set")
	}
	if cfg.Notion.Token == "" {
		log.Fatalf("NOTION_TOKEN is not set")
	}
	if cfg.Notion.DatabaseID == "" {
		log.Fatalf("DATABASE_ID is not set")
	}

	// Session store: in-memory by default, sqlite when configured
	var sessionStore sessions.Store
	var sessionCloser func() error
	switch cfg.Sessions.Backend {
	case config.SessionsBackendSQLite:
		store, err := sessions.NewSQLiteStore(cfg.Sessions.Path)
		if err != nil {
			log.Fatalf("Failed to initialize sessions database: %v", err)
		}
		sessionStore = store
		sessionCloser = store.Close
		log.Printf("Sessions backend: sqlite (%s)", cfg.Sessions.Path)
	case config.SessionsBackendMemory:
		sessionStore = sessions.NewMemoryStore()
		log.Printf("Sessions backend: memory (active books are lost on restart)")
	default:
		log.Fatalf("Unknown sessions backend: %s", cfg.Sessions.Backend)
	}

	notionClient := notion.NewClient(cfg.Notion.Token)
	quoteService := quotes.NewService(notionClient, quotes.Config{
		DatabaseID:    cfg.Notion.DatabaseID,
		TitleProperty: cfg.Notion.TitleProperty,
		LinkProperty:  cfg.Notion.LinkProperty,
		QuotesTitle:   cfg.Notion.QuotesTitle,
		LinkText:      cfg.Notion.LinkText,
	})

	handlers := bot.NewHandlers(quoteService, sessionStore, cfg.Notion.FallbackBook)
	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.Debug, handlers)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	// Heartbeat keeps a periodic liveness line in the logs
	heartbeat := scheduler.NewHeartbeat(cfg.Heartbeat.Schedule)
	if cfg.Heartbeat.Enabled {
		if err := heartbeat.Start(); err != nil {
			log.Fatalf("Failed to start heartbeat: %v", err)
		}
	}

	// Keep-alive HTTP server
	health := http_controllers.NewHealthController(sessionStore, version)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: http_controllers.NewRouter(health),
	}
	go func() {
		log.Printf("Starting keep-alive server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	botCtx, cancelBot := context.WithCancel(context.Background())
	go b.Run(botCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v", timeout)

	cancelBot()
	heartbeat.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Keep-alive server shutdown: %v", err)
	}

	if sessionCloser != nil {
		if err := sessionCloser(); err != nil {
			log.Printf("Error closing sessions database: %v", err)
		}
	}

	log.Println("Bot exiting")
}
