// Package bot is the Telegram front-end: it receives updates over long
// polling, routes commands and free text to handlers, and sends the reply.
package bot

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const updateTimeoutSeconds = 30

type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *Handlers
}

func New(token string, debug bool, handlers *Handlers) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	log.Printf("Authorized on Telegram account @%s", api.Self.UserName)

	return &Bot{api: api, handlers: handlers}, nil
}

// Run consumes updates until ctx is cancelled. Each update is handled to
// completion before the next one is read; there is no per-update retry.
func (b *Bot) Run(ctx context.Context) {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateCfg)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	log.Printf("Bot started, waiting for updates")

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
			continue
		}

		reply := b.dispatch(ctx, update.Message)
		if reply.Text == "" {
			continue
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply.Text)
		if reply.Markdown {
			msg.ParseMode = tgbotapi.ModeMarkdown
		}
		if reply.Keyboard {
			msg.ReplyMarkup = mainKeyboard()
		}

		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Failed to send reply to chat %d: %v", update.Message.Chat.ID, err)
		}
	}

	log.Printf("Update channel closed, bot stopped")
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) Reply {
	userID := msg.From.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return b.handlers.Start()
		case "help":
			return b.handlers.Help()
		case "status":
			return b.handlers.Status()
		case "book":
			return b.handlers.SetBook(userID, strings.TrimSpace(msg.CommandArguments()))
		case "current":
			return b.handlers.CurrentBook(userID)
		case "reset":
			return b.handlers.ResetBook(userID)
		case "quotes":
			return b.handlers.ListQuotes(ctx, userID)
		default:
			// Unknown commands are ignored, matching Telegram bot convention
			return Reply{}
		}
	}

	return b.handlers.AddQuote(ctx, userID, strings.TrimSpace(msg.Text))
}
