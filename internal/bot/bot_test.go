package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func commandMessage(text string) *tgbotapi.Message {
	length := len(text)
	if i := indexOf(text, ' '); i > 0 {
		length = i
	}
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: 42},
		Chat:     &tgbotapi.Chat{ID: 1},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 42},
		Chat: &tgbotapi.Chat{ID: 1},
	}
}

func indexOf(s string, r byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("routes commands to their handlers", func(t *testing.T) {
		service := &fakeQuoteService{}
		handlers, _ := newTestHandlers(service)
		b := &Bot{handlers: handlers}

		assert.True(t, b.dispatch(ctx, commandMessage("/start")).Keyboard)
		assert.Contains(t, b.dispatch(ctx, commandMessage("/status")).Text, "в сети")
		assert.Contains(t, b.dispatch(ctx, commandMessage("/help")).Text, "Справка")
	})

	t.Run("routes /book with arguments", func(t *testing.T) {
		service := &fakeQuoteService{}
		handlers, store := newTestHandlers(service)
		b := &Bot{handlers: handlers}

		reply := b.dispatch(ctx, commandMessage("/book War and Peace"))
		assert.Contains(t, reply.Text, "War and Peace")

		title, ok, _ := store.Get(42)
		assert.True(t, ok)
		assert.Equal(t, "War and Peace", title)
	})

	t.Run("free text becomes a quote", func(t *testing.T) {
		service := &fakeQuoteService{}
		handlers, _ := newTestHandlers(service)
		b := &Bot{handlers: handlers}

		b.dispatch(ctx, textMessage("  A quote with padding  "))
		assert.Equal(t, []string{"Без категории|A quote with padding"}, service.addCalls)
	})

	t.Run("unknown commands produce no reply", func(t *testing.T) {
		service := &fakeQuoteService{}
		handlers, _ := newTestHandlers(service)
		b := &Bot{handlers: handlers}

		reply := b.dispatch(ctx, commandMessage("/unknown"))
		assert.Empty(t, reply.Text)
		assert.Empty(t, service.addCalls)
	})
}
