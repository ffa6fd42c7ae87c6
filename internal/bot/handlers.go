package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avoronov/quotekeeper/internal/quotes"
	"github.com/avoronov/quotekeeper/internal/sessions"
)

// QuoteService is the part of the quotes protocol the handlers use.
type QuoteService interface {
	AddQuote(ctx context.Context, title, text string) error
	ListQuotes(ctx context.Context, title string) ([]string, error)
}

// Reply is a single outbound message. Every inbound update produces at most
// one reply; prior replies are never edited.
type Reply struct {
	Text     string
	Markdown bool // Render with Telegram's Markdown parse mode
	Keyboard bool // Attach the main command keyboard
}

// Handlers maps inbound commands and free text to replies. All store
// failures are absorbed here and turned into user-visible messages; a
// handler never panics or crashes the update loop.
type Handlers struct {
	quotes       QuoteService
	sessions     sessions.Store
	fallbackBook string
}

func NewHandlers(quoteService QuoteService, sessionStore sessions.Store, fallbackBook string) *Handlers {
	return &Handlers{
		quotes:       quoteService,
		sessions:     sessionStore,
		fallbackBook: fallbackBook,
	}
}

func (h *Handlers) Start() Reply {
	return Reply{
		Text:     "Привет! Отправь мне цитату — я добавлю её в Notion 📚\n\nКоманды:",
		Keyboard: true,
	}
}

func (h *Handlers) Help() Reply {
	return Reply{
		Text: "🛠 *Справка по командам*\n\n" +
			"📌 *Работа с книгой:*\n" +
			"📚 /book <название> — выбрать активную книгу\n" +
			"📖 /current — показать текущую книгу\n" +
			"🗑 /reset — сбросить выбранную книгу\n\n" +
			"📝 *Цитаты:*\n" +
			"💬 /quotes — показать все цитаты из книги\n" +
			"✍️ Просто отправь текст — он добавится как цитата\n\n" +
			"🔧 *Система:*\n" +
			"⚙️ /status — проверить, в сети ли бот\n" +
			"🟰 /start — показать главное меню",
		Markdown: true,
	}
}

func (h *Handlers) Status() Reply {
	return Reply{Text: "🟢 Бот в сети и работает!"}
}

// SetBook makes title the user's active book. An empty title leaves the
// current choice untouched.
func (h *Handlers) SetBook(userID int64, title string) Reply {
	if title == "" {
		return Reply{Text: "Укажи название книги после команды /book"}
	}
	if err := h.sessions.Set(userID, title); err != nil {
		return h.failure("set active book", userID, err)
	}
	return Reply{Text: fmt.Sprintf("📚 Активная книга установлена: %s", title)}
}

func (h *Handlers) CurrentBook(userID int64) Reply {
	book, ok, err := h.sessions.Get(userID)
	if err != nil {
		return h.failure("get active book", userID, err)
	}
	if !ok {
		return Reply{Text: "📖 Книга не выбрана. Используй /book, чтобы установить её."}
	}
	return Reply{Text: fmt.Sprintf("📖 Сейчас выбрана книга: *%s*", book), Markdown: true}
}

func (h *Handlers) ResetBook(userID int64) Reply {
	if err := h.sessions.Clear(userID); err != nil {
		return h.failure("reset active book", userID, err)
	}
	return Reply{Text: "🔄 Активная книга сброшена."}
}

// ListQuotes replies with every quote of the user's active book. Without an
// active book it prompts for /book and issues no store call.
func (h *Handlers) ListQuotes(ctx context.Context, userID int64) Reply {
	book, ok, err := h.sessions.Get(userID)
	if err != nil {
		return h.failure("get active book", userID, err)
	}
	if !ok {
		return Reply{Text: "⚠️ Сначала выбери книгу командой /book."}
	}

	items, err := h.quotes.ListQuotes(ctx, book)
	switch {
	case errors.Is(err, quotes.ErrBookNotFound):
		return Reply{Text: fmt.Sprintf("⚠️ Книга '%s' не найдена в Notion.", book)}
	case errors.Is(err, quotes.ErrNoQuotesPage):
		return Reply{Text: "⛔ У этой книги ещё нет цитат."}
	case err != nil:
		return h.failure("list quotes", userID, err)
	}

	if len(items) == 0 {
		return Reply{Text: "😕 Цитаты ещё не добавлены."}
	}

	bullets := make([]string, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, "• "+item)
	}
	return Reply{
		Text:     fmt.Sprintf("📖 Цитаты из книги *%s*:\n\n%s", book, strings.Join(bullets, "\n\n")),
		Markdown: true,
	}
}

// AddQuote appends text as a quote of the user's active book, falling back
// to the default book when none is set.
func (h *Handlers) AddQuote(ctx context.Context, userID int64, text string) Reply {
	book, ok, err := h.sessions.Get(userID)
	if err != nil {
		return h.failure("get active book", userID, err)
	}
	if !ok {
		book = h.fallbackBook
	}

	err = h.quotes.AddQuote(ctx, book, text)
	switch {
	case errors.Is(err, quotes.ErrBookNotFound):
		return Reply{Text: fmt.Sprintf("⚠️ Книга '%s' не найдена в Notion.", book)}
	case err != nil:
		return h.failure("add quote", userID, err)
	}

	return Reply{Text: "✅ Цитата добавлена!"}
}

func (h *Handlers) failure(op string, userID int64, err error) Reply {
	log.Printf("Failed to %s for user %d: %v", op, userID, err)
	return Reply{Text: fmt.Sprintf("🚫 Ошибка: %v", err)}
}
