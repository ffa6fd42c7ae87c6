// Package quotes implements the book-quote linking protocol: resolving a
// book page by title substring, finding or lazily creating its quotes page,
// and appending and listing quote entries.
package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/quotekeeper/internal/notion"
)

// ErrBookNotFound indicates no book in the database matched the title
var ErrBookNotFound = errors.New("book not found")

// ErrNoQuotesPage indicates the book exists but has no quotes page yet
var ErrNoQuotesPage = errors.New("book has no quotes page")

// Store is the document-store surface the protocol needs. *notion.Client
// implements it; tests substitute a fake.
type Store interface {
	QueryPagesByTitle(ctx context.Context, databaseID, property, substring string) ([]string, error)
	GetLinkURL(ctx context.Context, pageID, property string) (string, bool, error)
	CreateChildPage(ctx context.Context, parentID, title string) (string, error)
	SetLink(ctx context.Context, pageID, property, text, url string) error
	AppendBulletedItem(ctx context.Context, blockID, text string) error
	ListBulletedItems(ctx context.Context, blockID string) ([]string, error)
}

// Config identifies the book database and the workspace-specific property
// and label names the protocol reads and writes.
type Config struct {
	DatabaseID    string
	TitleProperty string
	LinkProperty  string
	QuotesTitle   string
	LinkText      string
}

// Service runs the protocol against a Store. It holds no per-request state:
// page identifiers are resolved fresh on every call and never cached.
type Service struct {
	store Store
	cfg   Config
}

func NewService(store Store, cfg Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// FindBookPage returns the identifier of the first book page whose title
// contains title. When several books match, store order decides; the pick
// is not deterministic from the caller's point of view.
func (s *Service) FindBookPage(ctx context.Context, title string) (string, error) {
	ids, err := s.store.QueryPagesByTitle(ctx, s.cfg.DatabaseID, s.cfg.TitleProperty, title)
	if err != nil {
		return "", fmt.Errorf("search books: %w", err)
	}
	if len(ids) == 0 {
		return "", ErrBookNotFound
	}
	return ids[0], nil
}

// ResolveOrCreateCollection returns the identifier of a book's quotes page,
// creating the page and linking it from the book on first use. Once the
// link exists every call resolves to the same identifier without creating
// anything. Two concurrent first-time calls can each create a page; the
// later link update wins and the other page is left orphaned.
func (s *Service) ResolveOrCreateCollection(ctx context.Context, bookPageID string) (string, bool, error) {
	linkURL, ok, err := s.store.GetLinkURL(ctx, bookPageID, s.cfg.LinkProperty)
	if err != nil {
		return "", false, fmt.Errorf("read quotes link: %w", err)
	}

	if ok {
		pageID, err := notion.PageIDFromURL(linkURL)
		if err != nil {
			return "", false, fmt.Errorf("quotes link on book %s: %w", bookPageID, err)
		}
		return pageID, false, nil
	}

	pageID, err := s.store.CreateChildPage(ctx, bookPageID, s.cfg.QuotesTitle)
	if err != nil {
		return "", false, fmt.Errorf("create quotes page: %w", err)
	}
	if err := s.store.SetLink(ctx, bookPageID, s.cfg.LinkProperty, s.cfg.LinkText, notion.PageURL(pageID)); err != nil {
		return "", false, fmt.Errorf("link quotes page: %w", err)
	}
	return pageID, true, nil
}

// AddQuote appends text verbatim as a new quote of the book matching title,
// creating the quotes page on first use.
func (s *Service) AddQuote(ctx context.Context, title, text string) error {
	bookPageID, err := s.FindBookPage(ctx, title)
	if err != nil {
		return err
	}

	collectionID, _, err := s.ResolveOrCreateCollection(ctx, bookPageID)
	if err != nil {
		return err
	}

	if err := s.store.AppendBulletedItem(ctx, collectionID, text); err != nil {
		return fmt.Errorf("append quote: %w", err)
	}
	return nil
}

// ListQuotes returns every quote of the book matching title, in store
// order. Returns ErrNoQuotesPage when the book has never had a quote added;
// an existing but empty quotes page yields an empty slice. Listing never
// creates the quotes page.
func (s *Service) ListQuotes(ctx context.Context, title string) ([]string, error) {
	bookPageID, err := s.FindBookPage(ctx, title)
	if err != nil {
		return nil, err
	}

	linkURL, ok, err := s.store.GetLinkURL(ctx, bookPageID, s.cfg.LinkProperty)
	if err != nil {
		return nil, fmt.Errorf("read quotes link: %w", err)
	}
	if !ok {
		return nil, ErrNoQuotesPage
	}

	collectionID, err := notion.PageIDFromURL(linkURL)
	if err != nil {
		return nil, fmt.Errorf("quotes link on book %s: %w", bookPageID, err)
	}

	items, err := s.store.ListBulletedItems(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return items, nil
}
