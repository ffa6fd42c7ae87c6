package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/avoronov/quotekeeper/internal/config"
	"github.com/avoronov/quotekeeper/internal/notion"
	"github.com/avoronov/quotekeeper/internal/quotes"
)

// QuotesCommand prints every quote of a book to stdout.
type QuotesCommand struct {
	Title      string
	Token      string
	DatabaseID string

	cfg *config.Config
}

func NewQuotesCommand() *QuotesCommand {
	return &QuotesCommand{}
}

func (cmd *QuotesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("quotes", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Book title substring to look up (required)")
	fs.StringVar(&cmd.Token, "token", "", "Notion integration token (default: NOTION_TOKEN env)")
	fs.StringVar(&cmd.DatabaseID, "db", "", "Book database ID (default: DATABASE_ID env)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s quotes [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all saved quotes of a book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s quotes -title \"Дюна\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.cfg = config.NewConfig()
	if cmd.Token == "" {
		cmd.Token = cmd.cfg.Notion.Token
	}
	if cmd.DatabaseID == "" {
		cmd.DatabaseID = cmd.cfg.Notion.DatabaseID
	}

	if cmd.Title == "" {
		fs.Usage()
		return fmt.Errorf("title is required")
	}
	if cmd.Token == "" {
		return fmt.Errorf("notion token is required (flag -token or NOTION_TOKEN)")
	}
	if cmd.DatabaseID == "" {
		return fmt.Errorf("database ID is required (flag -db or DATABASE_ID)")
	}
	return nil
}

func (cmd *QuotesCommand) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	service := quotes.NewService(notion.NewClient(cmd.Token), quotes.Config{
		DatabaseID:    cmd.DatabaseID,
		TitleProperty: cmd.cfg.Notion.TitleProperty,
		LinkProperty:  cmd.cfg.Notion.LinkProperty,
		QuotesTitle:   cmd.cfg.Notion.QuotesTitle,
		LinkText:      cmd.cfg.Notion.LinkText,
	})

	items, err := service.ListQuotes(ctx, cmd.Title)
	if errors.Is(err, quotes.ErrBookNotFound) {
		return fmt.Errorf("book '%s' not found", cmd.Title)
	}
	if errors.Is(err, quotes.ErrNoQuotesPage) {
		fmt.Printf("Book '%s' has no quotes yet\n", cmd.Title)
		return nil
	}
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Printf("Book '%s' has no quotes yet\n", cmd.Title)
		return nil
	}

	for _, item := range items {
		fmt.Printf("• %s\n", item)
	}
	return nil
}
