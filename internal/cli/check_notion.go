package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avoronov/quotekeeper/internal/config"
	"github.com/avoronov/quotekeeper/internal/notion"
)

const checkTimeout = 30 * time.Second

// CheckNotionCommand verifies the Notion token and database access without
// starting the bot.
type CheckNotionCommand struct {
	Token      string
	DatabaseID string
}

func NewCheckNotionCommand() *CheckNotionCommand {
	return &CheckNotionCommand{}
}

func (cmd *CheckNotionCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("check-notion", flag.ExitOnError)

	fs.StringVar(&cmd.Token, "token", "", "Notion integration token (default: NOTION_TOKEN env)")
	fs.StringVar(&cmd.DatabaseID, "db", "", "Book database ID (default: DATABASE_ID env)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check-notion [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Verify the Notion token and book database are reachable.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.NewConfig()
	if cmd.Token == "" {
		cmd.Token = cfg.Notion.Token
	}
	if cmd.DatabaseID == "" {
		cmd.DatabaseID = cfg.Notion.DatabaseID
	}

	if cmd.Token == "" {
		return fmt.Errorf("notion token is required (flag -token or NOTION_TOKEN)")
	}
	if cmd.DatabaseID == "" {
		return fmt.Errorf("database ID is required (flag -db or DATABASE_ID)")
	}
	return nil
}

func (cmd *CheckNotionCommand) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	client := notion.NewClient(cmd.Token)
	title, err := client.CheckDatabase(ctx, cmd.DatabaseID)
	if errors.Is(err, notion.ErrUnauthorized) {
		return fmt.Errorf("token rejected by Notion: %w", err)
	}
	if err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}

	if title == "" {
		title = cmd.DatabaseID
	}
	fmt.Printf("✅ Connected to Notion database \"%s\"\n", title)
	return nil
}
