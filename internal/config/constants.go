package config

// Defaults matching the Notion workspace layout the bot was built for.
// The property names are Russian because that is how the book database
// is labelled; override via environment variables for other workspaces.
const (
	// DefaultTitleProperty is the book database property searched by title
	DefaultTitleProperty = "Название"

	// DefaultLinkProperty is the rich-text property pointing at a book's quotes page
	DefaultLinkProperty = "Цитаты"

	// DefaultQuotesTitle is the title of a freshly created quotes page
	DefaultQuotesTitle = "Цитаты"

	// DefaultLinkText is the display text written into the link property
	DefaultLinkText = "Цитаты →"

	// DefaultFallbackBook is used when a user has not picked an active book
	DefaultFallbackBook = "Без категории"

	// DefaultSessionsPath is the default path for the sqlite sessions database
	DefaultSessionsPath = "./quotekeeper.db"
)
